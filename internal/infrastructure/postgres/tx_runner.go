package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ usecase.ClienteTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción de lectura/escritura, ejecuta fn con el repo atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// RunReadOnly igual que Run pero la transacción es de solo lectura.
func (r *TxRunner) RunReadOnly(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	return r.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(repo repository.ClienteRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", asConstraintViolation(err))
	}
	return nil
}
