package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ClienteTxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
// Commit si fn devuelve nil, Rollback en cualquier otro caso.
type ClienteTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
	RunReadOnly(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
}
