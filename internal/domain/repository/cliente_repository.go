package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

// ClientePage una página de clientes con los totales que informa el store.
type ClientePage struct {
	Items         []*entity.Cliente
	TotalElements int64
	TotalPages    int
}

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	ExistsByCUIT(ctx context.Context, cuit string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	// Create inserta y asigna el ID generado por el store.
	Create(ctx context.Context, cliente *entity.Cliente) error
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page pagination.PageRequest) (*ClientePage, error)
	// SearchByNombre delega en el procedimiento buscar_clientes_por_nombre.
	SearchByNombre(ctx context.Context, nombre string, limit, offset int) ([]*entity.Cliente, error)
	// CountByNombre cuenta coincidencias por subcadena sin distinguir mayúsculas.
	CountByNombre(ctx context.Context, nombre string) (int64, error)
}
