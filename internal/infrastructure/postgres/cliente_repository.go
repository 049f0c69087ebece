package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, apellido, razon_social, cuit, fecha_nacimiento, telefono_celular, email, fecha_creacion, fecha_modificacion`

// SortColumns propiedades ordenables (nombre JSON) y su columna.
var SortColumns = map[string]string{
	"id":                "id",
	"nombre":            "nombre",
	"apellido":          "apellido",
	"razonSocial":       "razon_social",
	"cuit":              "cuit",
	"email":             "email",
	"fechaNacimiento":   "fecha_nacimiento",
	"fechaCreacion":     "fecha_creacion",
	"fechaModificacion": "fecha_modificacion",
}

// IsSortable indica si la propiedad puede usarse en ORDER BY.
func IsSortable(property string) bool {
	_, ok := SortColumns[property]
	return ok
}

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func (r *ClienteRepo) ExistsByCUIT(ctx context.Context, cuit string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clientes WHERE cuit = $1)`, cuit).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists cliente by cuit: %w", err)
	}
	return exists, nil
}

func (r *ClienteRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clientes WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists cliente by email: %w", err)
	}
	return exists, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// Create inserta el cliente y asigna el ID generado.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, apellido, razon_social, cuit, fecha_nacimiento, telefono_celular, email, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Nombre, c.Apellido, c.RazonSocial, c.CUIT, c.FechaNacimiento,
		c.TelefonoCelular, c.Email, c.FechaCreacion, c.FechaModificacion,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return asConstraintViolation(err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Update reescribe los campos de negocio y fecha_modificacion. fecha_creacion no se toca.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, apellido = $3, razon_social = $4, cuit = $5, fecha_nacimiento = $6,
		    telefono_celular = $7, email = $8, fecha_modificacion = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Apellido, c.RazonSocial, c.CUIT, c.FechaNacimiento,
		c.TelefonoCelular, c.Email, c.FechaModificacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return asConstraintViolation(err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// List página ordenada por las propiedades pedidas (id ASC por defecto) junto con el total.
func (r *ClienteRepo) List(ctx context.Context, page pagination.PageRequest) (*repository.ClientePage, error) {
	orderBy, err := orderByClause(page.Sort)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count clientes: %w", err)
	}

	out := &repository.ClientePage{
		Items:         []*entity.Cliente{},
		TotalElements: total,
		TotalPages:    pagination.TotalPages(total, page.Size),
	}
	if page.Overflows() || int64(page.Offset()) >= total {
		return out, nil
	}

	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY ` + orderBy + ` LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	out.Items, err = collectClientes(rows)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return out, nil
}

// SearchByNombre delega en buscar_clientes_por_nombre(p_nombre, p_limit, p_offset).
func (r *ClienteRepo) SearchByNombre(ctx context.Context, nombre string, limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM buscar_clientes_por_nombre($1::text, $2::int, $3::int)`
	rows, err := r.q.Query(ctx, query, nombre, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes por nombre: %w", err)
	}
	items, err := collectClientes(rows)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes por nombre: %w", err)
	}
	return items, nil
}

// CountByNombre mismo criterio que el procedimiento de búsqueda.
func (r *ClienteRepo) CountByNombre(ctx context.Context, nombre string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes WHERE nombre ILIKE '%' || $1::text || '%'`, nombre).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clientes por nombre: %w", err)
	}
	return total, nil
}

// orderByClause arma el ORDER BY solo con columnas conocidas. Agrega id como desempate.
func orderByClause(orders []pagination.SortOrder) (string, error) {
	if len(orders) == 0 {
		return "id ASC", nil
	}
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		if !IsSortable(o.Property) {
			return "", fmt.Errorf("propiedad de orden desconocida: %q", o.Property)
		}
		col := SortColumns[o.Property]
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
		if col == "id" {
			hasID = true
		}
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", "), nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.RazonSocial, &c.CUIT, &c.FechaNacimiento,
		&c.TelefonoCelular, &c.Email, &c.FechaCreacion, &c.FechaModificacion,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
