package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestAsConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "clientes_cuit_key",
		Detail:         "Key (cuit)=(20-12345678-6) already exists.",
	}
	err := asConstraintViolation(pgErr)

	var cv *domain.ConstraintViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "clientes_cuit_key", cv.Constraint)
	assert.Contains(t, cv.Detail, "(cuit)")
	assert.ErrorIs(t, err, domain.ErrConflict)

	other := errors.New("otra cosa")
	assert.Same(t, other, asConstraintViolation(other))
}

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name   string
		orders []pagination.SortOrder
		want   string
	}{
		{"por defecto", nil, "id ASC"},
		{"id desc", []pagination.SortOrder{{Property: "id", Desc: true}}, "id DESC"},
		{"con desempate", []pagination.SortOrder{{Property: "nombre"}}, "nombre ASC, id ASC"},
		{
			"camelCase a columna",
			[]pagination.SortOrder{{Property: "razonSocial", Desc: true}, {Property: "fechaCreacion"}},
			"razon_social DESC, fecha_creacion ASC, id ASC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderByClause(tt.orders)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := orderByClause([]pagination.SortOrder{{Property: "nombre; DROP TABLE clientes"}})
	assert.Error(t, err)
	assert.False(t, IsSortable("password"))
	assert.True(t, IsSortable("fechaNacimiento"))
}

func TestSortColumns_CubrenPropiedadesDeLaAPI(t *testing.T) {
	for _, p := range dto.ClienteSortProperties {
		assert.True(t, IsSortable(p), p)
	}
	assert.Len(t, SortColumns, len(dto.ClienteSortProperties))
}
