package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/pagination"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"vacío", 0, 10, 0},
		{"un elemento", 1, 10, 1},
		{"exacto", 20, 10, 2},
		{"con resto", 21, 10, 3},
		{"size cero", 5, 0, 0},
		{"size negativo", 5, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.total, tt.size))
		})
	}
}

func TestOutOfRange(t *testing.T) {
	assert.False(t, pagination.OutOfRange(0, 0, 0), "resultado vacío nunca está fuera de rango")
	assert.False(t, pagination.OutOfRange(0, 1, 1))
	assert.True(t, pagination.OutOfRange(1, 1, 1))
	assert.True(t, pagination.OutOfRange(5, 2, 15))
}

func TestPageRequest_OffsetLimit(t *testing.T) {
	r := pagination.PageRequest{Page: 3, Size: 25}
	assert.Equal(t, 75, r.Offset())
	assert.Equal(t, 25, r.Limit())
	assert.False(t, r.Overflows())
}

func TestPageRequest_OffsetSaturado(t *testing.T) {
	tests := []struct {
		name      string
		req       pagination.PageRequest
		want      int
		overflows bool
	}{
		{"página cero", pagination.PageRequest{Page: 0, Size: 10}, 0, false},
		{"justo en el límite", pagination.PageRequest{Page: pagination.MaxOffset / 10, Size: 10}, pagination.MaxOffset / 10 * 10, false},
		{"supera int32", pagination.PageRequest{Page: 300000000, Size: 10}, pagination.MaxOffset, true},
		{"desbordaría int", pagination.PageRequest{Page: math.MaxInt/10 + 1, Size: 10}, pagination.MaxOffset, true},
		{"página máxima", pagination.PageRequest{Page: math.MaxInt, Size: 100}, pagination.MaxOffset, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Offset())
			assert.Equal(t, tt.overflows, tt.req.Overflows())
			assert.GreaterOrEqual(t, tt.req.Offset(), 0)
		})
	}
}

func TestPageRequest_Normalize(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}

	r := pagination.PageRequest{}
	r.Normalize(cfg)
	assert.Equal(t, 10, r.Size)

	r = pagination.PageRequest{Size: 500}
	r.Normalize(cfg)
	assert.Equal(t, 100, r.Size)

	r = pagination.PageRequest{Size: 30}
	r.Normalize(cfg)
	assert.Equal(t, 30, r.Size)
}

func TestParseSort(t *testing.T) {
	orders, err := pagination.ParseSort("nombre,desc", "id")
	require.NoError(t, err)
	assert.Equal(t, []pagination.SortOrder{
		{Property: "nombre", Desc: true},
		{Property: "id"},
	}, orders)

	orders, err = pagination.ParseSort("apellido,nombre,ASC")
	require.NoError(t, err)
	assert.Equal(t, []pagination.SortOrder{{Property: "apellido"}, {Property: "nombre"}}, orders)

	orders, err = pagination.ParseSort("", "  ")
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = pagination.ParseSort("desc")
	assert.Error(t, err)

	_, err = pagination.ParseSort("nombre,,desc")
	assert.Error(t, err)
}

func TestSortOrder_String(t *testing.T) {
	assert.Equal(t, "id,asc", pagination.SortOrder{Property: "id"}.String())
	assert.Equal(t, "email,desc", pagination.SortOrder{Property: "email", Desc: true}.String())
}
