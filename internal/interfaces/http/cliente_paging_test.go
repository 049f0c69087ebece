package http_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

// storeQuince simula un store con 15 clientes que coinciden con cualquier búsqueda y registra los offsets recibidos.
type storeQuince struct {
	offsets []int
}

func (s *storeQuince) ExistsByCUIT(context.Context, string) (bool, error)  { return false, nil }
func (s *storeQuince) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (s *storeQuince) GetByID(context.Context, int64) (*entity.Cliente, error) {
	return nil, nil
}
func (s *storeQuince) Create(context.Context, *entity.Cliente) error { return nil }
func (s *storeQuince) Update(context.Context, *entity.Cliente) error { return nil }
func (s *storeQuince) Delete(context.Context, int64) error           { return nil }

func (s *storeQuince) List(_ context.Context, page pagination.PageRequest) (*repository.ClientePage, error) {
	s.offsets = append(s.offsets, page.Offset())
	return &repository.ClientePage{TotalElements: 15, TotalPages: pagination.TotalPages(15, page.Size)}, nil
}

func (s *storeQuince) SearchByNombre(_ context.Context, _ string, _, offset int) ([]*entity.Cliente, error) {
	s.offsets = append(s.offsets, offset)
	return nil, nil
}

func (s *storeQuince) CountByNombre(context.Context, string) (int64, error) { return 15, nil }

type txDirecto struct{ repo repository.ClienteRepository }

func (t txDirecto) Run(_ context.Context, fn func(repository.ClienteRepository) error) error {
	return fn(t.repo)
}

func (t txDirecto) RunReadOnly(_ context.Context, fn func(repository.ClienteRepository) error) error {
	return fn(t.repo)
}

func TestPaginaEnorme_DevuelvePaginaVacia200(t *testing.T) {
	tests := []struct {
		name   string
		target string
		page   int
	}{
		{"listado supera int32", "/api/clientes?page=300000000&size=10", 300000000},
		{"listado desbordaría int", "/api/clientes?page=922337203685477581&size=10", 922337203685477581},
		{"búsqueda supera int32", "/api/clientes/search?nombre=ju&page=300000000&size=10", 300000000},
		{"búsqueda desbordaría int", "/api/clientes/search?nombre=ju&page=922337203685477581&size=10", 922337203685477581},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storeQuince{}
			uc := usecase.NewClienteUseCase(txDirecto{repo: store}, logger.Nop())
			app := newTestApp(uc, "")

			resp, body := doJSON(t, app, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			assert.Contains(t, string(body), `"content":[]`)
			assert.Contains(t, string(body),
				fmt.Sprintf(`"page":{"size":10,"totalElements":15,"totalPages":2,"number":%d}`, tt.page))
			for _, off := range store.offsets {
				assert.GreaterOrEqual(t, off, 0)
				assert.LessOrEqual(t, off, pagination.MaxOffset)
			}
		})
	}
}
