package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

type mockClienteRepo struct {
	mock.Mock
}

func (m *mockClienteRepo) ExistsByCUIT(ctx context.Context, cuit string) (bool, error) {
	args := m.Called(ctx, cuit)
	return args.Bool(0), args.Error(1)
}

func (m *mockClienteRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *mockClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClienteRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClienteRepo) List(ctx context.Context, page pagination.PageRequest) (*repository.ClientePage, error) {
	args := m.Called(ctx, page)
	p, _ := args.Get(0).(*repository.ClientePage)
	return p, args.Error(1)
}

func (m *mockClienteRepo) SearchByNombre(ctx context.Context, nombre string, limit, offset int) ([]*entity.Cliente, error) {
	args := m.Called(ctx, nombre, limit, offset)
	list, _ := args.Get(0).([]*entity.Cliente)
	return list, args.Error(1)
}

func (m *mockClienteRepo) CountByNombre(ctx context.Context, nombre string) (int64, error) {
	args := m.Called(ctx, nombre)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTx entrega siempre el mismo repositorio y cuenta las transacciones abiertas.
type fakeTx struct {
	repo     repository.ClienteRepository
	writes   int
	readOnly int
}

func (f *fakeTx) Run(_ context.Context, fn func(repo repository.ClienteRepository) error) error {
	f.writes++
	return fn(f.repo)
}

func (f *fakeTx) RunReadOnly(_ context.Context, fn func(repo repository.ClienteRepository) error) error {
	f.readOnly++
	return fn(f.repo)
}
