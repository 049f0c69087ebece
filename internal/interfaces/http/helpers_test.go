package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

type mockClienteService struct {
	mock.Mock
}

func (m *mockClienteService) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.ClienteResponse)
	return out, args.Error(1)
}

func (m *mockClienteService) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.ClienteResponse)
	return out, args.Error(1)
}

func (m *mockClienteService) Update(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*dto.ClienteResponse)
	return out, args.Error(1)
}

func (m *mockClienteService) UpdateEmail(ctx context.Context, id int64, nuevoEmail string) (*dto.ClienteResponse, error) {
	args := m.Called(ctx, id, nuevoEmail)
	out, _ := args.Get(0).(*dto.ClienteResponse)
	return out, args.Error(1)
}

func (m *mockClienteService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClienteService) List(ctx context.Context, page pagination.PageRequest) (*dto.ClientePagedResponse, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).(*dto.ClientePagedResponse)
	return out, args.Error(1)
}

func (m *mockClienteService) SearchByNombre(ctx context.Context, nombre string, page pagination.PageRequest) (*dto.ClientePagedResponse, error) {
	args := m.Called(ctx, nombre, page)
	out, _ := args.Get(0).(*dto.ClientePagedResponse)
	return out, args.Error(1)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newTestApp(svc apphttp.ClienteService, secret string) *fiber.App {
	return apphttp.NewApp(apphttp.RouterDeps{
		ClienteUC:  svc,
		Validator:  apphttp.NewRequestValidator(apphttp.ValidatorOptions{}),
		Pagination: pagination.DefaultConfig(),
		JWTSecret:  secret,
		DB:         fakePinger{},
		Version:    "test",
	}, fiber.Config{})
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func decodeError(t *testing.T, b []byte) dto.ApiErrorResponse {
	t.Helper()
	var out struct {
		Status           int               `json:"status"`
		Error            string            `json:"error"`
		Message          string            `json:"message"`
		Path             string            `json:"path"`
		Timestamp        string            `json:"timestamp"`
		ValidationErrors map[string]string `json:"validationErrors"`
	}
	require.NoError(t, json.Unmarshal(b, &out), string(b))
	require.NotEmpty(t, out.Timestamp)
	return dto.ApiErrorResponse{
		Status:           out.Status,
		Error:            out.Error,
		Message:          out.Message,
		Path:             out.Path,
		ValidationErrors: out.ValidationErrors,
	}
}
