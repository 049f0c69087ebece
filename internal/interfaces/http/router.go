package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC  ClienteService
	Validator  *RequestValidator
	Pagination pagination.Config
	// JWTSecret vacío = escrituras sin autenticación.
	JWTSecret string
	DB        Pinger
	Version   string
	Log       *logger.Logger
}

// NewApp crea la app Fiber con ErrorHandler, middlewares y rutas.
func NewApp(deps RouterDeps, cfg fiber.Config) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	cfg.ErrorHandler = NewErrorHandler(deps.Log.Named("http"))
	app := fiber.New(cfg)

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(deps.Log.Named("access")))

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.DB, deps.Version).Check)

	h := NewClienteHandler(deps.ClienteUC, deps.Validator, deps.Pagination)

	write := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		write = AuthMiddleware(deps.JWTSecret)
	}

	clientes := app.Group("/api/clientes")
	clientes.Get("/", h.List)
	clientes.Get("/search", h.Search)
	clientes.Get("/:id", h.GetByID)
	clientes.Post("/", write, h.Create)
	clientes.Put("/:id", write, h.Update)
	clientes.Patch("/:id/email", write, h.UpdateEmail)
	clientes.Delete("/:id", write, h.Delete)
}
