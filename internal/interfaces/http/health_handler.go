package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica la conexión a la base (pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler estado del servicio y de la base.
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler construye el handler. db nil = solo liveness.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	body := fiber.Map{"status": "UP", "version": h.version}
	if h.db == nil {
		return c.JSON(body)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		body["status"] = "DOWN"
		body["database"] = "DOWN"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	body["database"] = "UP"
	return c.JSON(body)
}
