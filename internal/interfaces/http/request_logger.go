package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status, duración y request id.
// Nivel según status: 5xx error, 4xx warn, resto info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			// El status final lo fija el ErrorHandler.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("duration_ms", float64(time.Since(start).Nanoseconds())/1e6).
			Int("bytes", len(c.Response().Body())).
			Str("remote_addr", c.IP()).
			Str("request_id", requestID(c)).
			Msg("HTTP request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
