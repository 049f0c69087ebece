package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/pkg/jwt"
)

// Locals keys cargadas por AuthMiddleware.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja sujeto y rol en c.Locals.
// Cualquier falla termina en 401 vía el ErrorHandler.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ErrUnauthorized
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return ErrUnauthorized
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return ErrUnauthorized
		}
		c.Locals(LocalSubject, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetSubject devuelve el sujeto del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetRole devuelve el rol del token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
