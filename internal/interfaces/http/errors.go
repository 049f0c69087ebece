package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// Mensajes fijos de la capa HTTP.
const (
	MsgValidation   = "Error de validación en los datos enviados"
	MsgInvalidBody  = "Cuerpo de la petición inválido"
	MsgInvalidInput = "Solicitud inválida"
	MsgUnauthorized = "Token inválido o ausente"
	MsgUnexpected   = "Ocurrió un error inesperado. Contacte al administrador"
)

// ValidationError fallas de validación del body, por campo (nombre JSON).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return MsgValidation }

// ParamError parámetro de ruta o query con valor inválido.
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string { return "Parámetro inválido: " + e.Name }

func (e *ParamError) Unwrap() error { return e.Err }

// BodyError el body no se pudo decodificar.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string { return MsgInvalidBody }

func (e *BodyError) Unwrap() error { return e.Err }

// ErrUnauthorized falta el bearer token o no es válido.
var ErrUnauthorized = errors.New(MsgUnauthorized)

// NewErrorHandler traduce cualquier error devuelto por un handler al cuerpo ApiErrorResponse.
// Los 5xx se registran con el detalle; al cliente solo llega el mensaje genérico.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, msg, fields := classify(err)

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		case status != fiber.StatusNotFound:
			log.Warn().Err(err).Int("status", status).Str("path", c.Path()).Msg("petición rechazada")
		}

		return c.Status(status).JSON(dto.ApiErrorResponse{
			Status:           status,
			Error:            utils.StatusMessage(status),
			Message:          msg,
			Path:             c.Path(),
			Timestamp:        dto.ErrorTimestamp{Time: time.Now()},
			ValidationErrors: fields,
		})
	}
}

func classify(err error) (int, string, map[string]string) {
	var (
		verr  *ValidationError
		perr  *ParamError
		berr  *BodyError
		dup   *domain.DuplicateArgumentError
		nf    *domain.ClienteNotFoundError
		cv    *domain.ConstraintViolationError
		fiErr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, MsgValidation, verr.Fields
	case errors.As(err, &perr):
		return fiber.StatusBadRequest, perr.Error(), nil
	case errors.As(err, &berr):
		return fiber.StatusBadRequest, MsgInvalidBody, nil
	case errors.As(err, &dup):
		return fiber.StatusBadRequest, dup.Message, nil
	case errors.As(err, &nf):
		return fiber.StatusNotFound, nf.Error(), nil
	case errors.As(err, &cv):
		return fiber.StatusConflict, constraintMessage(cv), nil
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, MsgInvalidInput, nil
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized, MsgUnauthorized, nil
	case errors.As(err, &fiErr):
		return fiErr.Code, fiErr.Message, nil
	}
	return fiber.StatusInternalServerError, MsgUnexpected, nil
}

// constraintMessage decide el mensaje según qué columna nombra la restricción violada.
func constraintMessage(cv *domain.ConstraintViolationError) string {
	text := strings.ToLower(cv.Constraint + " " + cv.Detail)
	switch {
	case strings.Contains(text, "cuit"):
		return domain.MsgCUITExists
	case strings.Contains(text, "email"):
		return domain.MsgEmailExists
	}
	return domain.MsgIntegrityGeneric
}
