package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ClienteValidator decide si un alta choca con un cliente existente.
type ClienteValidator struct {
	log *logger.Logger
}

// NewClienteValidator construye el validador.
func NewClienteValidator(log *logger.Logger) *ClienteValidator {
	return &ClienteValidator{log: log}
}

// ValidateForCreation consulta primero el CUIT; si está tomado no consulta el email.
func (v *ClienteValidator) ValidateForCreation(ctx context.Context, repo repository.ClienteRepository, in dto.ClienteRequest) error {
	exists, err := repo.ExistsByCUIT(ctx, in.CUIT)
	if err != nil {
		return err
	}
	if exists {
		v.log.Warn().Str("cuit", in.CUIT).Msg("intento de creación con CUIT duplicado")
		return domain.NewDuplicateArgument(domain.MsgCUITExists)
	}

	exists, err = repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if exists {
		v.log.Warn().Str("email", in.Email).Msg("intento de creación con email duplicado")
		return domain.NewDuplicateArgument(domain.MsgEmailExists)
	}
	return nil
}
