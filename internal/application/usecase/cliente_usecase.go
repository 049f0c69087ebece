package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/mapper"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

// ClienteUseCase casos de uso CRUD y búsqueda de clientes. Cada operación corre en una sola transacción.
type ClienteUseCase struct {
	tx        ClienteTxRunner
	validator *ClienteValidator
	log       *logger.Logger
	now       func() time.Time
}

// Option configura el caso de uso.
type Option func(*ClienteUseCase)

// WithClock reemplaza el reloj usado para las marcas de auditoría.
func WithClock(now func() time.Time) Option {
	return func(uc *ClienteUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(tx ClienteTxRunner, log *logger.Logger, opts ...Option) *ClienteUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &ClienteUseCase{
		tx:        tx,
		validator: NewClienteValidator(log),
		log:       log,
		now: func() time.Time {
			// El store guarda microsegundos.
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create da de alta un cliente si CUIT y email están libres.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	uc.log.Info().Str("cuit", in.CUIT).Msg("creando cliente")

	var out dto.ClienteResponse
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		if err := uc.validator.ValidateForCreation(ctx, repo, in); err != nil {
			return err
		}
		cliente := mapper.ToEntity(in)
		cliente.MarkCreated(uc.now())
		if err := repo.Create(ctx, cliente); err != nil {
			return err
		}
		out = mapper.ToResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("cliente_id", out.ID).Msg("cliente creado")
	return &out, nil
}

// GetByID obtiene un cliente; ClienteNotFoundError si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	uc.log.Debug().Int64("cliente_id", id).Msg("buscando cliente")

	var out dto.ClienteResponse
	err := uc.tx.RunReadOnly(ctx, func(repo repository.ClienteRepository) error {
		cliente, err := uc.load(ctx, repo, id)
		if err != nil {
			return err
		}
		out = mapper.ToResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza los campos de negocio. Solo consulta unicidad de CUIT o email si cambiaron.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	uc.log.Info().Int64("cliente_id", id).Msg("actualizando cliente")

	var out dto.ClienteResponse
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		cliente, err := uc.load(ctx, repo, id)
		if err != nil {
			return err
		}
		if in.CUIT != cliente.CUIT {
			if err := uc.checkCUITFree(ctx, repo, id, in.CUIT); err != nil {
				return err
			}
		}
		if in.Email != cliente.Email {
			if err := uc.checkEmailFree(ctx, repo, id, in.Email); err != nil {
				return err
			}
		}

		mapper.ApplyRequest(cliente, in)
		cliente.MarkModified(uc.now())
		if err := repo.Update(ctx, cliente); err != nil {
			return err
		}
		out = mapper.ToResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("cliente_id", id).Msg("cliente actualizado")
	return &out, nil
}

// UpdateEmail cambia solo el email. Mismo email: no consulta unicidad y vuelve a guardar.
func (uc *ClienteUseCase) UpdateEmail(ctx context.Context, id int64, nuevoEmail string) (*dto.ClienteResponse, error) {
	uc.log.Info().Int64("cliente_id", id).Msg("actualizando email de cliente")

	var out dto.ClienteResponse
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		cliente, err := uc.load(ctx, repo, id)
		if err != nil {
			return err
		}
		if nuevoEmail != cliente.Email {
			if err := uc.checkEmailFree(ctx, repo, id, nuevoEmail); err != nil {
				return err
			}
		}

		cliente.Email = nuevoEmail
		cliente.MarkModified(uc.now())
		if err := repo.Update(ctx, cliente); err != nil {
			return err
		}
		out = mapper.ToResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("cliente_id", id).Msg("email de cliente actualizado")
	return &out, nil
}

// Delete elimina el cliente; si no existe no intenta borrar.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	uc.log.Info().Int64("cliente_id", id).Msg("eliminando cliente")

	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		if _, err := uc.load(ctx, repo, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("cliente_id", id).Msg("cliente eliminado")
	return nil
}

// List devuelve una página de clientes. Una página fuera de rango se informa en el log y devuelve contenido vacío.
func (uc *ClienteUseCase) List(ctx context.Context, req pagination.PageRequest) (*dto.ClientePagedResponse, error) {
	if err := checkPageRequest(req); err != nil {
		return nil, err
	}
	uc.log.Debug().Int("page", req.Page).Int("size", req.Size).Msg("listando clientes")

	var page *repository.ClientePage
	err := uc.tx.RunReadOnly(ctx, func(repo repository.ClienteRepository) error {
		var err error
		page, err = repo.List(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	totalPages := page.TotalPages
	if totalPages == 0 && page.TotalElements > 0 {
		totalPages = pagination.TotalPages(page.TotalElements, req.Size)
	}
	uc.warnIfOutOfRange("listado", req, totalPages, page.TotalElements)

	return dto.NewPagedResponse(mapper.ToResponses(page.Items), req.Size, req.Page, page.TotalElements, totalPages), nil
}

// SearchByNombre busca por subcadena de nombre sin distinguir mayúsculas.
// Un nombre vacío o en blanco devuelve una página vacía sin tocar el store.
func (uc *ClienteUseCase) SearchByNombre(ctx context.Context, nombre string, req pagination.PageRequest) (*dto.ClientePagedResponse, error) {
	if err := checkPageRequest(req); err != nil {
		return nil, err
	}
	term := strings.TrimSpace(nombre)
	if term == "" {
		uc.log.Warn().Msg("búsqueda de clientes con nombre vacío")
		return dto.NewPagedResponse[dto.ClienteResponse](nil, req.Size, req.Page, 0, 0), nil
	}
	term = norm.NFC.String(term)
	uc.log.Info().Str("nombre", term).Int("page", req.Page).Int("size", req.Size).Msg("buscando clientes por nombre")

	var (
		items []dto.ClienteResponse
		total int64
	)
	err := uc.tx.RunReadOnly(ctx, func(repo repository.ClienteRepository) error {
		var err error
		total, err = repo.CountByNombre(ctx, term)
		if err != nil {
			return err
		}
		// sin filas posibles a partir de ese offset: solo el total
		if req.Overflows() || int64(req.Offset()) >= total {
			items = []dto.ClienteResponse{}
			return nil
		}
		found, err := repo.SearchByNombre(ctx, term, req.Limit(), req.Offset())
		if err != nil {
			return err
		}
		items = mapper.ToResponses(found)
		return nil
	})
	if err != nil {
		return nil, err
	}

	totalPages := pagination.TotalPages(total, req.Size)
	uc.warnIfOutOfRange("búsqueda", req, totalPages, total)

	return dto.NewPagedResponse(items, req.Size, req.Page, total, totalPages), nil
}

func (uc *ClienteUseCase) load(ctx context.Context, repo repository.ClienteRepository, id int64) (*entity.Cliente, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		uc.log.Warn().Int64("cliente_id", id).Msg("cliente no encontrado")
		return nil, domain.NewClienteNotFound(id)
	}
	return c, nil
}

func (uc *ClienteUseCase) checkCUITFree(ctx context.Context, repo repository.ClienteRepository, id int64, cuit string) error {
	taken, err := repo.ExistsByCUIT(ctx, cuit)
	if err != nil {
		return err
	}
	if taken {
		uc.log.Warn().Int64("cliente_id", id).Str("cuit", cuit).Msg("CUIT ya asignado a otro cliente")
		return domain.NewDuplicateArgument(domain.MsgCUITTakenOther)
	}
	return nil
}

func (uc *ClienteUseCase) checkEmailFree(ctx context.Context, repo repository.ClienteRepository, id int64, email string) error {
	taken, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		uc.log.Warn().Int64("cliente_id", id).Str("email", email).Msg("email ya asignado a otro cliente")
		return domain.NewDuplicateArgument(domain.MsgEmailTakenOther)
	}
	return nil
}

func (uc *ClienteUseCase) warnIfOutOfRange(op string, req pagination.PageRequest, totalPages int, total int64) {
	if pagination.OutOfRange(req.Page, totalPages, total) {
		uc.log.Warn().
			Str("op", op).
			Int("page", req.Page).
			Int("total_pages", totalPages).
			Int64("total_elements", total).
			Msg("página solicitada fuera de rango")
	}
}

func checkPageRequest(req pagination.PageRequest) error {
	if req.Page < 0 || req.Size < 1 {
		return fmt.Errorf("%w: página %d, tamaño %d", domain.ErrInvalidInput, req.Page, req.Size)
	}
	return nil
}
