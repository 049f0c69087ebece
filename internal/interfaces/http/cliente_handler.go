package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

// ClienteService operaciones de clientes que expone la API.
type ClienteService interface {
	Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error)
	Update(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error)
	UpdateEmail(ctx context.Context, id int64, nuevoEmail string) (*dto.ClienteResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page pagination.PageRequest) (*dto.ClientePagedResponse, error)
	SearchByNombre(ctx context.Context, nombre string, page pagination.PageRequest) (*dto.ClientePagedResponse, error)
}

// ClienteHandler maneja las peticiones HTTP para Cliente.
type ClienteHandler struct {
	svc       ClienteService
	validator *RequestValidator
	paging    pagination.Config
}

// NewClienteHandler construye el handler.
func NewClienteHandler(svc ClienteService, v *RequestValidator, paging pagination.Config) *ClienteHandler {
	if v == nil {
		v = NewRequestValidator(ValidatorOptions{})
	}
	if paging.DefaultPageSize < 1 {
		paging = pagination.DefaultConfig()
	}
	return &ClienteHandler{svc: svc, validator: v, paging: paging}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ApiErrorResponse
// @Failure      409   {object}  dto.ApiErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := h.bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes paginados
// @Tags         clientes
// @Produce      json
// @Param        page  query     int     false  "Página (desde 0)"  default(0)
// @Param        size  query     int     false  "Tamaño de página"  default(10)
// @Param        sort  query     string  false  "propiedad[,asc|desc]; repetible"  default(id)
// @Success      200   {object}  dto.ClientePagedResponse
// @Failure      400   {object}  dto.ApiErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	page, err := h.pageRequest(c, true)
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar clientes por nombre
// @Description  Coincidencia parcial sin distinguir mayúsculas. Un nombre vacío devuelve una página vacía.
// @Tags         clientes
// @Produce      json
// @Param        nombre  query     string  false  "Texto a buscar en el nombre"
// @Param        page    query     int     false  "Página (desde 0)"  default(0)
// @Param        size    query     int     false  "Tamaño de página"  default(10)
// @Success      200     {object}  dto.ClientePagedResponse
// @Failure      400     {object}  dto.ApiErrorResponse
// @Router       /api/clientes/search [get]
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	page, err := h.pageRequest(c, false)
	if err != nil {
		return err
	}
	out, err := h.svc.SearchByNombre(c.UserContext(), c.Query("nombre"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ApiErrorResponse
// @Failure      404  {object}  dto.ApiErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID del cliente"
// @Param        body  body      dto.ClienteRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ApiErrorResponse
// @Failure      404   {object}  dto.ApiErrorResponse
// @Failure      409   {object}  dto.ApiErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.ClienteRequest
	if err := h.bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateEmail godoc
// @Summary      Actualizar email del cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "ID del cliente"
// @Param        body  body      dto.EmailUpdateRequest  true  "Nuevo email"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ApiErrorResponse
// @Failure      404   {object}  dto.ApiErrorResponse
// @Router       /api/clientes/{id}/email [patch]
func (h *ClienteHandler) UpdateEmail(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.EmailUpdateRequest
	if err := h.bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateEmail(c.UserContext(), id, in.NuevoEmail)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Security     Bearer
// @Param        id   path  int  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ApiErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClienteHandler) bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &BodyError{Err: err}
	}
	return h.validator.Validate(out)
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, &ParamError{Name: "id", Err: err}
	}
	return id, nil
}

// pageRequest lee page, size y (si withSort) sort. Tamaño ausente o no positivo = por defecto; mayor al máximo = máximo.
func (h *ClienteHandler) pageRequest(c *fiber.Ctx, withSort bool) (pagination.PageRequest, error) {
	var req pagination.PageRequest

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return req, &ParamError{Name: "page", Err: err}
		}
		req.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, &ParamError{Name: "size", Err: err}
		}
		req.Size = n
	}
	req.Normalize(h.paging)

	if withSort {
		var values []string
		for _, v := range c.Context().QueryArgs().PeekMulti("sort") {
			values = append(values, string(v))
		}
		orders, err := pagination.ParseSort(values...)
		if err != nil {
			return req, &ParamError{Name: "sort", Err: err}
		}
		for _, o := range orders {
			if !dto.IsClienteSortable(o.Property) {
				return req, &ParamError{Name: "sort"}
			}
		}
		if len(orders) == 0 {
			orders = []pagination.SortOrder{{Property: "id"}}
		}
		req.Sort = orders
	}
	return req, nil
}
