// Package mapper convierte entre los DTO de la API y la entidad persistida. Funciones puras.
package mapper

import (
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ToResponse copia la entidad 1:1, incluidas las marcas de auditoría.
func ToResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Apellido:          c.Apellido,
		RazonSocial:       c.RazonSocial,
		CUIT:              c.CUIT,
		FechaNacimiento:   dto.DateOf(c.FechaNacimiento),
		TelefonoCelular:   c.TelefonoCelular,
		Email:             c.Email,
		FechaCreacion:     dto.DateTime{Time: c.FechaCreacion},
		FechaModificacion: dto.DateTime{Time: c.FechaModificacion},
	}
}

// ToResponses mapea una lista; nunca devuelve nil.
func ToResponses(list []*entity.Cliente) []dto.ClienteResponse {
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToResponse(c))
	}
	return out
}

// ToEntity crea una entidad sin ID ni marcas de auditoría (las asigna el alta).
func ToEntity(r dto.ClienteRequest) *entity.Cliente {
	c := &entity.Cliente{}
	ApplyRequest(c, r)
	return c
}

// ApplyRequest pisa los campos de negocio de c. No toca ID ni auditoría.
func ApplyRequest(c *entity.Cliente, r dto.ClienteRequest) {
	c.Nombre = r.Nombre
	c.Apellido = r.Apellido
	c.RazonSocial = r.RazonSocial
	c.CUIT = r.CUIT
	c.FechaNacimiento = dto.DateOf(r.FechaNacimiento.Time).Time
	c.TelefonoCelular = r.TelefonoCelular
	c.Email = r.Email
}
