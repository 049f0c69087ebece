package dto

import "slices"

// ClienteRequest body para POST y PUT /api/clientes.
type ClienteRequest struct {
	Nombre          string `json:"nombre" validate:"notblank,min=2,max=100" example:"Juan"`
	Apellido        string `json:"apellido" validate:"notblank,min=2,max=100" example:"Pérez"`
	RazonSocial     string `json:"razonSocial" validate:"notblank,min=2,max=150" example:"Pérez S.A."`
	CUIT            string `json:"cuit" validate:"notblank,cuit" example:"20-12345678-6"`
	FechaNacimiento Date   `json:"fechaNacimiento" validate:"required,pastdate" swaggertype:"string" example:"1990-05-15"`
	TelefonoCelular string `json:"telefonoCelular" validate:"omitempty,max=30,phone" example:"+54 11 2345-6789"`
	Email           string `json:"email" validate:"notblank,email,max=150" example:"juan.perez@email.com"`
}

// EmailUpdateRequest body para PATCH /api/clientes/{id}/email.
type EmailUpdateRequest struct {
	NuevoEmail string `json:"nuevoEmail" validate:"notblank,email,max=150" example:"nuevo.correo@email.com"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID                int64    `json:"id" example:"1"`
	Nombre            string   `json:"nombre" example:"Juan"`
	Apellido          string   `json:"apellido" example:"Pérez"`
	RazonSocial       string   `json:"razonSocial" example:"Pérez S.A."`
	CUIT              string   `json:"cuit" example:"20-12345678-6"`
	FechaNacimiento   Date     `json:"fechaNacimiento" swaggertype:"string" example:"15/05/1990"`
	TelefonoCelular   string   `json:"telefonoCelular" example:"+54 11 2345-6789"`
	Email             string   `json:"email" example:"juan.perez@email.com"`
	FechaCreacion     DateTime `json:"fechaCreacion" swaggertype:"string" example:"17/02/2026 18:55:25"`
	FechaModificacion DateTime `json:"fechaModificacion" swaggertype:"string" example:"17/02/2026 19:10:02"`
}

// ClientePagedResponse alias concreto para la documentación Swagger.
type ClientePagedResponse = PagedResponse[ClienteResponse]

// ClienteSortProperties propiedades aceptadas en ?sort=.
var ClienteSortProperties = []string{
	"id", "nombre", "apellido", "razonSocial", "cuit", "email",
	"fechaNacimiento", "fechaCreacion", "fechaModificacion",
}

// IsClienteSortable indica si la propiedad puede pedirse en ?sort=.
func IsClienteSortable(property string) bool {
	return slices.Contains(ClienteSortProperties, property)
}
