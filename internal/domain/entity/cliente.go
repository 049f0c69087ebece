package entity

import "time"

// Cliente representa un cliente persistido en la tabla clientes.
// CUIT y Email son únicos; FechaCreacion se fija una sola vez al insertar.
type Cliente struct {
	ID                int64
	Nombre            string
	Apellido          string
	RazonSocial       string
	CUIT              string // formato XX-XXXXXXXX-X
	FechaNacimiento   time.Time
	TelefonoCelular   string
	Email             string
	FechaCreacion     time.Time
	FechaModificacion time.Time
}

// MarkCreated fija ambas marcas de auditoría con el mismo instante.
func (c *Cliente) MarkCreated(now time.Time) {
	c.FechaCreacion = now
	c.FechaModificacion = now
}

// MarkModified actualiza la marca de modificación sin tocar FechaCreacion.
// Nunca deja FechaModificacion por debajo de FechaCreacion.
func (c *Cliente) MarkModified(now time.Time) {
	if now.Before(c.FechaCreacion) {
		now = c.FechaCreacion
	}
	c.FechaModificacion = now
}
