package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func TestMarkCreated_IgualaAmbasMarcas(t *testing.T) {
	now := time.Date(2026, 2, 17, 18, 55, 25, 0, time.UTC)
	c := &entity.Cliente{}
	c.MarkCreated(now)

	assert.Equal(t, now, c.FechaCreacion)
	assert.Equal(t, c.FechaCreacion, c.FechaModificacion)
}

func TestMarkModified_NoTocaCreacion(t *testing.T) {
	created := time.Date(2026, 2, 17, 18, 0, 0, 0, time.UTC)
	c := &entity.Cliente{}
	c.MarkCreated(created)

	later := created.Add(time.Hour)
	c.MarkModified(later)
	assert.Equal(t, created, c.FechaCreacion)
	assert.Equal(t, later, c.FechaModificacion)

	// reloj atrasado: la modificación nunca queda antes de la creación
	c.MarkModified(created.Add(-time.Minute))
	assert.Equal(t, created, c.FechaModificacion)
}
