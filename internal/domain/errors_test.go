package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clientes-api/internal/domain"
)

func TestClienteNotFoundError(t *testing.T) {
	err := fmt.Errorf("buscar: %w", domain.NewClienteNotFound(42))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.ClienteNotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(42), nf.ID)
	assert.Equal(t, "Cliente no encontrado con ID: 42", nf.Error())
}

func TestDuplicateArgumentError(t *testing.T) {
	err := domain.NewDuplicateArgument(domain.MsgCUITExists)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Ya existe un cliente con ese CUIT", err.Error())
}

func TestConstraintViolationError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := &domain.ConstraintViolationError{Constraint: "clientes_email_key", Detail: "Key (email)=(a@b.com) already exists.", Err: cause}

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "clientes_email_key")
}
