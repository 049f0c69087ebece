package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ClienteNotFoundError el cliente con ese ID no existe.
type ClienteNotFoundError struct {
	ID int64
}

func (e *ClienteNotFoundError) Error() string {
	return fmt.Sprintf("Cliente no encontrado con ID: %d", e.ID)
}

func (e *ClienteNotFoundError) Unwrap() error { return ErrNotFound }

// NewClienteNotFound construye el error para el ID dado.
func NewClienteNotFound(id int64) error {
	return &ClienteNotFoundError{ID: id}
}

// DuplicateArgumentError regla de unicidad violada antes de escribir (CUIT o email ya tomados).
type DuplicateArgumentError struct {
	Message string
}

func (e *DuplicateArgumentError) Error() string { return e.Message }

func (e *DuplicateArgumentError) Unwrap() error { return ErrDuplicate }

// NewDuplicateArgument construye el error con el mensaje para el usuario.
func NewDuplicateArgument(msg string) error {
	return &DuplicateArgumentError{Message: msg}
}

// ConstraintViolationError el store rechazó la escritura por una restricción única
// (p. ej. dos altas concurrentes con el mismo CUIT).
type ConstraintViolationError struct {
	Constraint string
	Detail     string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("violación de restricción %s: %s", e.Constraint, e.Detail)
}

func (e *ConstraintViolationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Err}
}

// Mensajes de unicidad.
const (
	MsgCUITExists       = "Ya existe un cliente con ese CUIT"
	MsgEmailExists      = "Ya existe un cliente con ese email"
	MsgCUITTakenOther   = "El CUIT ya pertenece a otro cliente"
	MsgEmailTakenOther  = "El email ya pertenece a otro cliente"
	MsgIntegrityGeneric = "Error de integridad en base de datos"
)
