package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/clientes-api/internal/domain"
)

const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// asConstraintViolation traduce un 23505 a ConstraintViolationError; cualquier otro error vuelve sin cambios.
func asConstraintViolation(err error) error {
	if !isUniqueViolation(err) {
		return err
	}
	cv := &domain.ConstraintViolationError{Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		cv.Constraint = pgErr.ConstraintName
		cv.Detail = pgErr.Detail
	} else {
		cv.Detail = err.Error()
	}
	return cv
}
