package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidValue covers check constraint and numeric range rejections.
	ErrInvalidValue = errors.New("value rejected by constraint")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// DuplicateError reports the unique constraint that rejected a write.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value violates %s", e.Constraint)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// MissingProductError is returned by checkout when a cart entry points at a
// product that no longer exists.
type MissingProductError struct {
	ProductID uuid.UUID
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product %s no longer exists", e.ProductID)
}

func (e *MissingProductError) Is(target error) bool {
	return target == ErrNotFound
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pgUniqueViolation:
		return &DuplicateError{Constraint: pqErr.Constraint}
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrNotFound, pqErr.Constraint)
	case pgCheckViolation, pgNumericOutOfRange:
		return fmt.Errorf("%w: %s", ErrInvalidValue, pqErr.Message)
	}

	return err
}
