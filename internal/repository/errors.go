package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrConstraintViolation is returned when a write is rejected by a schema
// constraint: status outside its enumeration, missing topic, or a duplicate
// unique key.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrNotFound is returned by services when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// pq error classes for NOT NULL, unique and CHECK violations.
var constraintCodes = map[pq.ErrorCode]bool{
	"23502": true,
	"23505": true,
	"23514": true,
}

func wrapConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && constraintCodes[pqErr.Code] {
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pqErr.Message)
	}
	return err
}
