package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get operations when no matching row exists.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// IsNotFoundError reports whether err represents a missing record, whether it
// was produced by this package or surfaced directly from GORM.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err represents a uniqueness violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey)
}
