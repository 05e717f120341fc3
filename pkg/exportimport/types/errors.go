package types

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaIncompatible   = errors.New("snapshot schema version is incompatible")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrValidationFailed     = errors.New("snapshot failed validation")
	ErrStorage              = errors.New("storage failure")
	ErrInvalidMode          = errors.New("invalid import mode")
)

// ReferenceError is raised when a required reference cannot be resolved
// while an import is running.
type ReferenceError struct {
	Entity   EntityType
	ID       uint
	Field    string
	Target   EntityType
	TargetID uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%v: %s %d: %s=%d does not resolve to any %s",
		ErrReferentialIntegrity, e.Entity, e.ID, e.Field, e.TargetID, e.Target)
}

func (e *ReferenceError) Unwrap() error { return ErrReferentialIntegrity }

// StorageError tags err as a persistence failure.
func StorageError(op string, err error) error {
	if err == nil || errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
