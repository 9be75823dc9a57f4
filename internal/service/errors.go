package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/repo"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInUse        = errors.New("still referenced")
	ErrUnauthorized = errors.New("unauthorized")
)

// storeErr maps repository and gorm errors onto the service sentinels.
// Unknown errors pass through unchanged.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrCustomerExists), errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInUse
	default:
		return err
	}
}
