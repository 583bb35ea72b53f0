package service

import (
	"errors"

	"github.com/repodosen/repositori-backend/internal/repository"
)

// Domain errors shared by the resource services. Handlers map these onto
// HTTP statuses with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid nama_lengkap or nip")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("already exists")
	ErrMissingReference   = errors.New("referenced record does not exist")
	ErrStillReferenced    = errors.New("record is still referenced by other data")
	ErrInvalidValue       = errors.New("value outside the allowed set")
)

// fromRepository translates storage error classes into domain errors.
// ErrForeignKey is ambiguous at the storage level: on insert/update it means
// a dangling reference, on delete it means the row is still referenced, so
// the caller picks the right meaning via onFK.
func fromRepository(err error, onFK error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return ErrDuplicateKey
	case errors.Is(err, repository.ErrForeignKey):
		return onFK
	case errors.Is(err, repository.ErrCheckViolation):
		return ErrInvalidValue
	}
	return err
}
