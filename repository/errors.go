package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors shared across repositories. ErrNotFound covers both absent
// entities and entities outside the caller's tenant, so a cross-tenant probe
// is indistinguishable from a miss.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflicting record exists")
	ErrDependency = errors.New("storage unavailable")
)

// wrap maps driver errors onto the sentinel set.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if IsDuplicate(err) {
		return ErrConflict
	}
	return err
}

// IsDuplicate reports whether err is a unique-constraint violation. GORM
// translates these for some drivers; the string checks cover sqlite and
// postgres when translation is off.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
