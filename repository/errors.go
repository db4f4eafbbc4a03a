package repository

import (
	"errors"

	"orderdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return &models.PersistenceError{Op: op, Err: err}
}

// parseID maps an opaque id to a uuid. Anything that is not the canonical
// form of an existing id cannot exist, so it is reported as not found.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return uuid.Nil, models.ErrNotFound
	}
	return parsed, nil
}
