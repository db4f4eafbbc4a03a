// Package operations is the request/response boundary of the order desk.
//
// Every operation traps its own errors and answers with an Envelope, so
// callers check Success instead of handling errors.
package operations

import (
	"encoding/json"
	"errors"

	"orderdesk-backend/logger"
	"orderdesk-backend/models"

	"go.uber.org/zap"
)

// FailureKind classifies a failed envelope.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureNotFound
	FailurePersistence
)

// Envelope is the result of one operation. It encodes as
// {"success":true,"data":...} or {"success":false,"error":"..."}.
type Envelope[T any] struct {
	Success bool
	Data    T
	Error   string
	Kind    FailureKind
}

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if e.Success {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Data    T    `json:"data"`
		}{true, e.Data})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, e.Error})
}

func ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// fail turns err into a failure envelope. Validation messages pass through
// verbatim; missing records name the entity; anything else is logged and
// replaced by generic.
func fail[T any](op, entity, generic string, err error) Envelope[T] {
	var invalid *models.ValidationError
	switch {
	case errors.As(err, &invalid):
		return Envelope[T]{Error: invalid.Message, Kind: FailureValidation}
	case errors.Is(err, models.ErrNotFound):
		return Envelope[T]{Error: entity + " not found", Kind: FailureNotFound}
	case errors.Is(err, models.ErrCorruptFeatures):
		logger.Error("data integrity fault", zap.String("op", op), zap.Error(err))
	default:
		logger.Error("operation failed", zap.String("op", op), zap.Error(err))
	}
	return Envelope[T]{Error: generic, Kind: FailurePersistence}
}
