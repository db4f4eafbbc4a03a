// services/lookup.go
package services

import (
	"context"

	"orderdesk-backend/models"
)

// Lookup resolves a customer supplied order id or email to orders.
type Lookup struct {
	orders OrderStore
}

func NewLookup(orders OrderStore) *Lookup {
	return &Lookup{orders: orders}
}

// FindByIdentifier returns the orders whose id or customer email equals term,
// newest first. No match is an empty slice, not an error.
func (l *Lookup) FindByIdentifier(ctx context.Context, term string) ([]models.Order, error) {
	return l.orders.FindByIdentifier(ctx, term)
}
