// services/catalog.go
package services

import (
	"context"
	"strings"

	"orderdesk-backend/models"

	"github.com/shopspring/decimal"
)

// ServiceInput is the editable part of a catalog service.
type ServiceInput struct {
	Name        string
	Description string
	Icon        string
	Price       decimal.Decimal
	Features    []string
	// Active is ignored on create. On update a nil value keeps the current flag.
	Active *bool
}

// CatalogAdmin performs validated writes over the catalog.
type CatalogAdmin struct {
	store ServiceRepository
}

func NewCatalogAdmin(store ServiceRepository) *CatalogAdmin {
	return &CatalogAdmin{store: store}
}

func validateService(in ServiceInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.Invalid("service name is required")
	}
	if in.Price.IsNegative() {
		return models.Invalid("price must not be negative")
	}
	return nil
}

// Create adds an active service.
func (a *CatalogAdmin) Create(ctx context.Context, in ServiceInput) (*models.Service, error) {
	if err := validateService(in); err != nil {
		return nil, err
	}
	service := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Icon:        in.Icon,
		Price:       in.Price,
		Features:    models.CleanFeatures(in.Features),
		Active:      true,
	}
	if err := a.store.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Update replaces every mutable field of an existing service.
func (a *CatalogAdmin) Update(ctx context.Context, id string, in ServiceInput) (*models.Service, error) {
	if err := validateService(in); err != nil {
		return nil, err
	}
	current, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Description = in.Description
	current.Icon = in.Icon
	current.Price = in.Price
	current.Features = models.CleanFeatures(in.Features)
	if in.Active != nil {
		current.Active = *in.Active
	}

	if err := a.store.Replace(ctx, id, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a service permanently. Orders that reference it are left alone.
func (a *CatalogAdmin) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}
