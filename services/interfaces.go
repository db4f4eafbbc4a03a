package services

import (
	"context"
	"time"

	"orderdesk-backend/models"

	"github.com/google/uuid"
)

// ServiceRepository is the catalog persistence used by the engines.
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, service *models.Service) error
	Replace(ctx context.Context, id string, service *models.Service) error
	Delete(ctx context.Context, id string) error
}

// OrderStore is the order persistence used by the engines.
type OrderStore interface {
	Create(ctx context.Context, input models.OrderInput) (uuid.UUID, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, id string, patch models.OrderPatch) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Order, error)
	FindByIdentifier(ctx context.Context, term string) ([]models.Order, error)
	CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error)
	CountCreatedSince(ctx context.Context, t time.Time) (int64, error)
}

// AdminStore persists admin accounts.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Get(ctx context.Context, id string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	SetPassword(ctx context.Context, id uuid.UUID, hash string) error
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
