package repository

import (
	"context"

	"orderdesk-backend/models"

	"gorm.io/gorm"
)

// ServiceStore owns the services table.
type ServiceStore struct {
	db    *gorm.DB
	clock *Clock
}

func NewServiceStore(db *gorm.DB, clock *Clock) *ServiceStore {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &ServiceStore{db: db, clock: clock}
}

// ListActive returns the services offered to customers, oldest first.
func (s *ServiceStore) ListActive(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&services).Error
	if err != nil {
		return nil, translate("list active services", err)
	}
	return services, nil
}

// ListAll returns every service including inactive ones, oldest first.
func (s *ServiceStore) ListAll(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, translate("list services", err)
	}
	return services, nil
}

func (s *ServiceStore) Get(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", serviceID).Error; err != nil {
		return nil, translate("get service", err)
	}
	return &service, nil
}

func (s *ServiceStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Service{}).Count(&n).Error; err != nil {
		return 0, translate("count services", err)
	}
	return n, nil
}

// Create stamps CreatedAt and inserts the service.
func (s *ServiceStore) Create(ctx context.Context, service *models.Service) error {
	service.CreatedAt = s.clock.Stamp()
	return translate("create service", s.db.WithContext(ctx).Create(service).Error)
}

// Replace overwrites every mutable column of an existing service.
func (s *ServiceStore) Replace(ctx context.Context, id string, service *models.Service) error {
	serviceID, err := parseID(id)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", serviceID).
		Updates(map[string]interface{}{
			"name":        service.Name,
			"description": service.Description,
			"icon":        service.Icon,
			"price":       service.Price,
			"features":    service.Features,
			"active":      service.Active,
		})
	if result.Error != nil {
		return translate("update service", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the service permanently.
func (s *ServiceStore) Delete(ctx context.Context, id string) error {
	serviceID, err := parseID(id)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", serviceID)
	if result.Error != nil {
		return translate("delete service", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
