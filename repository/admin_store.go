package repository

import (
	"context"
	"time"

	"orderdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminStore owns the admin_users table.
type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate("find admin", err)
	}
	return &user, nil
}

func (s *AdminStore) Get(ctx context.Context, id string) (*models.AdminUser, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var user models.AdminUser
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, translate("get admin", err)
	}
	return &user, nil
}

// Create inserts the user; the model hook hashes the plain password.
func (s *AdminStore) Create(ctx context.Context, user *models.AdminUser) error {
	return translate("create admin", s.db.WithContext(ctx).Create(user).Error)
}

func (s *AdminStore) SetPassword(ctx context.Context, id uuid.UUID, hash string) error {
	err := s.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("password", hash).Error
	return translate("set admin password", err)
}

func (s *AdminStore) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login", at).Error
	return translate("touch admin login", err)
}
