package models

import (
	"time"

	"orderdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser is an account allowed through the admin gate.
type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`

	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Initialize UUID and hash the plain password before creating
func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
