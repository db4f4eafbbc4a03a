package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Prices are rendered as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Service is an orderable catalog offering.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Icon        string          `gorm:"type:varchar(32)" json:"icon"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Features    FeatureList     `gorm:"type:text;not null" json:"features"`
	Active      bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Features == nil {
		s.Features = FeatureList{}
	}
	return
}
