package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseOrderStatus accepts exactly one of the enumerated values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", Invalid("invalid order status %q", s)
	}
	return status, nil
}

// Order is a customer request against a catalog service. Service holds the
// catalog id as an opaque string and is never checked against the catalog.
type Order struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Service        string      `gorm:"not null;index" json:"service"`
	ProjectDetails string      `gorm:"type:text;not null" json:"projectDetails"`
	CustomerName   string      `gorm:"not null" json:"customerName"`
	CustomerEmail  string      `gorm:"not null;index" json:"customerEmail"`
	CustomerPhone  *string     `json:"customerPhone"`
	PaymentSlip    *string     `gorm:"type:text" json:"paymentSlip"`
	ProjectFiles   *string     `gorm:"type:text" json:"projectFiles"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt      time.Time   `gorm:"not null;index" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// OrderInput is a customer submission.
type OrderInput struct {
	Service        string
	ProjectDetails string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  *string
	PaymentSlip    *string
	ProjectFiles   *string
}

// OrderPatch replaces only the non-nil fields. Setting CustomerPhone,
// PaymentSlip or ProjectFiles to "" clears it.
type OrderPatch struct {
	Service        *string
	ProjectDetails *string
	CustomerName   *string
	CustomerEmail  *string
	CustomerPhone  *string
	PaymentSlip    *string
	ProjectFiles   *string
	Status         *OrderStatus
}
