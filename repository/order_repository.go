package repository

import (
	"context"
	"time"

	"orderdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository owns the orders table.
type OrderRepository struct {
	db    *gorm.DB
	clock *Clock
}

func NewOrderRepository(db *gorm.DB, clock *Clock) *OrderRepository {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &OrderRepository{db: db, clock: clock}
}

// Create persists a new PENDING order and returns its id.
func (r *OrderRepository) Create(ctx context.Context, input models.OrderInput) (uuid.UUID, error) {
	now := r.clock.Stamp()
	order := models.Order{
		ID:             uuid.New(),
		Service:        input.Service,
		ProjectDetails: input.ProjectDetails,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		PaymentSlip:    input.PaymentSlip,
		ProjectFiles:   input.ProjectFiles,
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return uuid.Nil, translate("create order", err)
	}
	return order.ID, nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		return nil, translate("get order", err)
	}
	return &order, nil
}

// nullable maps an empty optional field to NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Update applies the non-nil fields of patch and bumps UpdatedAt. An empty
// phone, payment slip or project files value clears the field.
func (r *OrderRepository) Update(ctx context.Context, id string, patch models.OrderPatch) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if patch.Service != nil {
		updates["service"] = *patch.Service
	}
	if patch.ProjectDetails != nil {
		updates["project_details"] = *patch.ProjectDetails
	}
	if patch.CustomerName != nil {
		updates["customer_name"] = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		updates["customer_email"] = *patch.CustomerEmail
	}
	if patch.CustomerPhone != nil {
		updates["customer_phone"] = nullable(*patch.CustomerPhone)
	}
	if patch.PaymentSlip != nil {
		updates["payment_slip"] = nullable(*patch.PaymentSlip)
	}
	if patch.ProjectFiles != nil {
		updates["project_files"] = nullable(*patch.ProjectFiles)
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	updates["updated_at"] = r.clock.Stamp()

	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return translate("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateStatus sets the status without any transition check.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return r.Update(ctx, id, models.OrderPatch{Status: &status})
}

// Delete removes the order permanently.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", orderID)
	if result.Error != nil {
		return translate("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, translate("list orders", err)
	}
	return orders, nil
}

// FindByIdentifier returns the orders whose id or customer email equals term
// exactly, newest first.
func (r *OrderRepository) FindByIdentifier(ctx context.Context, term string) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Where("customer_email = ?", term)
	// The id column is typed; only a canonical uuid can be equal to it.
	if orderID, err := parseID(term); err == nil {
		query = r.db.WithContext(ctx).Where("id = ? OR customer_email = ?", orderID, term)
	}

	orders := []models.Order{}
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, translate("find orders", err)
	}
	return orders, nil
}

type statusCount struct {
	Status models.OrderStatus
	Total  int64
}

// CountByStatus returns the number of orders in each status. Every status is
// present in the result, with zero when no order has it.
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("count orders by status", err)
	}

	counts := make(map[models.OrderStatus]int64, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// CountCreatedSince counts orders created at or after t.
func (r *OrderRepository) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", t.UTC()).
		Count(&n).Error
	if err != nil {
		return 0, translate("count recent orders", err)
	}
	return n, nil
}
