// services/orders.go
package services

import (
	"context"
	"strings"
	"time"

	"orderdesk-backend/logger"
	"orderdesk-backend/models"
	"orderdesk-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// OrderView is an order as shown on the admin dashboard.
type OrderView struct {
	models.Order
	// ServiceName is the catalog name of Service, or Service itself when the
	// catalog no longer has it.
	ServiceName string `json:"serviceName"`
}

// Summary holds the dashboard counters.
type Summary struct {
	Total        int64                        `json:"total"`
	ByStatus     map[models.OrderStatus]int64 `json:"byStatus"`
	CreatedToday int64                        `json:"createdToday"`
}

// OrderLifecycle runs every administrator action on orders.
type OrderLifecycle struct {
	orders  OrderStore
	catalog ServiceRepository
	names   singleflight.Group
	now     func() time.Time
}

func NewOrderLifecycle(orders OrderStore, catalog ServiceRepository) *OrderLifecycle {
	return &OrderLifecycle{orders: orders, catalog: catalog, now: time.Now}
}

// Submit records a customer order. It starts PENDING.
func (l *OrderLifecycle) Submit(ctx context.Context, in models.OrderInput) (uuid.UUID, error) {
	switch {
	case strings.TrimSpace(in.Service) == "":
		return uuid.Nil, models.Invalid("service is required")
	case strings.TrimSpace(in.CustomerName) == "":
		return uuid.Nil, models.Invalid("customer name is required")
	case strings.TrimSpace(in.CustomerEmail) == "":
		return uuid.Nil, models.Invalid("customer email is required")
	case strings.TrimSpace(in.ProjectDetails) == "":
		return uuid.Nil, models.Invalid("project details are required")
	}
	return l.orders.Create(ctx, in)
}

// AdminOrders lists every order newest first with its service name resolved.
func (l *OrderLifecycle) AdminOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := l.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := l.serviceNames(ctx)

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.Service]
		if !ok {
			name = o.Service
		}
		views = append(views, OrderView{Order: o, ServiceName: name})
	}
	return views, nil
}

// serviceNames maps catalog ids to names. Lookups running at the same time
// share one catalog read, which outlives the caller that started it. A failed
// read yields an empty map.
func (l *OrderLifecycle) serviceNames(ctx context.Context) map[string]string {
	v, err, _ := l.names.Do("service-names", func() (interface{}, error) {
		services, err := l.catalog.ListAll(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		names := make(map[string]string, len(services))
		for _, s := range services {
			names[s.ID.String()] = s.Name
		}
		return names, nil
	})
	if err != nil {
		logger.Warn("service names unavailable", zap.Error(err))
		return map[string]string{}
	}
	return v.(map[string]string)
}

// Update patches the provided fields of an order.
func (l *OrderLifecycle) Update(ctx context.Context, id string, patch models.OrderPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Invalid("invalid order status %q", string(*patch.Status))
	}
	return l.orders.Update(ctx, id, patch)
}

// UpdateStatus moves an order to any status, including backwards and onto
// its current status.
func (l *OrderLifecycle) UpdateStatus(ctx context.Context, id, status string) error {
	s, err := models.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	return l.orders.UpdateStatus(ctx, id, s)
}

func (l *OrderLifecycle) Delete(ctx context.Context, id string) error {
	return l.orders.Delete(ctx, id)
}

// Summary counts orders per status and those created since local midnight.
func (l *OrderLifecycle) Summary(ctx context.Context) (*Summary, error) {
	counts, err := l.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	today, err := l.orders.CountCreatedSince(ctx, utils.BeginningOfDay(l.now()))
	if err != nil {
		return nil, err
	}

	summary := &Summary{ByStatus: counts, CreatedToday: today}
	for _, n := range counts {
		summary.Total += n
	}
	return summary, nil
}
