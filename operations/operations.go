package operations

import (
	"context"

	"orderdesk-backend/models"
	"orderdesk-backend/services"
)

// SubmitResult is returned by SubmitOrder.
type SubmitResult struct {
	OrderID string `json:"orderId"`
}

// Operations exposes the catalog and order operations to the presentation layer.
type Operations struct {
	catalog   services.ServiceRepository
	admin     *services.CatalogAdmin
	lifecycle *services.OrderLifecycle
	lookup    *services.Lookup
}

func New(catalog services.ServiceRepository, admin *services.CatalogAdmin, lifecycle *services.OrderLifecycle, lookup *services.Lookup) *Operations {
	return &Operations{catalog: catalog, admin: admin, lifecycle: lifecycle, lookup: lookup}
}

// ListServices returns the active catalog for customers.
func (o *Operations) ListServices(ctx context.Context) Envelope[[]models.Service] {
	list, err := o.catalog.ListActive(ctx)
	if err != nil {
		return fail[[]models.Service]("list services", "service", "Failed to fetch services", err)
	}
	return ok(list)
}

// ListAllServices returns the whole catalog for administrators.
func (o *Operations) ListAllServices(ctx context.Context) Envelope[[]models.Service] {
	list, err := o.catalog.ListAll(ctx)
	if err != nil {
		return fail[[]models.Service]("list all services", "service", "Failed to fetch services", err)
	}
	return ok(list)
}

func (o *Operations) GetService(ctx context.Context, id string) Envelope[*models.Service] {
	s, err := o.catalog.Get(ctx, id)
	if err != nil {
		return fail[*models.Service]("get service", "service", "Failed to fetch service", err)
	}
	return ok(s)
}

func (o *Operations) CreateService(ctx context.Context, in services.ServiceInput) Envelope[*models.Service] {
	s, err := o.admin.Create(ctx, in)
	if err != nil {
		return fail[*models.Service]("create service", "service", "Failed to create service", err)
	}
	return ok(s)
}

func (o *Operations) UpdateService(ctx context.Context, id string, in services.ServiceInput) Envelope[*models.Service] {
	s, err := o.admin.Update(ctx, id, in)
	if err != nil {
		return fail[*models.Service]("update service", "service", "Failed to update service", err)
	}
	return ok(s)
}

func (o *Operations) DeleteService(ctx context.Context, id string) Envelope[struct{}] {
	if err := o.admin.Delete(ctx, id); err != nil {
		return fail[struct{}]("delete service", "service", "Failed to delete service", err)
	}
	return ok(struct{}{})
}

// SubmitOrder records a customer order and returns its id.
func (o *Operations) SubmitOrder(ctx context.Context, in models.OrderInput) Envelope[SubmitResult] {
	id, err := o.lifecycle.Submit(ctx, in)
	if err != nil {
		return fail[SubmitResult]("submit order", "order", "Failed to create order", err)
	}
	return ok(SubmitResult{OrderID: id.String()})
}

// TrackOrders looks orders up by id or customer email. No match is a
// successful empty result.
func (o *Operations) TrackOrders(ctx context.Context, term string) Envelope[[]models.Order] {
	orders, err := o.lookup.FindByIdentifier(ctx, term)
	if err != nil {
		return fail[[]models.Order]("track orders", "order", "Failed to fetch orders", err)
	}
	return ok(orders)
}

// ListOrders is the admin dashboard listing, newest first.
func (o *Operations) ListOrders(ctx context.Context) Envelope[[]services.OrderView] {
	views, err := o.lifecycle.AdminOrders(ctx)
	if err != nil {
		return fail[[]services.OrderView]("list orders", "order", "Failed to fetch orders", err)
	}
	return ok(views)
}

func (o *Operations) OrderSummary(ctx context.Context) Envelope[*services.Summary] {
	s, err := o.lifecycle.Summary(ctx)
	if err != nil {
		return fail[*services.Summary]("order summary", "order", "Failed to fetch order summary", err)
	}
	return ok(s)
}

func (o *Operations) UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) Envelope[struct{}] {
	if err := o.lifecycle.Update(ctx, id, patch); err != nil {
		return fail[struct{}]("update order", "order", "Failed to update order", err)
	}
	return ok(struct{}{})
}

func (o *Operations) UpdateOrderStatus(ctx context.Context, id, status string) Envelope[struct{}] {
	if err := o.lifecycle.UpdateStatus(ctx, id, status); err != nil {
		return fail[struct{}]("update order status", "order", "Failed to update order status", err)
	}
	return ok(struct{}{})
}

func (o *Operations) DeleteOrder(ctx context.Context, id string) Envelope[struct{}] {
	if err := o.lifecycle.Delete(ctx, id); err != nil {
		return fail[struct{}]("delete order", "order", "Failed to delete order", err)
	}
	return ok(struct{}{})
}
