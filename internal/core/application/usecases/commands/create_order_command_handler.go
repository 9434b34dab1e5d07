package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the new aggregate and runs the after-write lifecycle, which assigns
// the one-time display number with a nested write in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    *order.Catalog
	lifecycle  Lifecycle
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog *order.Catalog, lifecycle Lifecycle) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		lifecycle:  lifecycle,
	}
}

// Handle processes the order creation command and returns the identifier
// assigned by the store. No notifications fire on creation: the stored status
// equals the status being written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		h.catalog,
		cmd.CustomerID(),
		cmd.Items(),
		cmd.DiscountAmount(),
		cmd.PostageCost(),
		cmd.PostageTax(),
		cmd.BillingAddress(),
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	if err = orders.Add(ctx, o); err != nil {
		return 0, err
	}

	if err = h.lifecycle.AfterWrite(ctx, orders, uow.NotificationRuleRepository(), o, o.Status()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
