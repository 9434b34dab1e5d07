package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles edits to an existing order's contents.
// The after-write lifecycle still runs: it backfills a missing number and
// would dispatch notifications if the stored status differed, which it does
// not for plain edits.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  Lifecycle
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, lifecycle Lifecycle) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle loads the order, replaces its financial inputs and line items, and
// persists the result within one transaction.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.SetDiscountAmount(cmd.DiscountAmount()); err != nil {
		return err
	}
	o.SetPostage(cmd.PostageCost(), cmd.PostageTax())
	o.SetAddresses(cmd.BillingAddress(), cmd.DeliveryAddress())
	if err = o.ReplaceItems(cmd.Items()); err != nil {
		return err
	}

	previousStatus, err := orders.Update(ctx, o)
	if err != nil {
		return err
	}

	if err = h.lifecycle.AfterWrite(ctx, orders, uow.NotificationRuleRepository(), o, previousStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
