package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler moves an order to a new status and runs the
// after-write lifecycle, which dispatches every notification rule registered
// for the new status. The prior status comes from the store itself, so a
// write that leaves the status unchanged dispatches nothing.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  Lifecycle
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, lifecycle Lifecycle) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle loads the order, applies the status change, persists it, and lets
// the lifecycle react to the transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.ChangeStatus(cmd.Status()); err != nil {
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
