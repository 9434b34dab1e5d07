package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order and cascades the deletion of its
// owned line items first. A failing cascade aborts the transaction, so the
// parent row never outlives a partial child deletion.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  Lifecycle
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, lifecycle Lifecycle) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle loads the order, runs the before-delete cascade, and removes the
// order row, all within one transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = h.lifecycle.BeforeDelete(ctx, orders, o); err != nil {
		return err
	}

	if err = orders.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
