package commands

import (
	"context"
)

// repairBatchSize bounds how many unnumbered orders one sweep picks up.
const repairBatchSize = 100

// RepairOrderNumbersCommandHandler assigns display numbers to persisted orders
// that have none. Each sweep runs in one transaction; EnsureNumber skips any
// order that gained a number since it was read, so overlapping sweeps are safe.
type RepairOrderNumbersCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  Lifecycle
}

// NewRepairOrderNumbersCommandHandler creates a handler for numbering repair sweeps.
func NewRepairOrderNumbersCommandHandler(uowFactory OrderUoWFactory, lifecycle Lifecycle) RepairOrderNumbersCommandHandler {
	return RepairOrderNumbersCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle numbers one batch of unnumbered orders and returns how many it fixed.
func (h *RepairOrderNumbersCommandHandler) Handle(ctx context.Context, cmd RepairOrderNumbersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	unnumbered, err := orders.FindUnnumbered(ctx, repairBatchSize)
	if err != nil {
		return 0, err
	}

	for _, o := range unnumbered {
		if err = h.lifecycle.EnsureNumber(ctx, orders, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(unnumbered), nil
}
