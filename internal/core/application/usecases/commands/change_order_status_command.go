package commands

import (
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The target status is validated against the catalog by the
// aggregate when the handler applies it.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(orderID int64, status order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose status changes.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if status == order.StatusUnset {
		return errs.NewValueIsRequiredError("status")
	}
	c.status = status
	return nil
}
