package commands

import (
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order ID must be greater than 0")
)

// UpdateOrderCommand represents a request to replace an existing order's
// contents: discount, postage, addresses, and the owned line item set.
// Editability (the status whitelist) is enforced by the authorization gate at
// the boundary, not here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	items           []order.LineItem
	discountAmount  decimal.Decimal
	postageCost     decimal.Decimal
	postageTax      decimal.Decimal
	billingAddress  string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order's contents.
func NewUpdateOrderCommand(
	orderID int64,
	items []order.LineItem,
	discountAmount decimal.Decimal,
	postageCost decimal.Decimal,
	postageTax decimal.Decimal,
	billingAddress string,
	deliveryAddress string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		postageCost:     postageCost,
		postageTax:      postageTax,
		billingAddress:  billingAddress,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setDiscountAmount(discountAmount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being edited.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Items returns the replacement line item set.
func (c UpdateOrderCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}

// DiscountAmount returns the replacement aggregate discount.
func (c UpdateOrderCommand) DiscountAmount() decimal.Decimal {
	return c.discountAmount
}

// PostageCost returns the replacement shipping cost.
func (c UpdateOrderCommand) PostageCost() decimal.Decimal {
	return c.postageCost
}

// PostageTax returns the replacement shipping tax.
func (c UpdateOrderCommand) PostageTax() decimal.Decimal {
	return c.postageTax
}

// BillingAddress returns the replacement billing address.
func (c UpdateOrderCommand) BillingAddress() string {
	return c.billingAddress
}

// DeliveryAddress returns the replacement delivery address.
func (c UpdateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []order.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]order.LineItem(nil), items...)
	return nil
}

func (c *UpdateOrderCommand) setDiscountAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("discountAmount")
	}
	c.discountAmount = amount
	return nil
}
