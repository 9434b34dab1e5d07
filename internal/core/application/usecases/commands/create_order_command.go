package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order with its
// financial inputs and owned line items. The customer is optional: guest
// orders carry no customer identifier.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      *kernel.ActorID
	items           []order.LineItem
	discountAmount  decimal.Decimal
	postageCost     decimal.Decimal
	postageTax      decimal.Decimal
	billingAddress  string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Line items must be constructed values; an order without items is valid.
func NewCreateOrderCommand(
	customerID *kernel.ActorID,
	items []order.LineItem,
	discountAmount decimal.Decimal,
	postageCost decimal.Decimal,
	postageTax decimal.Decimal,
	billingAddress string,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		postageCost:     postageCost,
		postageTax:      postageTax,
		billingAddress:  billingAddress,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setDiscountAmount(discountAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the placing actor's identifier, nil for guest orders.
func (c CreateOrderCommand) CustomerID() *kernel.ActorID {
	return c.customerID
}

// Items returns the line items the new order will own.
func (c CreateOrderCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}

// DiscountAmount returns the aggregate discount.
func (c CreateOrderCommand) DiscountAmount() decimal.Decimal {
	return c.discountAmount
}

// PostageCost returns the shipping cost.
func (c CreateOrderCommand) PostageCost() decimal.Decimal {
	return c.postageCost
}

// PostageTax returns the tax charged on shipping.
func (c CreateOrderCommand) PostageTax() decimal.Decimal {
	return c.postageTax
}

// BillingAddress returns the opaque billing address string.
func (c CreateOrderCommand) BillingAddress() string {
	return c.billingAddress
}

// DeliveryAddress returns the opaque delivery address string.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.ActorID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]order.LineItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setDiscountAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("discountAmount")
	}
	c.discountAmount = amount
	return nil
}
