package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNumberAlreadyAssigned is returned when assigning an order number to an
	// order that already carries one. The number is assigned exactly once and is
	// immutable thereafter.
	ErrNumberAlreadyAssigned = errors.New("order number is already assigned")

	// ErrIDAlreadyAssigned is returned when attaching a persistence identifier to
	// an order that already has one.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order is the aggregate root representing a customer's purchase: its status,
// its financial inputs (discount, postage cost and tax), and the line items it
// owns. Monetary totals are never stored on the aggregate; they are recomputed
// on demand from the current line items, discount, and postage.
//
// Order maintains these invariants:
//   - The numeric identifier is assigned once, by the persistence layer.
//   - The display number is assigned at most once and never recomputed.
//   - The status always belongs to the configured catalog.
//   - The discount amount is never negative.
//   - Line items are owned: they are replaced as a set and deleted with the order.
type Order struct {
	id              int64
	number          string
	status          Status
	discountAmount  decimal.Decimal
	postageCost     decimal.Decimal
	postageTax      decimal.Decimal
	customerID      *kernel.ActorID
	billingAddress  string
	deliveryAddress string
	items           []LineItem

	catalog *Catalog
	guard   guard.ConstructorGuard
}

// NewOrder creates a new order in the catalog's default status with no
// identifier and no number; both are assigned around first persistence.
//
// customerID is nil for guest orders. Line items may be empty: an order with
// no items is valid and values to postage and tax only.
func NewOrder(
	catalog *Catalog,
	customerID *kernel.ActorID,
	items []LineItem,
	discountAmount decimal.Decimal,
	postageCost decimal.Decimal,
	postageTax decimal.Decimal,
	billingAddress string,
	deliveryAddress string,
) (*Order, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:      catalog.DefaultStatus(),
		postageCost: postageCost,
		postageTax:  postageTax,
		catalog:     catalog,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setDiscountAmount(discountAmount),
		o.replaceItems(items),
	); err != nil {
		return nil, err
	}

	o.billingAddress = billingAddress
	o.deliveryAddress = deliveryAddress

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored identifier, number, and status, and validates the status
// against the catalog (the unset status is accepted for legacy rows written
// before a status was recorded).
func RestoreOrder(
	catalog *Catalog,
	id int64,
	number string,
	status Status,
	customerID *kernel.ActorID,
	items []LineItem,
	discountAmount decimal.Decimal,
	postageCost decimal.Decimal,
	postageTax decimal.Decimal,
	billingAddress string,
	deliveryAddress string,
) (*Order, error) {
	o, err := NewOrder(catalog, customerID, items, discountAmount, postageCost, postageTax, billingAddress, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid persistence identifier", id))
	}
	if status != StatusUnset && !catalog.Contains(status) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not part of the configured status set", status))
	}

	o.id = id
	o.number = number
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the persistence-assigned numeric identifier, zero before first save.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the display order number, empty until assigned.
func (o *Order) Number() string {
	return o.number
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DiscountAmount returns the aggregate discount applied to the order.
func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

// PostageCost returns the shipping cost.
func (o *Order) PostageCost() decimal.Decimal {
	return o.postageCost
}

// PostageTax returns the tax charged on shipping.
func (o *Order) PostageTax() decimal.Decimal {
	return o.postageTax
}

// CustomerID returns the placing actor's identifier, nil for guest orders.
func (o *Order) CustomerID() *kernel.ActorID {
	return o.customerID
}

// BillingAddress returns the opaque billing address string.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// DeliveryAddress returns the opaque delivery address string.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the owned line items in insertion order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// IsEditable reports whether the order's current status permits editing its
// contents, per the catalog's editable-status whitelist.
func (o *Order) IsEditable() bool {
	return o.catalog.IsEditable(o.status)
}

// IsOwnedBy reports whether the given actor is the order's customer.
// Guest orders are owned by nobody.
func (o *Order) IsOwnedBy(actor kernel.ActorID) bool {
	return o.customerID != nil && o.customerID.IsEqual(actor)
}

// AttachID records the persistence-assigned identifier after the first write.
// It may be called only once; repeated assignment indicates a wiring bug.
func (o *Order) AttachID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid persistence identifier", id))
	}
	o.id = id
	return nil
}

// AssignNumber sets the display order number exactly once.
// Returns ErrNumberAlreadyAssigned if a number is already present.
func (o *Order) AssignNumber(number string) error {
	if o.number != "" {
		return ErrNumberAlreadyAssigned
	}
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

// ChangeStatus moves the order to the given status. Any transition between
// catalog statuses is permitted; the status only gates editability.
func (o *Order) ChangeStatus(status Status) error {
	if !o.catalog.Contains(status) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not part of the configured status set", status))
	}
	o.status = status
	return nil
}

// SetDiscountAmount replaces the aggregate discount.
func (o *Order) SetDiscountAmount(amount decimal.Decimal) error {
	return o.setDiscountAmount(amount)
}

// SetPostage replaces the shipping cost and shipping tax.
func (o *Order) SetPostage(cost, tax decimal.Decimal) {
	o.postageCost = cost
	o.postageTax = tax
}

// SetAddresses replaces the billing and delivery address strings.
func (o *Order) SetAddresses(billing, delivery string) {
	o.billingAddress = billing
	o.deliveryAddress = delivery
}

// ReplaceItems swaps the owned line item set as a whole.
func (o *Order) ReplaceItems(items []LineItem) error {
	return o.replaceItems(items)
}

func (o *Order) setCustomerID(customerID *kernel.ActorID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDiscountAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("discountAmount",
			fmt.Errorf("%s is negative", amount))
	}
	o.discountAmount = amount
	return nil
}

func (o *Order) replaceItems(items []LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}
