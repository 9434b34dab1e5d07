package order

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a single purchased product line owned by an Order. It carries
// the unit price, the quantity, and the tax rate applied per unit. Line items
// are created and removed only as part of the owning order's edit lifecycle.
//
// LineItem is a value object: immutable after construction.
type LineItem struct {
	title    string
	price    decimal.Decimal
	quantity int
	taxRate  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation.
//
// The title is required, the unit price must not be negative (zero is allowed),
// and the quantity must be positive. The tax rate is a percentage; values
// outside 0-100 are unusual but deliberately not rejected, since tax
// configuration is the boundary's responsibility.
func NewLineItem(title string, price decimal.Decimal, quantity int, taxRate decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setTitle(title),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}
	item.taxRate = taxRate

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Title returns the descriptive label used in order summaries.
func (li LineItem) Title() string {
	return li.title
}

// Price returns the unit price.
func (li LineItem) Price() decimal.Decimal {
	return li.price
}

// Quantity returns the number of units purchased.
func (li LineItem) Quantity() int {
	return li.quantity
}

// TaxRate returns the tax percentage applied per unit.
func (li LineItem) TaxRate() decimal.Decimal {
	return li.taxRate
}

func (li *LineItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	li.title = title
	return nil
}

func (li *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	li.price = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
