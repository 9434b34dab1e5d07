package queries

import (
	"errors"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
		"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order ID must be greater than 0")
)

// GetOrderTotalsQuery retrieves one order's valuation: subtotal, postage, tax
// total, and grand total, together with a rendered line item summary.
//
// Example:
//
//	query, err := NewGetOrderTotalsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	totals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to value order: %w", err)
//	}
//
//	fmt.Printf("Order %s total: %s\n", totals.Number, totals.Total)
type GetOrderTotalsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a query to value a single order.
func NewGetOrderTotalsQuery(orderID int64) (GetOrderTotalsQuery, error) {
	if orderID <= 0 {
		return GetOrderTotalsQuery{}, ErrOrderIDIsRequired
	}
	return GetOrderTotalsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to value.
func (q GetOrderTotalsQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderTotalsQueryResponse carries the valuation of one order. Amounts are
// exact decimals; ItemSummaries holds one "quantity x title" line per item.
type GetOrderTotalsQueryResponse struct {
	OrderID       int64
	Number        string
	Status        string
	Subtotal      decimal.Decimal
	Postage       decimal.Decimal
	Discount      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	ItemSummaries []string
}
