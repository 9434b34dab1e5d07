package queries

import (
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves all orders currently in a given lifecycle
// status, for dashboards and fulfilment worklists.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query listing orders in one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if status == order.StatusUnset {
		return GetOrdersByStatusQuery{}, errs.NewValueIsRequiredError("status")
	}
	return GetOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse is one row of the status worklist.
type GetOrdersByStatusQueryResponse struct {
	OrderID    int64
	Number     string
	Status     string
	CustomerID string
}
