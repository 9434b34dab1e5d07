package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves the status worklist straight from
// the database. Reads bypass the aggregate: the rows carry everything the
// listing needs.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status worklist queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns every order in the requested status,
// sorted by order ID for consistent output.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			customer_id
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var customerID *uuid.UUID

		if err = rows.Scan(&resp.OrderID, &resp.Number, &resp.Status, &customerID); err != nil {
			return nil, err
		}
		if customerID != nil {
			resp.CustomerID = customerID.String()
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
