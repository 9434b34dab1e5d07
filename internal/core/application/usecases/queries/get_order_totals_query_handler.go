package queries

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderTotalsQueryHandler values a single order on read. Totals are never
// stored: the handler restores the aggregate from its rows and lets the
// valuator derive subtotal, postage, tax, and total, so a change to the
// pricing rules is reflected by the next read without a data migration.
type GetOrderTotalsQueryHandler struct {
	db       *gorm.DB
	catalog  *order.Catalog
	valuator *services.Valuator
}

// NewGetOrderTotalsQueryHandler creates a handler for order valuation queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTotalsQueryHandler(db *gorm.DB, catalog *order.Catalog, valuator *services.Valuator) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{db: db, catalog: catalog, valuator: valuator}
}

// Handle loads the order and its line items, restores the aggregate, and
// returns its valuation. Returns errs.ErrObjectNotFound when no order exists
// with the requested identifier.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) (GetOrderTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			customer_id,
			discount_amount,
			postage_cost,
			postage_tax,
			billing_address,
			delivery_address
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var (
		id                               int64
		number, status                   string
		customerID                       *uuid.UUID
		discountAmount                   decimal.Decimal
		postageCost, postageTax          decimal.Decimal
		billingAddress, deliveryAddress  string
	)
	err := row.Scan(&id, &number, &status, &customerID,
		&discountAmount, &postageCost, &postageTax, &billingAddress, &deliveryAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTotalsQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderTotalsQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, id)
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	var actorID *kernel.ActorID
	if customerID != nil {
		restored, idErr := kernel.ActorIDFromBytes(customerID[:])
		if idErr != nil {
			return GetOrderTotalsQueryResponse{}, idErr
		}
		actorID = &restored
	}

	o, err := order.RestoreOrder(
		h.catalog, id, number, order.Status(status), actorID, items,
		discountAmount, postageCost, postageTax, billingAddress, deliveryAddress,
	)
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	totals := h.valuator.Totals(o)

	return GetOrderTotalsQueryResponse{
		OrderID:       o.ID(),
		Number:        o.Number(),
		Status:        o.Status().String(),
		Subtotal:      totals.Subtotal,
		Postage:       totals.Postage,
		Discount:      o.DiscountAmount(),
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
		ItemSummaries: slices.Collect(h.valuator.ItemSummary(o)),
	}, nil
}

func (h GetOrderTotalsQueryHandler) loadItems(ctx context.Context, orderID int64) ([]order.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			title,
			price,
			quantity,
			tax_rate
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.LineItem, 0)
	for rows.Next() {
		var (
			title           string
			price, taxRate  decimal.Decimal
			quantity        int
		)
		if err = rows.Scan(&title, &price, &quantity, &taxRate); err != nil {
			return nil, err
		}

		item, itemErr := order.NewLineItem(title, price, quantity, taxRate)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
