// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is store-assigned on insert. The display number is unique
// among numbered rows; unnumbered rows (empty number) are excluded from the
// index so freshly inserted orders do not collide before numbering runs.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Number          string          `gorm:"uniqueIndex:idx_orders_number,where:number <> ''"`
	Status          string          `gorm:"index"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric"`
	PostageCost     decimal.Decimal `gorm:"type:numeric"`
	PostageTax      decimal.Decimal `gorm:"type:numeric"`
	BillingAddress  string
	DeliveryAddress string
	Items           []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one purchasable line owned by an order row.
type LineItemDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	OrderID  int64  `gorm:"index"`
	Title    string
	Price    decimal.Decimal `gorm:"type:numeric"`
	Quantity int
	TaxRate  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:  aggregate.ID(),
			Title:    item.Title(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			TaxRate:  item.TaxRate(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		Number:          aggregate.Number(),
		Status:          aggregate.Status().String(),
		CustomerID:      customerID,
		DiscountAmount:  aggregate.DiscountAmount(),
		PostageCost:     aggregate.PostageCost(),
		PostageTax:      aggregate.PostageTax(),
		BillingAddress:  aggregate.BillingAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its line items using RestoreOrder.
func toDomain(catalog *order.Catalog, dto OrderDTO) (*order.Order, error) {
	var customerID *kernel.ActorID
	if dto.CustomerID != nil {
		actorID, err := kernel.ActorIDFromBytes((*dto.CustomerID)[:])
		if err != nil {
			return nil, err
		}

		customerID = &actorID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewLineItem(itemDTO.Title, itemDTO.Price, itemDTO.Quantity, itemDTO.TaxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		catalog,
		dto.ID,
		dto.Number,
		order.Status(dto.Status),
		customerID,
		items,
		dto.DiscountAmount,
		dto.PostageCost,
		dto.PostageTax,
		dto.BillingAddress,
		dto.DeliveryAddress,
	)
}
