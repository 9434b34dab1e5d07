package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	catalog *order.Catalog
}

// NewGormOrderRepository creates a new GORM order repository. The catalog is
// needed to restore aggregates read back from the store.
func NewGormOrderRepository(db *gorm.DB, catalog *order.Catalog) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		catalog: catalog,
	}
}

// Add saves a new order to the database and attaches the store-assigned
// identifier to the aggregate. Line items are inserted alongside the row.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AttachID(dto.ID)
}

// Update saves an existing order and returns the status the row carried
// before this write. The prior status is read inside the same transaction,
// so callers can decide whether the write changed the stored status.
// Line items are replaced wholesale: delete the old set, insert the new one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (order.Status, error) {
	if err := aggregate.Validate(); err != nil {
		return order.StatusUnset, err
	}

	var priorStatus string
	row := r.db.WithContext(ctx).Raw(`SELECT status FROM orders WHERE id = ?`, aggregate.ID()).Row()
	if err := row.Scan(&priorStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.StatusUnset, errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return order.StatusUnset, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("number", "status", "customer_id", "discount_amount",
			"postage_cost", "postage_tax", "billing_address", "delivery_address").
		Updates(&dto)
	if result.Error != nil {
		return order.StatusUnset, result.Error
	}
	if result.RowsAffected == 0 {
		return order.StatusUnset, gorm.ErrRecordNotFound
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return order.StatusUnset, err
	}

	return order.Status(priorStatus), nil
}

// Get retrieves an order by its store-assigned identifier, line items included.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(r.catalog, dto)
}

// FindUnnumbered retrieves up to limit persisted orders that never received a
// display number, oldest first. Used by the numbering repair sweep.
func (r *GormOrderRepository) FindUnnumbered(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("number = ''").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, restoreErr := toDomain(r.catalog, dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// DeleteLineItems removes every line item owned by the order.
func (r *GormOrderRepository) DeleteLineItems(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&LineItemDTO{}).Error
}

// Delete removes the order row itself. Line items must already be gone; the
// lifecycle cascade runs before this inside the same transaction.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}
	return nil
}

func (r *GormOrderRepository) replaceItems(ctx context.Context, dto OrderDTO) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&dto.Items).Error
}
