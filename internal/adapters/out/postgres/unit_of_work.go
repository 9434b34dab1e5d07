// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes.
//
// Each command handler creates one unit of work, begins it, performs its
// repository operations, and commits; a deferred rollback discards whatever a
// failed handler left behind. Repositories obtained from an active unit of
// work run inside its transaction, so the numbering write the lifecycle issues
// lands in the same transaction as the handler's own writes.
package postgres

import (
	"context"

	"commerce/internal/adapters/out/postgres/notificationrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	catalog *order.Catalog
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The catalog is threaded through to repositories so read-back
// aggregates can be restored.
func NewGormUnitOfWorkFactory(db *gorm.DB, catalog *order.Catalog) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, catalog: catalog}
}

// Create produces a new UnitOfWork instance ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		catalog: f.catalog,
	}
}

// GormUnitOfWork coordinates one database transaction for one business
// operation. Repository accessors return repositories bound to the active
// transaction when one exists, or to the main connection otherwise.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	catalog *order.Catalog
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back an already committed unit of work returns
// gorm.ErrInvalidTransaction, which deferred cleanup paths ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence operations within the
// unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow.catalog)
}

// NotificationRuleRepository provides access to notification rule reads within
// the unit of work.
func (uow *GormUnitOfWork) NotificationRuleRepository() ports.NotificationRuleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return notificationrepo.NewGormNotificationRuleRepository(db)
}
