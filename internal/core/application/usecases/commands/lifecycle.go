package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// Lifecycle hosts the reactions that fire around persistence events: one-time
// order numbering after the first successful write, notification dispatch on
// status changes, and the line item cascade before deletion.
//
// Handlers invoke these methods explicitly at defined points inside their own
// transactions; nothing here begins or commits.
type Lifecycle struct {
	catalog *order.Catalog
	sender  ports.NotificationSender
	logger  *slog.Logger
}

// NewLifecycle creates the lifecycle service. The catalog supplies the order
// number prefix; the sender dispatches status-change notifications.
func NewLifecycle(catalog *order.Catalog, sender ports.NotificationSender, logger *slog.Logger) Lifecycle {
	return Lifecycle{
		catalog: catalog,
		sender:  sender,
		logger:  logger.With("component", "order_lifecycle"),
	}
}

// EnsureNumber assigns a display number to the order if it has none, and
// persists the assignment with a nested write. Idempotent: when the order
// already carries a number this is a no-op and no write is issued, so the
// nested write cannot re-trigger numbering.
func (l Lifecycle) EnsureNumber(ctx context.Context, orders ports.OrderRepository, o *order.Order) error {
	if o.Number() != "" {
		return nil
	}

	number := services.GenerateOrderNumber(o.ID(), l.catalog.NumberPrefix())
	if err := o.AssignNumber(number); err != nil {
		return err
	}

	if _, err := orders.Update(ctx, o); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "order number assigned", "order_id", o.ID(), "number", number)
	return nil
}

// AfterWrite runs the post-persistence reactions for a successful save:
// numbering first, then notification dispatch if the status changed relative
// to previousStatus (the value stored before the write).
//
// Numbering always happens before any notification leaves, since its nested
// write completes before dispatch starts. Each notification failure is logged
// and isolated; one failing rule never blocks the rest.
func (l Lifecycle) AfterWrite(
	ctx context.Context,
	orders ports.OrderRepository,
	rules ports.NotificationRuleRepository,
	o *order.Order,
	previousStatus order.Status,
) error {
	if err := l.EnsureNumber(ctx, orders, o); err != nil {
		return err
	}

	if o.Status() == previousStatus {
		return nil
	}

	matched, err := rules.FindByStatus(ctx, o.Status())
	if err != nil {
		return err
	}

	for _, rule := range matched {
		if err := l.sender.Send(ctx, rule, o); err != nil {
			l.logger.ErrorContext(ctx, "notification dispatch failed",
				"order_id", o.ID(), "rule_id", rule.ID, "status", o.Status().String(), "error", err)
			continue
		}
		l.logger.InfoContext(ctx, "notification dispatched",
			"order_id", o.ID(), "rule_id", rule.ID, "status", o.Status().String())
	}

	return nil
}

// BeforeDelete cascades the deletion of the order's owned line items. It must
// succeed before the order row itself may be removed; a child deletion failure
// aborts the surrounding delete. Rolling back a partial cascade is the
// caller's transaction boundary responsibility.
func (l Lifecycle) BeforeDelete(ctx context.Context, orders ports.OrderRepository, o *order.Order) error {
	return orders.DeleteLineItems(ctx, o.ID())
}
