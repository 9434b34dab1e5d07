package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// NotificationRule maps an order status to a notification that should be
// dispatched when an order transitions into that status. Rules are owned by
// an external configuration store, not by the order aggregate.
type NotificationRule struct {
	ID       int64
	Status   order.Status
	Channel  string
	Template string
}

// NotificationRuleRepository looks up the rules registered for a status.
type NotificationRuleRepository interface {
	FindByStatus(ctx context.Context, status order.Status) ([]NotificationRule, error)
}

// NotificationSender dispatches a single notification for an order. A send
// failure is returned to the caller, which isolates it: one failing rule must
// not prevent the remaining rules from being dispatched.
type NotificationSender interface {
	Send(ctx context.Context, rule NotificationRule, aggregate *order.Order) error
}
