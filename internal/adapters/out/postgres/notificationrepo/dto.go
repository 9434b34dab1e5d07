// Package notificationrepo provides persistence for status notification rules.
// Rules are reference data: operators register them per status, and the
// lifecycle reads them back on every status change to decide what to dispatch.
package notificationrepo

import (
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// NotificationRuleDTO represents the database structure for notification rules.
type NotificationRuleDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Status   string `gorm:"index"`
	Channel  string
	Template string
}

// TableName specifies the database table name for notification rules.
func (NotificationRuleDTO) TableName() string {
	return "order_notification_rules"
}

func toPort(dto NotificationRuleDTO) ports.NotificationRule {
	return ports.NotificationRule{
		ID:       dto.ID,
		Status:   order.Status(dto.Status),
		Channel:  dto.Channel,
		Template: dto.Template,
	}
}
