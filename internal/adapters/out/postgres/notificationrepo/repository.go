package notificationrepo

import (
	"context"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationRuleRepository implements NotificationRuleRepository using GORM.
type GormNotificationRuleRepository struct {
	db *gorm.DB
}

// NewGormNotificationRuleRepository creates a new GORM notification rule repository.
func NewGormNotificationRuleRepository(db *gorm.DB) *GormNotificationRuleRepository {
	return &GormNotificationRuleRepository{db: db}
}

// FindByStatus retrieves every rule registered for the given status, in
// registration order. An empty result means the status change is silent.
func (r *GormNotificationRuleRepository) FindByStatus(ctx context.Context, status order.Status) ([]ports.NotificationRule, error) {
	var dtos []NotificationRuleDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]ports.NotificationRule, 0, len(dtos))
	for _, dto := range dtos {
		rules = append(rules, toPort(dto))
	}

	return rules, nil
}
