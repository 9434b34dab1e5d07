// Package permissionrepo persists the actor capability grants the
// authorization gate consults. One row per (actor, capability) pair.
package permissionrepo

import (
	"context"

	"commerce/internal/core/application/access"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActorCapabilityDTO represents one capability granted to one actor.
type ActorCapabilityDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ActorID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_actor_capability"`
	Capability string    `gorm:"uniqueIndex:idx_actor_capability"`
}

// TableName specifies the database table name for capability grants.
func (ActorCapabilityDTO) TableName() string {
	return "actor_capabilities"
}

// GormPermissionRepository implements the gate's PermissionService using GORM.
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewGormPermissionRepository creates a new GORM permission repository.
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// Check reports whether the actor holds at least one of the given
// capabilities. An actor with no rows holds nothing.
func (r *GormPermissionRepository) Check(ctx context.Context, actor kernel.ActorID, capabilities ...access.Capability) (bool, error) {
	if len(capabilities) == 0 {
		return false, nil
	}

	names := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		names = append(names, string(capability))
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ActorCapabilityDTO{}).
		Where("actor_id = ? AND capability IN ?", actor.Bytes(), names).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
