package access

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// PermissionService resolves capabilities for an actor against the external
// role/permission store. Check reports whether the actor holds at least one of
// the given capabilities. This core never stores or evaluates roles itself.
type PermissionService interface {
	Check(ctx context.Context, actor kernel.ActorID, capabilities ...Capability) (bool, error)
}

// ActorResolver yields the current session actor when the caller did not name
// one explicitly. Returns nil for unauthenticated (guest) sessions.
type ActorResolver interface {
	CurrentActorID(ctx context.Context) *kernel.ActorID
}

// OverrideHook lets collaborators override a built-in authorization rule.
// Returning nil leaves the decision to the next hook or the built-in rule;
// a non-nil result is authoritative and short-circuits everything after it.
// For OperationCreate and OperationViewAll the order argument is nil.
type OverrideHook func(ctx context.Context, op Operation, actor *kernel.ActorID, o *order.Order) *bool

// Gate evaluates view/create/edit/change-status/delete permission for an actor
// and an order. Every check first yields to the registered override hooks, then
// falls back to the built-in rules:
//
//	create        anyone, guests included
//	view          admin or view-orders capability, or the order's customer
//	edit          (admin or edit-orders) and the order's status is editable
//	change-status admin or change-order-status (editability does not apply)
//	delete        admin or delete-orders, regardless of status
//
// Permission service failures deny (fail closed). Denials are plain false
// returns, never errors.
type Gate struct {
	permissions PermissionService
	actors      ActorResolver
	hooks       []OverrideHook
	logger      *slog.Logger
}

// NewGate creates a gate with no override hooks registered.
func NewGate(permissions PermissionService, actors ActorResolver, logger *slog.Logger) *Gate {
	return &Gate{
		permissions: permissions,
		actors:      actors,
		logger:      logger.With("component", "authorization_gate"),
	}
}

// OnCheck registers an override hook. Hooks run in registration order on every
// check; the first non-nil answer wins. Register at composition time, before
// concurrent use.
func (g *Gate) OnCheck(hook OverrideHook) {
	g.hooks = append(g.hooks, hook)
}

// CanCreate reports whether the actor may create an order. Always true for the
// built-in rule: guests may create orders.
func (g *Gate) CanCreate(ctx context.Context, actor *kernel.ActorID) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationCreate, actor, nil); verdict != nil {
		return *verdict
	}
	return true
}

// CanView reports whether the actor may view the order: capability holders and
// the order's own customer.
func (g *Gate) CanView(ctx context.Context, actor *kernel.ActorID, o *order.Order) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationView, actor, o); verdict != nil {
		return *verdict
	}
	if g.holds(ctx, actor, CapabilityAdmin, CapabilityViewOrders) {
		return true
	}
	return actor != nil && o.IsOwnedBy(*actor)
}

// CanViewAll reports whether the actor may view orders they do not own, such
// as status worklists. Ownership cannot help here, so only capability holders
// pass. Override hooks see OperationViewAll with a nil order.
func (g *Gate) CanViewAll(ctx context.Context, actor *kernel.ActorID) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationViewAll, actor, nil); verdict != nil {
		return *verdict
	}
	return g.holds(ctx, actor, CapabilityAdmin, CapabilityViewOrders)
}

// CanEdit reports whether the actor may edit the order's contents. Capability
// alone is not enough: the order's current status must be in the configured
// editable-status whitelist.
func (g *Gate) CanEdit(ctx context.Context, actor *kernel.ActorID, o *order.Order) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationEdit, actor, o); verdict != nil {
		return *verdict
	}
	if !o.IsEditable() {
		return false
	}
	return g.holds(ctx, actor, CapabilityAdmin, CapabilityEditOrders)
}

// CanChangeStatus reports whether the actor may change the order's status.
// The editable-status whitelist does not apply here.
func (g *Gate) CanChangeStatus(ctx context.Context, actor *kernel.ActorID, o *order.Order) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationChangeStatus, actor, o); verdict != nil {
		return *verdict
	}
	return g.holds(ctx, actor, CapabilityAdmin, CapabilityChangeOrderStatus)
}

// CanDelete reports whether the actor may delete the order, independent of its
// status.
func (g *Gate) CanDelete(ctx context.Context, actor *kernel.ActorID, o *order.Order) bool {
	actor = g.resolve(ctx, actor)
	if verdict := g.override(ctx, OperationDelete, actor, o); verdict != nil {
		return *verdict
	}
	return g.holds(ctx, actor, CapabilityAdmin, CapabilityDeleteOrders)
}

// resolve falls back to the current session actor when none was given.
// A nil result is a guest.
func (g *Gate) resolve(ctx context.Context, actor *kernel.ActorID) *kernel.ActorID {
	if actor != nil {
		return actor
	}
	return g.actors.CurrentActorID(ctx)
}

func (g *Gate) override(ctx context.Context, op Operation, actor *kernel.ActorID, o *order.Order) *bool {
	for _, hook := range g.hooks {
		if verdict := hook(ctx, op, actor, o); verdict != nil {
			return verdict
		}
	}
	return nil
}

// holds reports whether the actor carries any of the capabilities. Guests hold
// nothing; a permission service failure denies.
func (g *Gate) holds(ctx context.Context, actor *kernel.ActorID, capabilities ...Capability) bool {
	if actor == nil {
		return false
	}

	ok, err := g.permissions.Check(ctx, *actor, capabilities...)
	if err != nil {
		g.logger.WarnContext(ctx, "permission check failed, denying",
			"actor", actor.String(), "error", err)
		return false
	}
	return ok
}
