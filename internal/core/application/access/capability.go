package access

// Capability is a named permission resolved against the external permission
// service by name. The set is closed: these are the only capabilities this
// core ever asks about.
type Capability string

const (
	// CapabilityAdmin is the admin-equivalent capability; it satisfies every
	// built-in rule that accepts a capability.
	CapabilityAdmin Capability = "admin"

	// CapabilityViewOrders allows viewing any order.
	CapabilityViewOrders Capability = "view-orders"

	// CapabilityEditOrders allows editing orders whose status is editable.
	CapabilityEditOrders Capability = "edit-orders"

	// CapabilityChangeOrderStatus allows status changes regardless of the
	// editable-status whitelist.
	CapabilityChangeOrderStatus Capability = "change-order-status"

	// CapabilityDeleteOrders allows deleting an order and its line items.
	CapabilityDeleteOrders Capability = "delete-orders"
)

// Operation names a gated order operation, as seen by override hooks.
type Operation string

const (
	OperationCreate       Operation = "create"
	OperationView         Operation = "view"
	OperationViewAll      Operation = "view-all"
	OperationEdit         Operation = "edit"
	OperationChangeStatus Operation = "change-status"
	OperationDelete       Operation = "delete"
)
