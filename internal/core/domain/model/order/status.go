package order

// Status represents an order's lifecycle state. The valid set of statuses is
// not fixed by the type: it is configured per deployment through a Catalog,
// so merchants can extend or replace the default set. Transitions between
// statuses are unconstrained; what a status restricts is the order's
// editability, which the Catalog decides.
type Status string

// Default status set. StatusUnset is the editable pre-persistence state of an
// order that has never had a status stored.
const (
	StatusUnset      Status = ""
	StatusIncomplete Status = "incomplete"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusDispatched Status = "dispatched"
	StatusRefunded   Status = "refunded"
)

// DefaultStatuses returns the default ordered status set. The first entry is
// the status assigned to newly created orders.
func DefaultStatuses() []Status {
	return []Status{
		StatusIncomplete,
		StatusFailed,
		StatusCancelled,
		StatusPending,
		StatusPaid,
		StatusProcessing,
		StatusDispatched,
		StatusRefunded,
	}
}

// DefaultEditableStatuses returns the default whitelist of statuses in which
// an order's contents may still be edited. Once an order moves to processing,
// dispatched, or refunded it is frozen.
func DefaultEditableStatuses() []Status {
	return []Status{
		StatusUnset,
		StatusIncomplete,
		StatusPending,
		StatusPaid,
		StatusFailed,
		StatusCancelled,
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
