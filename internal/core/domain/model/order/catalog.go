package order

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	// ErrCatalogIsNotConstructed is returned when a Catalog was not created through
	// the NewCatalog factory method.
	ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")
)

// Catalog is the immutable per-tenant order configuration: the set of valid
// statuses, the whitelist of statuses in which an order may still be edited,
// and the optional prefix applied to generated order numbers.
//
// A Catalog is constructed once at composition time and shared read-only by
// the aggregate, the authorization gate, and the lifecycle service.
type Catalog struct {
	statuses     []Status
	statusSet    map[Status]struct{}
	editable     map[Status]struct{}
	numberPrefix string

	guard guard.ConstructorGuard
}

// NewCatalog creates a catalog from an ordered status set, an editable-status
// whitelist, and an order-number prefix (empty for none).
//
// The status set must be non-empty and free of empty entries; its first entry
// becomes the default status for new orders. Editable entries must either be
// StatusUnset or belong to the status set.
func NewCatalog(statuses []Status, editable []Status, numberPrefix string) (*Catalog, error) {
	if len(statuses) == 0 {
		return nil, errs.NewValueIsRequiredError("statuses")
	}

	statusSet := make(map[Status]struct{}, len(statuses))
	for _, s := range statuses {
		if s == StatusUnset {
			return nil, errs.NewValueIsInvalidErrorWithCause("statuses",
				errors.New("status set must not contain the unset status"))
		}
		statusSet[s] = struct{}{}
	}

	editableSet := make(map[Status]struct{}, len(editable))
	for _, s := range editable {
		if s != StatusUnset {
			if _, ok := statusSet[s]; !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause("editable",
					fmt.Errorf("%q is not part of the status set", s))
			}
		}
		editableSet[s] = struct{}{}
	}

	return &Catalog{
		statuses:     append([]Status(nil), statuses...),
		statusSet:    statusSet,
		editable:     editableSet,
		numberPrefix: numberPrefix,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DefaultCatalog creates a catalog with the default status set, the default
// editable whitelist, and no number prefix.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(DefaultStatuses(), DefaultEditableStatuses(), "")
	if err != nil {
		// The default sets are constants; construction cannot fail.
		panic(err)
	}
	return catalog
}

// Validate ensures the Catalog was created through NewCatalog.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Contains reports whether s belongs to the configured status set.
func (c *Catalog) Contains(s Status) bool {
	_, ok := c.statusSet[s]
	return ok
}

// IsEditable reports whether an order in status s may still be edited.
func (c *Catalog) IsEditable(s Status) bool {
	_, ok := c.editable[s]
	return ok
}

// DefaultStatus returns the status assigned to newly created orders.
func (c *Catalog) DefaultStatus() Status {
	return c.statuses[0]
}

// Statuses returns a copy of the ordered status set.
func (c *Catalog) Statuses() []Status {
	return append([]Status(nil), c.statuses...)
}

// NumberPrefix returns the prefix applied to generated order numbers,
// empty when none is configured.
func (c *Catalog) NumberPrefix() string {
	return c.numberPrefix
}
