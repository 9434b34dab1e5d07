// Package order provides the domain entities for order management: the Order
// aggregate root, the LineItem value object, and the Catalog configuration
// that defines the valid status set, the editable-status whitelist, and the
// order-number prefix.
//
// Key business rules:
//   - Orders are valued on demand; no total is ever stored as a source of truth.
//   - The display order number is assigned exactly once, around first persistence.
//   - Status transitions are unconstrained within the configured status set;
//     the status only restricts whether the order's contents may be edited.
//   - Line items are owned by the order and deleted with it.
//
// The package follows Domain-Driven Design principles: constructor-validated
// entities with private fields and explicit mutation methods.
package order
