// Package access implements the authorization gate for order operations.
// It evaluates a capability-based rule matrix against an external permission
// service, supports ownership checks for customers viewing their own orders,
// and lets registered override hooks short-circuit the built-in rules.
//
// All checks return plain booleans; a denial is an expected outcome, not an
// error. When the permission service is unreachable the gate fails closed.
package access
