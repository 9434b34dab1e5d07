// Package services contains stateless domain services operating on the order
// aggregate: the Valuator, which computes authoritative monetary totals with
// discount apportionment and adjustment hooks, and the order number generator,
// which formats a display number from a persistence identifier.
package services
