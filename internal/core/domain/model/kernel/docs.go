// Package kernel contains shared value objects used across the domain model.
// It provides the ActorID identity type consumed by the order aggregate and the
// authorization gate.
//
// Value objects in this package are immutable, validated at construction, and
// safe for concurrent use.
package kernel
