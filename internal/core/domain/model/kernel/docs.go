// Package kernel provides core domain primitives shared across the
// roadside-assistance domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Coordinates: a validated geographic latitude/longitude pair
//   - Money: a non-negative decimal amount used for coverage terms and costs
//
// These primitives enforce their own invariants at construction, are immutable
// and safe for concurrent use, so the aggregates built on top of them never
// carry out-of-range or half-initialized values.
package kernel
