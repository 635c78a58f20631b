// Package services contains stateless domain services that implement business
// rules spanning more than one aggregate or value object:
//
//   - CostCalculator: the pure coverage-based pricing rule
//   - ExtraCostValidator: the catalog check that gates extra-cost application
//
// Both services are side-effect free and independently testable; command
// handlers own the loading and persisting around them.
package services
