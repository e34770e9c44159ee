// Package services provides domain services that compute values spanning more
// than one aggregate.
//
// The package includes:
//   - ShippingCostCalculator: prices an order's load into a delivery cost breakdown
package services
