// Package delivery provides the Delivery aggregate: the priced shipment derived
// from exactly one order.
//
// The package includes:
//   - Delivery: aggregate root holding the cost breakdown, status and delivery type
//   - Cost: value object whose final amount always reconciles with its components
//   - Status: forward-only state machine Calculated -> InTransit -> Delivered
//
// Key business rules:
//   - final = distanceCost + weightCost + surcharge + extraFee - discount, to the cent
//   - a new delivery starts in Calculated
//   - status advances one step at a time and never moves backwards
package delivery
