// Package order provides the Order aggregate: a client's request to ship a load
// over a distance with a chosen delivery type.
//
// Key business rules:
//   - distance, distance rate, weight and weight rate are strictly positive
//   - an order references an existing client and delivery type
//   - an order is immutable once placed; it can only be deleted together with its delivery
package order
