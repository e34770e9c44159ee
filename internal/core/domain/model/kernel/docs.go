// Package kernel holds the value objects shared by every freight aggregate:
// identifiers, money arithmetic and the domain event contract.
//
// The package includes:
//   - UUID: entity identifier generated by the application before insert
//   - Money helpers: rounding to cents and positivity checks on decimal.Decimal
//   - DomainEvent and EventSource: events recorded by aggregates and drained after commit
package kernel
