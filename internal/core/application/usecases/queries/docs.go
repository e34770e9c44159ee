// Package queries contains the read side of the freight service. Handlers
// read straight from the database with raw SQL and never go through the
// unit of work or the aggregates.
package queries
