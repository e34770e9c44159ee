// Package schema owns the freight database schema and its reference data.
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:embed schema.sql
var ddl string

// Statements returns the schema split into individual statements.
func Statements() []string {
	parts := strings.Split(ddl, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Migrate creates missing tables and seeds delivery types and statuses.
// It is idempotent and runs in a single transaction.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range Statements() {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}
