// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the freight schema to it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"freight/internal/adapters/out/postgres/schema"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects with gorm and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = schema.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{container: container, DB: db}, nil
}

// Reset empties the entity tables and restores the reference data.
func (d *Database) Reset(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).Exec("TRUNCATE TABLE deliveries, orders, clients").Error; err != nil {
		return err
	}
	return schema.Migrate(ctx, d.DB)
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}

// InsertClient writes a client row directly and returns its id. seq keeps
// cpf and email unique across calls.
func (d *Database) InsertClient(ctx context.Context, seq int) (uuid.UUID, error) {
	id := uuid.New()
	err := d.DB.WithContext(ctx).Exec(
		`INSERT INTO clients (id, name, cpf, email, phone, postal_code, street, neighborhood, complement, city, state, created_at)
		 VALUES (?, ?, ?, ?, '', '01001000', 'Praca da Se', 'Se', '', 'Sao Paulo', 'SP', now())`,
		id, fmt.Sprintf("Client %d", seq), fmt.Sprintf("%011d", seq), fmt.Sprintf("client%d@example.com", seq),
	).Error
	return id, err
}

// Count returns the number of rows in table.
func (d *Database) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := d.DB.WithContext(ctx).Table(table).Count(&n).Error
	return n, err
}
