// Package pgtest starts a migrated PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"testing"
	"time"

	"pizza/internal/adapters/out/postgres"
	"pizza/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a running container with the schema applied.
type Database struct {
	Container *tcpostgres.PostgresContainer
	URL       string
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, applies the embedded migrations and opens a
// GORM handle through the same path the service uses.
func Start(ctx context.Context, t testing.TB) *Database {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err = migrations.Up(url); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := postgres.Open(url, 5)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open database: %v", err)
	}

	return &Database{Container: container, URL: url, DB: db}
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate(t testing.TB) {
	t.Helper()
	err := d.DB.Exec(
		"TRUNCATE TABLE outbox, order_items, orders, pizzas, couriers, customers RESTART IDENTITY",
	).Error
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Stop closes the handle and terminates the container.
func (d *Database) Stop(t testing.TB) {
	t.Helper()
	_ = postgres.Close(d.DB)
	if err := d.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate postgres container: %v", err)
	}
}
