// Package postgresqltest provides the shared database fixture for tests
// that exercise the real repositories. Tests are skipped unless
// TEST_DATABASE_URL points at a disposable PostgreSQL instance.
package postgresqltest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
)

// Keep in sync with migrations/0001_init.sql.
const schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		salary            NUMERIC(14,2) NOT NULL,
		role              TEXT NOT NULL,
		registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id TEXT NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		check_in    TIMESTAMPTZ NOT NULL,
		check_out   TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	);

	CREATE TABLE IF NOT EXISTS payslips (
		id             UUID NOT NULL,
		employee_id    TEXT NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		month          TEXT NOT NULL,
		year           INT NOT NULL,
		monthly_salary NUMERIC(14,2) NOT NULL,
		hourly_rate    NUMERIC(14,4) NOT NULL,
		total_hours    NUMERIC(10,2) NOT NULL,
		overtime_hours NUMERIC(10,2) NOT NULL,
		regular_pay    NUMERIC(14,2) NOT NULL,
		overtime_pay   NUMERIC(14,2) NOT NULL,
		net_payable    NUMERIC(14,2) NOT NULL,
		generated_at   TIMESTAMPTZ NOT NULL,
		summary        TEXT NOT NULL DEFAULT '',
		UNIQUE (employee_id, month)
	);
`

type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the test database, applies the schema, and
// truncates all tables. It skips the calling test when TEST_DATABASE_URL is
// not set, so the suite stays runnable without a database.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping database test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	t.Cleanup(setup.Close)

	ctx := context.Background()
	if _, err := db.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to apply test schema: %v", err)
	}
	if err := setup.TruncateAllTables(ctx); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	return setup
}

// TruncateAllTables wipes all rows so each test starts from a clean slate.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"payslips",
		"attendance",
		"employees",
	}

	for _, table := range tables {
		if _, err := t.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// Close releases the pool.
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
