package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// capturedStatement records the last raw statement built by a dry-run session.
type capturedStatement struct {
	sql     string
	vars    []any
	primary bool
	replica bool
}

// newDryRunDB builds statements against the postgres dialect without a server.
// Reads end with gorm.ErrDryRunModeUnsupported once the statement has been captured.
func newDryRunDB(t *testing.T) (*gorm.DB, *capturedStatement) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 port=1 user=wingman dbname=wingman sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	captured := &capturedStatement{}
	require.NoError(t, db.Callback().Row().Register("wingman:capture", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
		_, captured.primary = tx.Statement.Settings.Load("gorm:db_resolver:write")
		_, captured.replica = tx.Statement.Settings.Load("gorm:db_resolver:read")
	}))

	return db, captured
}
