package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T, driver string) *sql.DB {
	t.Helper()
	conn, err := Open(driver, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, RunMigrations(conn, zap.NewNop()))
	return conn
}

func insertSweep(t *testing.T, conn *sql.DB, id string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO sweeps (id, usd_value, chain, status, created_at, updated_at)
		VALUES (?, '10', 'solana', 'confirmed', '2026-01-01T00:00:00.000000000Z', '2026-01-01T00:00:00.000000000Z')`, id)
	require.NoError(t, err)
}

func TestDSN(t *testing.T) {
	dsn, err := DSN(DriverMattn, "/tmp/x.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_busy_timeout=5000")

	dsn, err = DSN(DriverModernc, "/tmp/x.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "_pragma=busy_timeout%285000%29")

	_, err = DSN("postgres", "x")
	assert.Error(t, err)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	for _, driver := range []string{DriverMattn, DriverModernc} {
		t.Run(driver, func(t *testing.T) {
			conn := openTestDB(t, driver)
			require.NoError(t, RunMigrations(conn, zap.NewNop()))

			var count int
			require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
			migrations, err := loadMigrations(migrationFiles)
			require.NoError(t, err)
			assert.Equal(t, len(migrations), count)
		})
	}
}

func TestInitializeDatabaseSetsGlobal(t *testing.T) {
	conn, err := InitializeDatabase(DriverMattn, filepath.Join(t.TempDir(), "global.db"), zap.NewNop())
	require.NoError(t, err)
	assert.Same(t, conn, GetDB())
	require.NoError(t, CloseDB())
	assert.Nil(t, GetDB())
}

func TestUniqueViolationDetection(t *testing.T) {
	for _, driver := range []string{DriverMattn, DriverModernc} {
		t.Run(driver, func(t *testing.T) {
			conn := openTestDB(t, driver)
			insertSweep(t, conn, "dup")

			_, err := conn.Exec(`INSERT INTO sweeps (id, usd_value, chain, status, created_at, updated_at)
				VALUES ('dup', '1', 'solana', 'pending', 'x', 'x')`)
			require.Error(t, err)
			assert.True(t, IsUniqueViolation(err))
			assert.False(t, IsUniqueViolation(errors.New("disk I/O error")))
			assert.False(t, IsUniqueViolation(nil))
		})
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	conn := openTestDB(t, DriverMattn)
	boom := errors.New("boom")

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO sweeps (id, usd_value, chain, status, created_at, updated_at)
			VALUES ('rolled-back', '1', 'solana', 'pending', 'x', 'x')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM sweeps").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTxCommits(t *testing.T) {
	conn := openTestDB(t, DriverMattn)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO sweeps (id, usd_value, chain, status, created_at, updated_at)
			VALUES ('kept', '1', 'solana', 'pending', 'x', 'x')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM sweeps").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAuditLogIsAppendOnly(t *testing.T) {
	conn := openTestDB(t, DriverMattn)
	_, err := conn.Exec(`INSERT INTO audit_log (operation, entity_type, entity_id, payload, data_digest, config_digest, prev_digest, created_at)
		VALUES ('op', 'type', 'id', '{}', 'd', 'c', 'p', 't')`)
	require.NoError(t, err)

	_, err = conn.Exec(`UPDATE audit_log SET payload = '{"x":1}' WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")

	_, err = conn.Exec(`DELETE FROM audit_log WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")

	_, err = conn.Exec(`UPDATE audit_log SET verified_at = 'now' WHERE id = 1`)
	assert.NoError(t, err)
}

func TestAllocationsCannotBeDeletedOrReExecuted(t *testing.T) {
	conn := openTestDB(t, DriverMattn)
	insertSweep(t, conn, "s1")
	_, err := conn.Exec(`INSERT INTO allocations (sweep_id, category, percentage, amount, strategy, chain, config_digest, created_at)
		VALUES ('s1', 'vault', 40, '4.00', 'x', 'solana', 'c', 't')`)
	require.NoError(t, err)

	_, err = conn.Exec(`DELETE FROM allocations`)
	assert.ErrorContains(t, err, "never deleted")

	_, err = conn.Exec(`UPDATE allocations SET executed = 1, execution_ref = 'tx1' WHERE id = 1`)
	require.NoError(t, err)
	_, err = conn.Exec(`UPDATE allocations SET execution_ref = 'tx2' WHERE id = 1`)
	assert.ErrorContains(t, err, "already executed")
}
