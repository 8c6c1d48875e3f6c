package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", filepath.Join(t.TempDir(), "tasks.db"))
	t.Setenv("CACHE_DRIVER", "none")
	t.Setenv("VERCEL", "")
	t.Setenv("SERVERLESS", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateSeedAndRollback(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated:  20260101000000_create_tasks_table")

	out, err = execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to migrate.")

	out, err = execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Running seeder: tasks ... done")

	out, err = execute(t, "migrate:status")
	require.NoError(t, err)
	assert.Regexp(t, `20260101000000_create_tasks_table\s+Ran\s+1`, out)

	out, err = execute(t, "migrate:rollback")
	require.NoError(t, err)
	assert.Contains(t, out, "Rolled back:  20260101000000_create_tasks_table")

	out, err = execute(t, "migrate:status")
	require.NoError(t, err)
	assert.Regexp(t, `20260101000000_create_tasks_table\s+Pending`, out)
}

func TestSeedWithoutMigrationsFails(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "seed")
	assert.Error(t, err)
	assert.Contains(t, out, "FAILED")
}

func TestRouteList(t *testing.T) {
	setupEnv(t)
	t.Setenv("DB_AUTO_MIGRATE", "true")

	out, err := execute(t, "route:list")
	require.NoError(t, err)
	assert.Regexp(t, `GET\s+/api/ping\s+index.ping`, out)
	assert.Regexp(t, `PUT\s+/api/tasks/\{id\}\s+tasks.update`, out)
	assert.Regexp(t, `GET\s+/api/metrics\s+metrics`, out)
}

func TestServeStandsDownWhenServerless(t *testing.T) {
	setupEnv(t)
	t.Setenv("VERCEL", "1")

	_, err := execute(t, "serve")
	assert.NoError(t, err)

	_, err = execute(t)
	assert.NoError(t, err)
}
