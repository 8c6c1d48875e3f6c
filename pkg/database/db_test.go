package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/database"
)

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := database.Open(context.Background(), config.Database{Driver: "sqlite", DSN: "file:dbtest?mode=memory&cache=shared"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := database.Open(context.Background(), config.Database{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
