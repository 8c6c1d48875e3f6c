package migration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

type addIndex struct{}

func (addIndex) Up(db *gorm.DB) error {
	return db.Exec("CREATE INDEX idx_widgets_name ON widgets(name)").Error
}
func (addIndex) Down(db *gorm.DB) error { return db.Exec("DROP INDEX idx_widgets_name").Error }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func withRegistry(t *testing.T, entries ...registeredMigration) {
	t.Helper()
	saved := registry
	registry = entries
	t.Cleanup(func() { registry = saved })
}

func TestRunAndRollback(t *testing.T) {
	withRegistry(t,
		registeredMigration{name: "20260101000001_add_index", m: addIndex{}},
		registeredMigration{name: "20260101000000_create_widgets", m: createWidgets{}},
	)
	db := testDB(t)
	var out bytes.Buffer
	r := New(db, &out)

	require.NoError(t, r.Run())
	assert.True(t, db.Migrator().HasTable(&widget{}))
	assert.Contains(t, out.String(), "Migrated:  20260101000000_create_widgets")

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	out.Reset()
	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "Nothing to migrate.")

	require.NoError(t, r.Rollback())
	assert.False(t, db.Migrator().HasTable(&widget{}))

	pending, err = r.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"20260101000000_create_widgets", "20260101000001_add_index"}, pending)
}

func TestRollbackOnlyLastBatch(t *testing.T) {
	withRegistry(t, registeredMigration{name: "20260101000000_create_widgets", m: createWidgets{}})
	db := testDB(t)
	r := New(db, nil)
	require.NoError(t, r.Run())

	registry = append(registry, registeredMigration{name: "20260101000001_add_index", m: addIndex{}})
	require.NoError(t, r.Run())

	require.NoError(t, r.Rollback())
	assert.True(t, db.Migrator().HasTable(&widget{}))
	assert.False(t, db.Migrator().HasIndex(&widget{}, "idx_widgets_name"))
}

func TestRollbackEmpty(t *testing.T) {
	withRegistry(t)
	var out bytes.Buffer
	require.NoError(t, New(testDB(t), &out).Rollback())
	assert.Contains(t, out.String(), "Nothing to roll back.")
}

func TestRunWithoutMigrations(t *testing.T) {
	withRegistry(t)
	assert.ErrorIs(t, New(testDB(t), nil).Run(), ErrNoMigrations)
}

func TestStatus(t *testing.T) {
	withRegistry(t, registeredMigration{name: "20260101000000_create_widgets", m: createWidgets{}})
	db := testDB(t)
	require.NoError(t, New(db, nil).Run())

	registry = append(registry, registeredMigration{name: "20260101000001_add_index", m: addIndex{}})

	var out bytes.Buffer
	require.NoError(t, New(db, &out).Status())
	assert.Regexp(t, `20260101000000_create_widgets\s+Ran\s+1`, out.String())
	assert.Regexp(t, `20260101000001_add_index\s+Pending`, out.String())
}
