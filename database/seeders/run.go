// Package seeders fills a migrated database with sample data.
//
// A seeder registers itself from init and is run by `tasker seed`:
//
//	func init() { seeders.Register("tasks", SeedTasks) }
package seeders

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"gorm.io/gorm"
)

// SeederFunc inserts rows through db. It runs inside a transaction.
type SeederFunc func(db *gorm.DB) error

type seeder struct {
	name string
	fn   SeederFunc
}

var (
	mu       sync.Mutex
	registry []seeder
)

// Register adds fn under name. Seeders run in registration order.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, seeder{name: name, fn: fn})
}

// RunAll runs every registered seeder, each in its own transaction, writing
// one progress line per seeder to out. A failing seeder rolls back its own
// writes and stops the run.
func RunAll(db *gorm.DB, out io.Writer) error {
	mu.Lock()
	current := slices.Clone(registry)
	mu.Unlock()

	if len(current) == 0 {
		fmt.Fprintln(out, "  (no seeders registered)")
		return nil
	}

	for _, s := range current {
		fmt.Fprintf(out, "  Running seeder: %s ... ", s.name)
		if err := db.Transaction(s.fn); err != nil {
			fmt.Fprintln(out, "FAILED")
			return fmt.Errorf("seeder %q: %w", s.name, err)
		}
		fmt.Fprintln(out, "done")
	}
	return nil
}
