// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// It is imported for its side effects by internal/bootstrap so both the CLI
// and the serverless entry point see the same registry.
package migrations
