package store

import (
	"github.com/openshelf/catalog/migrations"
)

// Migrate applies all embedded goose migrations, creating the users, books
// and reservations tables and the unique reservation index.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
