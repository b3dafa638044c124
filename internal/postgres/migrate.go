package postgres

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the store tables when they do not exist yet.
func Migrate(ctx context.Context, db Querier) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}
