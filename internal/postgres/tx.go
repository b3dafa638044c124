package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// InTx runs fn inside a transaction scope.
//
// When tx is non-nil the caller owns it: fn runs on tx and InTx never commits
// or rolls back. Otherwise InTx begins a transaction on db, commits it when fn
// succeeds and rolls it back when fn (or the commit) fails.
func InTx(ctx context.Context, db DB, tx pgx.Tx, fn func(pgx.Tx) error) (err error) {
	if tx != nil {
		return fn(tx)
	}

	own, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = own.Rollback(ctx)
		}
	}()

	if err = fn(own); err != nil {
		return err
	}
	return own.Commit(ctx)
}
