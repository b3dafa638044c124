package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestInTx_BeginsAndCommits(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE Orders").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := InTx(context.Background(), mock, nil, func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(), "UPDATE Orders SET TotalAmount = 0")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollsBackOwnTxOnError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := InTx(context.Background(), mock, nil, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_AdoptsCallerTx(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Orders").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	ctx := context.Background()
	outer, err := mock.Begin(ctx)
	require.NoError(t, err)

	// Neither the commit on success nor a rollback may come from InTx here.
	err = InTx(ctx, mock, outer, func(tx pgx.Tx) error {
		assert.True(t, tx == outer)
		_, err := tx.Exec(ctx, "INSERT INTO Orders DEFAULT VALUES")
		return err
	})
	require.NoError(t, err)

	require.NoError(t, outer.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BeginFailure(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := InTx(context.Background(), mock, nil, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
