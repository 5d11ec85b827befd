package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (f *fakeTx) Commit() error   { return nil }
func (f *fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &sql.DB{}
	tx := &fakeTx{}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}

func TestWithTx_NilTransaction(t *testing.T) {
	ctx := WithTx(context.Background(), nil)
	assert.False(t, IsInTransaction(ctx))
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM showing_time_slots"))
	assert.Equal(t, "update", operationOf("  UPDATE showing_time_slots SET is_booked = $1"))
	assert.Equal(t, "commit", operationOf("commit"))
	assert.Equal(t, "unknown", operationOf(""))
}
