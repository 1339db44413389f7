package repository

import (
	"context"

	"gorm.io/gorm"
)

type ctxKey int

const txCtxKey ctxKey = iota

// TransactionManager runs a function inside one database transaction. The
// transaction handle travels through the context, so repositories called
// within fn join it transparently via dbFrom.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey, tx))
	})
}

// dbFrom returns the transaction bound to ctx, or the root handle when the
// caller is not inside RunInTx.
func dbFrom(ctx context.Context, root *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return root.WithContext(ctx)
}
