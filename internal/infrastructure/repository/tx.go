package repository

import (
	"context"

	domainRepo "github.com/praveenm/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// gormTransactionManager implements TransactionManager on top of GORM. The
// open transaction is carried in the context so every repository joins it.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a transaction manager backed by the given
// database handle
func NewTransactionManager(db *gorm.DB) domainRepo.TransactionManager {
	return &gormTransactionManager{db: db}
}

func (m *gormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction bound to ctx, or falls back to the
// repository's own handle
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
