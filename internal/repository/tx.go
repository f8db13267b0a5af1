package repository

import (
	"context"
	"errors"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// Tx is a unit of work opened by BeginTx on one of the stores
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is meant to be deferred right after BeginTx. After a
// successful Commit the rollback reports domain.ErrTxClosed, which is ignored.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
