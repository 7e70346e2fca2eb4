package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

type GetterTx interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Transactor = (*transactorImpl)(nil)

type transactorImpl struct {
	logger *zap.Logger
	db     GetterTx
}

func NewTransactor(logger *zap.Logger, db GetterTx) *transactorImpl {
	return &transactorImpl{
		logger: logger,
		db:     db,
	}
}

// WithTx runs function inside a single transaction injected through the
// context. A commit failure surfaces to the caller; the mutation did not
// persist, so the call must not report success.
func (t *transactorImpl) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	tx, err := t.db.Begin(ctx)

	if err != nil {
		return fmt.Errorf("can not begin transaction: %w", err)
	}

	ctxWithTx := context.WithValue(ctx, txInjector{}, tx)

	if err = function(ctxWithTx); err != nil {
		rbErr := tx.Rollback(ctxWithTx)
		logger.CheckError(rbErr, t.logger, "failed rollback of tx", zap.Error(rbErr))

		return fmt.Errorf("function execution error: %w", err)
	}

	if err = tx.Commit(ctxWithTx); err != nil {
		return fmt.Errorf("can not commit transaction: %w", err)
	}

	return nil
}

type txInjector struct{}

var ErrTxNotFound = errors.New("tx not found in context")

func extractTx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txInjector{}).(pgx.Tx)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}
