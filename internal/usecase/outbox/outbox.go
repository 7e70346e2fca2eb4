package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/project/bookshelf/pkg/logger"

	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/internal/usecase/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -source=outbox.go -destination=./mocks/outbox_mock.go -package=mocks
//go:generate mockgen -destination=./mocks/context_mock.go -package=mocks context Context

type (
	// GlobalHandler resolves the delivery handler for an event kind.
	GlobalHandler = func(kind repository.OutboxKind) (KindHandler, error)
	KindHandler   = func(ctx context.Context, data []byte) error

	// Repository is the draining side of the outbox. Enqueuing happens in the
	// catalog usecases, inside their own transactions.
	Repository interface {
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	Outbox interface {
		Start(ctx context.Context, workers, batchSize int, waitTime, inProgressTTL time.Duration)
	}
)

var _ Outbox = (*outboxImpl)(nil)

type outboxImpl struct {
	logger           *zap.Logger
	outboxRepository Repository
	globalHandler    GlobalHandler
	cfg              *config.Config
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	outboxRepository Repository,
	globalHandler GlobalHandler,
	cfg *config.Config,
	transactor Transactor,
) *outboxImpl {
	return &outboxImpl{
		logger:           logger,
		outboxRepository: outboxRepository,
		globalHandler:    globalHandler,
		cfg:              cfg,
		transactor:       transactor,
	}
}

func (o *outboxImpl) Start(
	ctx context.Context,
	workers int,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	wg := new(sync.WaitGroup)

	for workerID := 1; workerID <= workers; workerID++ {
		wg.Add(1)
		go o.worker(ctx, wg, batchSize, waitTime, inProgressTTL)
	}
}

// worker repeatedly claims a batch under a transaction, delivers each message
// through its kind handler and marks outcomes. Failed deliveries go back to
// CREATED until the attempts cap abandons them.
func (o *outboxImpl) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(waitTime)
			select {
			case <-ctx.Done():
				return
			default:
				if !o.cfg.Outbox.Enabled {
					continue
				}

				err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
					return o.drain(ctx, batchSize, inProgressTTL)
				})
				logger.CheckError(err, o.logger, "outbox drain failed", zap.Error(err))
			}
		}
	}
}

// drain claims one batch and marks every message either delivered or
// requeued. It runs inside the worker's transaction.
func (o *outboxImpl) drain(ctx context.Context, batchSize int, inProgressTTL time.Duration) error {
	messages, err := o.outboxRepository.GetMessages(ctx, batchSize, inProgressTTL)

	if err != nil {
		return fmt.Errorf("can not claim outbox batch: %w", err)
	}

	if o.logger != nil {
		o.logger.Info("outbox batch claimed", zap.Int("messages", len(messages)))
	}

	delivered := make([]string, 0, len(messages))
	requeued := make([]string, 0, len(messages))

	for _, message := range messages {
		if deliverErr := o.deliver(ctx, message); deliverErr != nil {
			logger.CheckError(deliverErr, o.logger, "event delivery failed",
				zap.String("kind", message.Kind.String()), zap.Error(deliverErr))
			requeued = append(requeued, message.IdempotencyKey)
			continue
		}

		delivered = append(delivered, message.IdempotencyKey)
	}

	if err = o.outboxRepository.MarkAs(ctx, delivered, repository.Success); err != nil {
		return fmt.Errorf("can not mark delivered events: %w", err)
	}

	if err = o.outboxRepository.MarkAs(ctx, requeued, repository.Created); err != nil {
		return fmt.Errorf("can not requeue failed events: %w", err)
	}

	return nil
}

func (o *outboxImpl) deliver(ctx context.Context, message repository.OutboxData) error {
	kindHandler, err := o.globalHandler(message.Kind)

	if err != nil {
		return err
	}

	return kindHandler(ctx, message.RawData)
}
