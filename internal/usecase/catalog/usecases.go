package catalog

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=./mocks/catalog_mock.go -package=mocks

type (
	BooksRepository interface {
		AddBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, bookID int64) (entity.Book, error)
		ListBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error)
		UpdateBook(ctx context.Context, bookID int64, upd entity.BookUpdate) (entity.Book, error)
		DeleteBook(ctx context.Context, bookID int64) error
	}

	ReviewsRepository interface {
		AddReview(ctx context.Context, review entity.Review) (entity.Review, error)
		GetReview(ctx context.Context, reviewID int64) (entity.Review, error)
		ListBookReviews(ctx context.Context, bookID int64, limit, offset int) ([]entity.Review, error)
		UpdateReview(ctx context.Context, reviewID int64, upd entity.ReviewUpdate) (entity.Review, error)
		DeleteReview(ctx context.Context, reviewID int64) error
		RatingSummary(ctx context.Context, bookID int64) (entity.RatingSummary, error)
	}

	// OutboxRepository is the enqueuing side of the outbox; a nil sink means
	// event publication is disabled.
	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, event repository.OutboxEvent) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	Generator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}
)

var _ BooksUseCase = (*catalogImpl)(nil)
var _ ReviewsUseCase = (*catalogImpl)(nil)
var _ InsightsUseCase = (*catalogImpl)(nil)

type catalogImpl struct {
	logger            *zap.Logger
	booksRepository   BooksRepository
	reviewsRepository ReviewsRepository
	outboxRepository  OutboxRepository
	transactor        Transactor
	generator         Generator
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	reviewsRepository ReviewsRepository,
	outboxRepository OutboxRepository,
	transactor Transactor,
	generator Generator,
) *catalogImpl {
	return &catalogImpl{
		logger:            logger,
		booksRepository:   booksRepository,
		reviewsRepository: reviewsRepository,
		outboxRepository:  outboxRepository,
		transactor:        transactor,
		generator:         generator,
	}
}
