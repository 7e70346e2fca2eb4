package repository

import (
	"context"
	"time"

	"github.com/project/bookshelf/internal/entity"
)

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

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, event OutboxEvent) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	// OutboxEvent is a payload the outbox can publish. The kind selects the
	// delivery handler on the consumer side.
	OutboxEvent interface {
		EventKind() OutboxKind
	}

	BookCreated struct {
		BookID int64  `json:"book_id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		Genre  string `json:"genre,omitempty"`
		Year   int    `json:"year,omitempty"`
		ISBN   string `json:"isbn,omitempty"`
	}

	ReviewCreated struct {
		ReviewID   int64   `json:"review_id"`
		BookID     int64   `json:"book_id"`
		ReviewerID int64   `json:"reviewer_id"`
		Rating     float64 `json:"rating"`
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindBook
	OutboxKindReview
)

func (BookCreated) EventKind() OutboxKind { return OutboxKindBook }

func (ReviewCreated) EventKind() OutboxKind { return OutboxKindReview }

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindBook:
		return "book"
	case OutboxKindReview:
		return "review"
	default:
		return "undefined"
	}
}
