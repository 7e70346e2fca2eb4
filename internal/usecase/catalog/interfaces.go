package catalog

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
)

type (
	BooksUseCase interface {
		AddBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBookInfo(ctx context.Context, bookID int64) (entity.Book, error)
		ListBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error)
		UpdateBook(ctx context.Context, bookID int64, upd entity.BookUpdate) (entity.Book, error)
		DeleteBook(ctx context.Context, bookID int64) error
	}

	ReviewsUseCase interface {
		AddReview(ctx context.Context, review entity.Review) (entity.Review, error)
		GetReviewInfo(ctx context.Context, reviewID int64) (entity.Review, error)
		ListBookReviews(ctx context.Context, bookID int64, limit, offset int) ([]entity.Review, error)
		UpdateReview(ctx context.Context, reviewID int64, upd entity.ReviewUpdate) (entity.Review, error)
		DeleteReview(ctx context.Context, reviewID int64) error
		AverageRating(ctx context.Context, bookID int64) (entity.RatingSummary, error)
	}

	InsightsUseCase interface {
		BookSummary(ctx context.Context, bookID int64) (entity.BookInsight, error)
		DescribeBook(ctx context.Context, book entity.Book) (string, error)
		Recommendations(ctx context.Context, limit int) ([]entity.Book, string, error)
		SummarizeText(ctx context.Context, text string) (string, error)
	}
)
