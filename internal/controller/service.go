package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/project/bookshelf/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=./mocks/usecase_mock.go -package=mocks

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

type implementation struct {
	logger          *zap.Logger
	booksUseCase    BooksUseCase
	reviewsUseCase  ReviewsUseCase
	insightsUseCase InsightsUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	reviewsUseCase ReviewsUseCase,
	insightsUseCase InsightsUseCase,
) *implementation {
	return &implementation{
		logger:          logger,
		booksUseCase:    booksUseCase,
		reviewsUseCase:  reviewsUseCase,
		insightsUseCase: insightsUseCase,
	}
}

func (i *implementation) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", i.Health)

	r.Route("/books", func(r chi.Router) {
		r.Post("/", i.AddBook)
		r.Get("/", i.ListBooks)

		r.Route("/{bookID}", func(r chi.Router) {
			r.Get("/", i.GetBookInfo)
			r.Put("/", i.UpdateBook)
			r.Delete("/", i.DeleteBook)
			r.Post("/reviews", i.AddReview)
			r.Get("/reviews", i.ListBookReviews)
			r.Get("/rating", i.AverageRating)
			r.Get("/summary", i.BookSummary)
		})
	})

	r.Route("/reviews/{reviewID}", func(r chi.Router) {
		r.Get("/", i.GetReviewInfo)
		r.Put("/", i.UpdateReview)
		r.Delete("/", i.DeleteReview)
	})

	r.Get("/recommendations", i.Recommendations)
	r.Post("/generate-summary", i.GenerateSummary)

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", entity.ErrInvalidInput)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)

	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entity.ErrInvalidInput, name)
	}

	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)

	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", entity.ErrInvalidInput, name)
	}

	return value, nil
}
