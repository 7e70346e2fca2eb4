package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/project/bookshelf/internal/usecase/catalog/mocks"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/llm"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errGeneration = errors.New("generation backend down")

type insightTestEnv struct {
	ctx       context.Context
	books     *mocks.MockBooksRepository
	reviews   *mocks.MockReviewsRepository
	generator *mocks.MockGenerator
	service   *catalogImpl
}

func initInsightTest(t *testing.T, withGenerator bool) insightTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockBooksRepo := mocks.NewMockBooksRepository(ctrl)
	mockReviewsRepo := mocks.NewMockReviewsRepository(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	env := insightTestEnv{
		ctx:     context.Background(),
		books:   mockBooksRepo,
		reviews: mockReviewsRepo,
	}

	var generator Generator
	if withGenerator {
		env.generator = mocks.NewMockGenerator(ctrl)
		generator = env.generator
	}

	env.service = New(logger, mockBooksRepo, mockReviewsRepo, nil, nil, generator)
	return env
}

func TestBookSummary(t *testing.T) {
	t.Parallel()

	const bookID = int64(1)
	book := entity.Book{ID: bookID, Title: "Dune", Author: "Herbert"}
	rated := entity.RatingSummary{Average: 2.25, Count: 2}
	reviews := []entity.Review{
		{ID: 1, BookID: bookID, ReviewerID: 1, Text: "Great pacing", Rating: 3.5},
		{ID: 2, BookID: bookID, ReviewerID: 2, Text: "  ", Rating: 1},
	}

	t.Run("summary generated from non-empty review texts", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().GetBook(env.ctx, bookID).Return(book, nil)
		env.reviews.EXPECT().RatingSummary(env.ctx, bookID).Return(rated, nil)
		env.reviews.EXPECT().ListBookReviews(env.ctx, bookID, reviewSampleLimit, 0).Return(reviews, nil)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				require.Contains(t, prompt, "Dune")
				require.Contains(t, prompt, "Great pacing")
				require.NotContains(t, prompt, "  \n")
				return " A well paced classic. ", nil
			})

		insight, err := env.service.BookSummary(env.ctx, bookID)
		require.NoError(t, err)
		require.Equal(t, "A well paced classic.", insight.Summary)
		require.Equal(t, rated, insight.Rating)
	})

	t.Run("generation failure omits summary but keeps rating", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().GetBook(env.ctx, bookID).Return(book, nil)
		env.reviews.EXPECT().RatingSummary(env.ctx, bookID).Return(rated, nil)
		env.reviews.EXPECT().ListBookReviews(env.ctx, bookID, reviewSampleLimit, 0).Return(reviews, nil)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).Return("", errGeneration)

		insight, err := env.service.BookSummary(env.ctx, bookID)
		require.NoError(t, err)
		require.Empty(t, insight.Summary)
		require.Equal(t, rated, insight.Rating)
	})

	t.Run("no ratings skips generation", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().GetBook(env.ctx, bookID).Return(book, nil)
		env.reviews.EXPECT().RatingSummary(env.ctx, bookID).Return(entity.RatingSummary{}, nil)

		insight, err := env.service.BookSummary(env.ctx, bookID)
		require.NoError(t, err)
		require.Empty(t, insight.Summary)
		require.False(t, insight.Rating.HasRatings())
	})

	t.Run("no generator configured still reports rating", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, false)
		env.books.EXPECT().GetBook(env.ctx, bookID).Return(book, nil)
		env.reviews.EXPECT().RatingSummary(env.ctx, bookID).Return(rated, nil)

		insight, err := env.service.BookSummary(env.ctx, bookID)
		require.NoError(t, err)
		require.Empty(t, insight.Summary)
		require.Equal(t, rated, insight.Rating)
	})

	t.Run("missing book fails", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().GetBook(env.ctx, bookID).Return(entity.Book{}, entity.ErrBookNotFound)

		_, err := env.service.BookSummary(env.ctx, bookID)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})
}

func TestDescribeBook(t *testing.T) {
	t.Parallel()

	book := entity.Book{ID: 1, Title: "Dune", Author: "Herbert"}

	t.Run("description generated", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				require.Contains(t, prompt, "Dune")
				require.Contains(t, prompt, "Unknown")
				return "A desert epic.", nil
			})

		description, err := env.service.DescribeBook(env.ctx, book)
		require.NoError(t, err)
		require.Equal(t, "A desert epic.", description)
	})

	t.Run("no generator configured", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, false)
		_, err := env.service.DescribeBook(env.ctx, book)
		require.ErrorIs(t, err, llm.ErrService)
	})
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	books := []entity.Book{
		{ID: 1, Title: "Dune", Author: "Herbert"},
		{ID: 2, Title: "Hyperion", Author: "Simmons"},
	}

	t.Run("pitch generated over listed titles", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().ListBooks(env.ctx, entity.BookFilter{Limit: 2}).Return(books, nil)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				require.Contains(t, prompt, "Dune by Herbert")
				require.Contains(t, prompt, "Hyperion by Simmons")
				return "Read both.", nil
			})

		got, pitch, err := env.service.Recommendations(env.ctx, 2)
		require.NoError(t, err)
		require.Equal(t, books, got)
		require.Equal(t, "Read both.", pitch)
	})

	t.Run("generation failure degrades to plain listing", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.books.EXPECT().ListBooks(env.ctx, entity.BookFilter{Limit: 2}).Return(books, nil)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).Return("", errGeneration)

		got, pitch, err := env.service.Recommendations(env.ctx, 2)
		require.NoError(t, err)
		require.Equal(t, books, got)
		require.Empty(t, pitch)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, false)
		env.books.EXPECT().ListBooks(env.ctx, entity.BookFilter{Limit: defaultRecommendations}).
			Return([]entity.Book{}, nil)

		got, pitch, err := env.service.Recommendations(env.ctx, -1)
		require.NoError(t, err)
		require.Empty(t, got)
		require.Empty(t, pitch)
	})
}

func TestSummarizeText(t *testing.T) {
	t.Parallel()

	t.Run("summary returned", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).Return(" Short summary. ", nil)

		summary, err := env.service.SummarizeText(env.ctx, strings.Repeat("text ", 10))
		require.NoError(t, err)
		require.Equal(t, "Short summary.", summary)
	})

	t.Run("too short input", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		_, err := env.service.SummarizeText(env.ctx, "tiny")
		require.ErrorIs(t, err, entity.ErrInvalidInput)
	})

	t.Run("generation failure surfaces", func(t *testing.T) {
		t.Parallel()

		env := initInsightTest(t, true)
		env.generator.EXPECT().Generate(env.ctx, gomock.Any()).Return("", llm.ErrTimeout)

		_, err := env.service.SummarizeText(env.ctx, strings.Repeat("text ", 10))
		require.ErrorIs(t, err, llm.ErrTimeout)
	})
}
