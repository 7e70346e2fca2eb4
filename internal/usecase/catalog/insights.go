package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
	"github.com/project/bookshelf/internal/usecase/llm"
	"github.com/samber/lo"
)

const (
	reviewSampleLimit      = 50
	minSummaryInputLen     = 10
	defaultRecommendations = 5
)

// BookSummary collects the book's rating aggregate and, best effort, a
// generated summary of its reviews. Collaborator failure only costs the
// summary; the request still succeeds with the rating data.
func (c *catalogImpl) BookSummary(ctx context.Context, bookID int64) (entity.BookInsight, error) {
	book, err := c.booksRepository.GetBook(ctx, bookID)

	if log.ErrorBook(c.logger, err, "failed to get book for summary", log.BookSummary, bookID) {
		return entity.BookInsight{}, err
	}

	rating, err := c.reviewsRepository.RatingSummary(ctx, bookID)

	if log.ErrorBook(c.logger, err, "failed to aggregate ratings for summary", log.BookSummary, bookID) {
		return entity.BookInsight{}, err
	}

	insight := entity.BookInsight{Rating: rating}

	if c.generator == nil || !rating.HasRatings() {
		return insight, nil
	}

	reviews, err := c.reviewsRepository.ListBookReviews(ctx, bookID, reviewSampleLimit, 0)

	if log.ErrorBook(c.logger, err, "failed to list reviews for summary", log.BookSummary, bookID) {
		return entity.BookInsight{}, err
	}

	texts := lo.FilterMap(reviews, func(r entity.Review, _ int) (string, bool) {
		return r.Text, strings.TrimSpace(r.Text) != ""
	})

	if len(texts) == 0 {
		return insight, nil
	}

	generated, genErr := c.generator.Generate(ctx, llm.ReviewSummaryPrompt(book.Title, texts))
	if genErr != nil {
		log.ErrorBook(c.logger, genErr, "review summary generation failed, omitting summary", log.BookSummary, bookID)
		return insight, nil
	}

	insight.Summary = strings.TrimSpace(generated)

	return insight, nil
}

// DescribeBook produces a short generated description of a freshly created
// book. Callers treat an error as "no description".
func (c *catalogImpl) DescribeBook(ctx context.Context, book entity.Book) (string, error) {
	if c.generator == nil {
		return "", fmt.Errorf("%w: no generation backend configured", llm.ErrService)
	}

	prompt := fmt.Sprintf("Generate a brief summary for a book titled %q by %s. Genre: %s.",
		book.Title, book.Author, lo.Ternary(book.Genre != "", book.Genre, "Unknown"))

	description, err := c.generator.Generate(ctx, prompt)

	if log.ErrorBook(c.logger, err, "book description generation failed", log.GenerateSummary, book.ID) {
		return "", err
	}

	return strings.TrimSpace(description), nil
}

// Recommendations lists candidate books and asks the collaborator to phrase
// a pitch over them. Without a working collaborator the plain list is the
// answer.
func (c *catalogImpl) Recommendations(ctx context.Context, limit int) ([]entity.Book, string, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultRecommendations
	}

	books, err := c.booksRepository.ListBooks(ctx, entity.BookFilter{Limit: limit})

	if log.ErrorBook(c.logger, err, "failed to list books for recommendations", log.Recommendations, 0) {
		return nil, "", err
	}

	if c.generator == nil || len(books) == 0 {
		return books, "", nil
	}

	titles := lo.Map(books, func(b entity.Book, _ int) string {
		return fmt.Sprintf("%s by %s", b.Title, b.Author)
	})

	pitch, genErr := c.generator.Generate(ctx, llm.RecommendationPrompt(titles))
	if genErr != nil {
		log.ErrorBook(c.logger, genErr, "recommendation pitch generation failed, omitting pitch", log.Recommendations, 0)
		return books, "", nil
	}

	return books, strings.TrimSpace(pitch), nil
}

// SummarizeText is the one operation whose entire result is generated text,
// so collaborator errors surface instead of degrading.
func (c *catalogImpl) SummarizeText(ctx context.Context, text string) (string, error) {
	if len(strings.TrimSpace(text)) < minSummaryInputLen {
		return "", fmt.Errorf("%w: text content is missing or too short for summarization", entity.ErrInvalidInput)
	}

	if c.generator == nil {
		return "", fmt.Errorf("%w: no generation backend configured", llm.ErrService)
	}

	summary, err := c.generator.Generate(ctx, llm.TextSummaryPrompt(text))

	if err != nil {
		if c.logger != nil {
			c.logger.Error("text summary generation failed")
		}
		return "", err
	}

	return strings.TrimSpace(summary), nil
}
