package catalog

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/bookshelf/internal/entity"
)

// Bounds chosen from the accepted rating scale (0.0-5.0 inclusive) and the
// plausible publication-year window (0-2100).
const (
	minRating = 0.0
	maxRating = 5.0
	minYear   = 0
	maxYear   = 2100
)

func validateBook(ctx context.Context, book *entity.Book) error {
	err := validation.ValidateStructWithContext(ctx, book,
		validation.Field(&book.Title, validation.Required),
		validation.Field(&book.Author, validation.Required),
		validation.Field(&book.Year, validation.Min(minYear), validation.Max(maxYear)),
	)

	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidInput, err)
	}

	return nil
}

func validateBookUpdate(upd entity.BookUpdate) error {
	if upd.Title != nil {
		if err := validation.Validate(*upd.Title, validation.Required); err != nil {
			return fmt.Errorf("%w: title: %s", entity.ErrInvalidInput, err)
		}
	}
	if upd.Author != nil {
		if err := validation.Validate(*upd.Author, validation.Required); err != nil {
			return fmt.Errorf("%w: author: %s", entity.ErrInvalidInput, err)
		}
	}
	if upd.Year != nil {
		if err := validation.Validate(*upd.Year, validation.Min(minYear), validation.Max(maxYear)); err != nil {
			return fmt.Errorf("%w: year: %s", entity.ErrInvalidInput, err)
		}
	}

	return nil
}

func validateReview(ctx context.Context, review *entity.Review) error {
	err := validation.ValidateStructWithContext(ctx, review,
		validation.Field(&review.BookID, validation.Required),
		validation.Field(&review.ReviewerID, validation.Required),
		validation.Field(&review.Rating, validation.Min(minRating), validation.Max(maxRating)),
	)

	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidInput, err)
	}

	return nil
}

func validateReviewUpdate(upd entity.ReviewUpdate) error {
	if upd.ReviewerID != nil {
		if err := validation.Validate(*upd.ReviewerID, validation.Required); err != nil {
			return fmt.Errorf("%w: reviewer_id: %s", entity.ErrInvalidInput, err)
		}
	}
	if upd.Rating != nil {
		if err := validation.Validate(*upd.Rating, validation.Min(minRating), validation.Max(maxRating)); err != nil {
			return fmt.Errorf("%w: rating: %s", entity.ErrInvalidInput, err)
		}
	}

	return nil
}
