package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
	"github.com/project/bookshelf/internal/usecase/repository"
)

func (c *catalogImpl) AddReview(ctx context.Context, review entity.Review) (entity.Review, error) {
	if err := validateReview(ctx, &review); err != nil {
		log.ErrorBookReview(c.logger, err, "rejected invalid review", log.AddReview, review.BookID)
		return entity.Review{}, err
	}

	var created entity.Review
	err := c.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = c.reviewsRepository.AddReview(ctx, review)

		if txErr != nil {
			return txErr
		}

		if c.outboxRepository == nil {
			return nil
		}

		return c.outboxRepository.SendMessage(ctx, uuid.NewString(), repository.ReviewCreated{
			ReviewID:   created.ID,
			BookID:     created.BookID,
			ReviewerID: created.ReviewerID,
			Rating:     created.Rating,
		})
	})

	if log.ErrorBookReview(c.logger, err, "failed to add review", log.AddReview, review.BookID) {
		return entity.Review{}, err
	}

	log.InfoReview(c.logger, "review was added", log.AddReview, created.ID)

	return created, nil
}

func (c *catalogImpl) GetReviewInfo(ctx context.Context, reviewID int64) (entity.Review, error) {
	review, err := c.reviewsRepository.GetReview(ctx, reviewID)

	if log.ErrorReview(c.logger, err, "failed to get review info", log.GetReviewInfo, reviewID) {
		return entity.Review{}, err
	}

	return review, nil
}

func (c *catalogImpl) ListBookReviews(ctx context.Context, bookID int64, limit, offset int) ([]entity.Review, error) {
	limit, offset = normalizePage(limit, offset)

	reviews, err := c.reviewsRepository.ListBookReviews(ctx, bookID, limit, offset)

	if log.ErrorBookReview(c.logger, err, "failed to list book reviews", log.ListBookReviews, bookID) {
		return nil, err
	}

	return reviews, nil
}

func (c *catalogImpl) UpdateReview(ctx context.Context, reviewID int64, upd entity.ReviewUpdate) (entity.Review, error) {
	if err := validateReviewUpdate(upd); err != nil {
		log.ErrorReview(c.logger, err, "rejected invalid review update", log.UpdateReview, reviewID)
		return entity.Review{}, err
	}

	review, err := c.reviewsRepository.UpdateReview(ctx, reviewID, upd)

	if log.ErrorReview(c.logger, err, "failed to update review", log.UpdateReview, reviewID) {
		return entity.Review{}, err
	}

	log.InfoReview(c.logger, "review was updated", log.UpdateReview, reviewID)

	return review, nil
}

func (c *catalogImpl) DeleteReview(ctx context.Context, reviewID int64) error {
	err := c.reviewsRepository.DeleteReview(ctx, reviewID)

	if log.ErrorReview(c.logger, err, "failed to delete review", log.DeleteReview, reviewID) {
		return err
	}

	log.InfoReview(c.logger, "review was deleted", log.DeleteReview, reviewID)

	return nil
}

// AverageRating reports the mean over all of the book's reviews. A book with
// no reviews yields a summary with Count == 0, never a numeric zero average.
func (c *catalogImpl) AverageRating(ctx context.Context, bookID int64) (entity.RatingSummary, error) {
	summary, err := c.reviewsRepository.RatingSummary(ctx, bookID)

	if log.ErrorBookReview(c.logger, err, "failed to aggregate ratings", log.AverageRating, bookID) {
		return entity.RatingSummary{}, err
	}

	return summary, nil
}
