package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
)

var UpdateReviewDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_update_review_duration_ms",
	Help:    "Duration of UpdateReview in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateReviewDuration)
}

type updateReviewRequest struct {
	ReviewerID *int64   `json:"reviewer_id"`
	Text       *string  `json:"text"`
	Rating     *float64 `json:"rating"`
}

func (i *implementation) UpdateReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		UpdateReviewDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	reviewID, err := pathID(r, "reviewID")
	if log.ErrorReview(i.logger, err, "got invalid request", log.UpdateReview, reviewID) {
		i.convertErr(w, r, err)
		return
	}

	var req updateReviewRequest
	if err = readJSON(r, &req); err != nil {
		i.convertErr(w, r, err)
		return
	}

	review, err := i.reviewsUseCase.UpdateReview(r.Context(), reviewID, entity.ReviewUpdate{
		ReviewerID: req.ReviewerID,
		Text:       req.Text,
		Rating:     req.Rating,
	})

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
