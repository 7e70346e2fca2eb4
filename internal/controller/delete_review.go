package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var DeleteReviewDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_delete_review_duration_ms",
	Help:    "Duration of DeleteReview in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteReviewDuration)
}

func (i *implementation) DeleteReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		DeleteReviewDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	reviewID, err := pathID(r, "reviewID")
	if log.ErrorReview(i.logger, err, "got invalid request", log.DeleteReview, reviewID) {
		i.convertErr(w, r, err)
		return
	}

	if err = i.reviewsUseCase.DeleteReview(r.Context(), reviewID); err != nil {
		i.convertErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
