package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var GetReviewInfoDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_get_review_info_duration_ms",
	Help:    "Duration of GetReviewInfo in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetReviewInfoDuration)
}

func (i *implementation) GetReviewInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetReviewInfoDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	reviewID, err := pathID(r, "reviewID")
	if log.ErrorReview(i.logger, err, "got invalid request", log.GetReviewInfo, reviewID) {
		i.convertErr(w, r, err)
		return
	}

	review, err := i.reviewsUseCase.GetReviewInfo(r.Context(), reviewID)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
