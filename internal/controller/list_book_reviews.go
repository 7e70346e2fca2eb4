package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var ListBookReviewsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_list_book_reviews_duration_ms",
	Help:    "Duration of ListBookReviews in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ListBookReviewsDuration)
}

func (i *implementation) ListBookReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		ListBookReviewsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBookReview(i.logger, err, "got invalid request", log.ListBookReviews, bookID) {
		i.convertErr(w, r, err)
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	reviews, err := i.reviewsUseCase.ListBookReviews(r.Context(), bookID, limit, offset)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
