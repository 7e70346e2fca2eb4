package controller

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var AverageRatingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_average_rating_duration_ms",
	Help:    "Duration of AverageRating in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AverageRatingDuration)
}

type averageRatingResponse struct {
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  int64    `json:"ratings_count"`
}

func (i *implementation) AverageRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		AverageRatingDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBook(i.logger, err, "got invalid request", log.AverageRating, bookID) {
		i.convertErr(w, r, err)
		return
	}

	summary, err := i.reviewsUseCase.AverageRating(r.Context(), bookID)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	resp := averageRatingResponse{RatingsCount: summary.Count}

	// Books without a single rated review report null, not zero.
	if summary.HasRatings() {
		avg := math.Round(summary.Average*100) / 100
		resp.AverageRating = &avg
	}

	writeJSON(w, http.StatusOK, resp)
}
