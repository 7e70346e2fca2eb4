package controller

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var BookSummaryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_book_summary_duration_ms",
	Help:    "Duration of BookSummary in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(BookSummaryDuration)
}

type bookSummaryResponse struct {
	Summary       *string  `json:"summary"`
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  int64    `json:"ratings_count"`
}

func (i *implementation) BookSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		BookSummaryDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBook(i.logger, err, "got invalid request", log.BookSummary, bookID) {
		i.convertErr(w, r, err)
		return
	}

	insight, err := i.insightsUseCase.BookSummary(r.Context(), bookID)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	resp := bookSummaryResponse{RatingsCount: insight.Rating.Count}

	if insight.Summary != "" {
		resp.Summary = &insight.Summary
	}

	// Books without a single rated review report null, not zero.
	if insight.Rating.HasRatings() {
		avg := math.Round(insight.Rating.Average*100) / 100
		resp.AverageRating = &avg
	}

	writeJSON(w, http.StatusOK, resp)
}
