package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/pkg/logger"
)

var RecommendationsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_recommendations_duration_ms",
	Help:    "Duration of Recommendations in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RecommendationsDuration)
}

type recommendationsResponse struct {
	Books []entity.Book `json:"books"`
	Pitch string        `json:"pitch,omitempty"`
}

func (i *implementation) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		RecommendationsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	books, pitch, err := i.insightsUseCase.Recommendations(r.Context(), limit)

	if logger.CheckError(err, i.logger, "recommendations failed") {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{Books: books, Pitch: pitch})
}
