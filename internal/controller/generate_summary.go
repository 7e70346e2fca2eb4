package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/pkg/logger"
)

var GenerateSummaryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_generate_summary_duration_ms",
	Help:    "Duration of GenerateSummary in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GenerateSummaryDuration)
}

type generateSummaryRequest struct {
	Text string `json:"text"`
}

type generateSummaryResponse struct {
	GeneratedSummary string `json:"generated_summary"`
}

func (i *implementation) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GenerateSummaryDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	var req generateSummaryRequest
	if err := readJSON(r, &req); err != nil {
		i.convertErr(w, r, err)
		return
	}

	summary, err := i.insightsUseCase.SummarizeText(r.Context(), req.Text)

	if logger.CheckError(err, i.logger, "summary generation failed") {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateSummaryResponse{GeneratedSummary: summary})
}
