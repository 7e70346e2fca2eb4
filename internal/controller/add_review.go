package controller

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
)

var AddReviewDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_add_review_duration_ms",
	Help:    "Duration of AddReview in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddReviewDuration)
}

type addReviewRequest struct {
	ReviewerID int64   `json:"reviewer_id"`
	Text       string  `json:"text"`
	Rating     float64 `json:"rating"`
}

func (req addReviewRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ReviewerID, validation.Required),
		validation.Field(&req.Rating, validation.Min(0.0), validation.Max(5.0)),
	)
}

func (i *implementation) AddReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		AddReviewDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBookReview(i.logger, err, "got invalid request", log.AddReview, bookID) {
		i.convertErr(w, r, err)
		return
	}

	var req addReviewRequest
	if err = readJSON(r, &req); err != nil {
		i.convertErr(w, r, err)
		return
	}

	if err = req.Validate(); log.ErrorBookReview(i.logger, err, "got invalid request", log.AddReview, bookID) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	review, err := i.reviewsUseCase.AddReview(r.Context(), entity.Review{
		BookID:     bookID,
		ReviewerID: req.ReviewerID,
		Text:       req.Text,
		Rating:     req.Rating,
	})

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
