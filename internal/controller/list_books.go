package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
)

var ListBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_list_books_duration_ms",
	Help:    "Duration of ListBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ListBooksDuration)
}

func (i *implementation) ListBooks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		ListBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	filter, err := bookFilterFromQuery(r)
	if log.ErrorBook(i.logger, err, "got invalid request", log.ListBooks, 0) {
		i.convertErr(w, r, err)
		return
	}

	books, err := i.booksUseCase.ListBooks(r.Context(), filter)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

func bookFilterFromQuery(r *http.Request) (entity.BookFilter, error) {
	filter := entity.BookFilter{
		Author: r.URL.Query().Get("author"),
		Genre:  r.URL.Query().Get("genre"),
	}

	var err error
	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		return entity.BookFilter{}, err
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		return entity.BookFilter{}, err
	}

	if raw := r.URL.Query().Get("year_from"); raw != "" {
		yearFrom, convErr := queryInt(r, "year_from", 0)
		if convErr != nil {
			return entity.BookFilter{}, convErr
		}
		filter.YearFrom = &yearFrom
	}
	if raw := r.URL.Query().Get("year_to"); raw != "" {
		yearTo, convErr := queryInt(r, "year_to", 0)
		if convErr != nil {
			return entity.BookFilter{}, convErr
		}
		filter.YearTo = &yearTo
	}

	return filter, nil
}
