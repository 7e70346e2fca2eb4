package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var DeleteBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_delete_book_duration_ms",
	Help:    "Duration of DeleteBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteBookDuration)
}

func (i *implementation) DeleteBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		DeleteBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBook(i.logger, err, "got invalid request", log.DeleteBook, bookID) {
		i.convertErr(w, r, err)
		return
	}

	if err = i.booksUseCase.DeleteBook(r.Context(), bookID); err != nil {
		i.convertErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
