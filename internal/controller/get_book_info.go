package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/log"
)

var GetBookInfoDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_get_book_info_duration_ms",
	Help:    "Duration of GetBookInfo in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookInfoDuration)
}

func (i *implementation) GetBookInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetBookInfoDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBook(i.logger, err, "got invalid request", log.GetBookInfo, bookID) {
		i.convertErr(w, r, err)
		return
	}

	book, err := i.booksUseCase.GetBookInfo(r.Context(), bookID)

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}
