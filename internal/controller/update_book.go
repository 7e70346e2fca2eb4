package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
)

var UpdateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_update_book_duration_ms",
	Help:    "Duration of UpdateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateBookDuration)
}

// updateBookRequest keeps pointers so "absent" and "set to zero value" stay
// distinguishable: absent fields keep their stored values.
type updateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
	Year   *int    `json:"year"`
	ISBN   *string `json:"isbn"`
}

func (i *implementation) UpdateBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		UpdateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	bookID, err := pathID(r, "bookID")
	if log.ErrorBook(i.logger, err, "got invalid request", log.UpdateBook, bookID) {
		i.convertErr(w, r, err)
		return
	}

	var req updateBookRequest
	if err = readJSON(r, &req); err != nil {
		i.convertErr(w, r, err)
		return
	}

	book, err := i.booksUseCase.UpdateBook(r.Context(), bookID, entity.BookUpdate{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Year:   req.Year,
		ISBN:   req.ISBN,
	})

	if err != nil {
		i.convertErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}
