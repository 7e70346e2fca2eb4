package controller

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
)

var AddBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookshelf_add_book_duration_ms",
	Help:    "Duration of AddBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddBookDuration)
}

type addBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
}

func (req addBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Author, validation.Required),
	)
}

type addBookResponse struct {
	entity.Book
	Description string `json:"description,omitempty"`
}

func (i *implementation) AddBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		AddBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	var req addBookRequest
	if err := readJSON(r, &req); err != nil {
		i.convertErr(w, r, err)
		return
	}

	if err := req.Validate(); log.ErrorBookTitled(i.logger, err, "got invalid request", log.AddBook, req.Title, req.Author) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	book, err := i.booksUseCase.AddBook(r.Context(), entity.Book{
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

	response := addBookResponse{Book: book}

	// Runs strictly after the insert committed, so a slow or dead
	// collaborator can only cost the description, never the book.
	if r.URL.Query().Get("generate_summary") == "true" {
		if description, genErr := i.insightsUseCase.DescribeBook(r.Context(), book); genErr == nil {
			response.Description = description
		}
	}

	writeJSON(w, http.StatusCreated, response)
}
