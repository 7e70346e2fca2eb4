package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/log"
	"github.com/project/bookshelf/internal/usecase/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// AddBook inserts the book and, when event publication is enabled, its
// creation event in the same transaction, so an event exists exactly when the
// book does.
func (c *catalogImpl) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	if err := validateBook(ctx, &book); err != nil {
		log.ErrorBookTitled(c.logger, err, "rejected invalid book", log.AddBook, book.Title, book.Author)
		return entity.Book{}, err
	}

	var created entity.Book
	err := c.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = c.booksRepository.AddBook(ctx, book)

		if txErr != nil {
			return txErr
		}

		if c.outboxRepository == nil {
			return nil
		}

		return c.outboxRepository.SendMessage(ctx, uuid.NewString(), repository.BookCreated{
			BookID: created.ID,
			Title:  created.Title,
			Author: created.Author,
			Genre:  created.Genre,
			Year:   created.Year,
			ISBN:   created.ISBN,
		})
	})

	if log.ErrorBookTitled(c.logger, err, "failed to add book", log.AddBook, book.Title, book.Author) {
		return entity.Book{}, err
	}

	log.InfoBook(c.logger, "book was added", log.AddBook, created.ID)

	return created, nil
}

func (c *catalogImpl) GetBookInfo(ctx context.Context, bookID int64) (entity.Book, error) {
	book, err := c.booksRepository.GetBook(ctx, bookID)

	if log.ErrorBook(c.logger, err, "failed to get book info", log.GetBookInfo, bookID) {
		return entity.Book{}, err
	}

	log.InfoBook(c.logger, "got the book", log.GetBookInfo, bookID)

	return book, nil
}

func (c *catalogImpl) ListBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	books, err := c.booksRepository.ListBooks(ctx, filter)

	if log.ErrorBook(c.logger, err, "failed to list books", log.ListBooks, 0) {
		return nil, err
	}

	return books, nil
}

func (c *catalogImpl) UpdateBook(ctx context.Context, bookID int64, upd entity.BookUpdate) (entity.Book, error) {
	if err := validateBookUpdate(upd); err != nil {
		log.ErrorBook(c.logger, err, "rejected invalid book update", log.UpdateBook, bookID)
		return entity.Book{}, err
	}

	book, err := c.booksRepository.UpdateBook(ctx, bookID, upd)

	if log.ErrorBook(c.logger, err, "failed to update book", log.UpdateBook, bookID) {
		return entity.Book{}, err
	}

	log.InfoBook(c.logger, "book was updated", log.UpdateBook, bookID)

	return book, nil
}

func (c *catalogImpl) DeleteBook(ctx context.Context, bookID int64) error {
	err := c.booksRepository.DeleteBook(ctx, bookID)

	if log.ErrorBook(c.logger, err, "failed to delete book", log.DeleteBook, bookID) {
		return err
	}

	log.InfoBook(c.logger, "book was deleted with its reviews", log.DeleteBook, bookID)

	return nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
