package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/pkg/logger"
)

var _ BooksRepository = (*postgresRepository)(nil)
var _ ReviewsRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     GetterTx
}

func New(logger *zap.Logger, db GetterTx) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// begin reuses a transaction injected by the Transactor. Only a transaction
// opened here is committed or rolled back here; an injected one belongs to
// its owner.
func (p *postgresRepository) begin(ctx context.Context) (pgx.Tx, bool, error) {
	if tx, err := extractTx(ctx); err == nil {
		return tx, false, nil
	}

	tx, err := p.db.Begin(ctx)

	return tx, true, err
}

func (p *postgresRepository) rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.CheckError(err, p.logger, "error during rollback", zap.Error(err))
	}
}

func (p *postgresRepository) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Book{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
INSERT INTO books (title, author, genre, year, isbn)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	result := book

	err = tx.QueryRow(ctx, query, book.Title, book.Author, book.Genre, book.Year, book.ISBN).
		Scan(&result.ID)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return entity.Book{}, fmt.Errorf("%q by %q: %w", book.Title, book.Author, entity.ErrBookExists)
		}

		return entity.Book{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Book{}, err
		}
	}

	return result, nil
}

func (p *postgresRepository) GetBook(ctx context.Context, bookID int64) (entity.Book, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Book{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
SELECT id, title, author, COALESCE(genre, ''), COALESCE(year, 0), COALESCE(isbn, '')
FROM books
WHERE id = $1
`
	var book entity.Book
	err = tx.QueryRow(ctx, query, bookID).
		Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year, &book.ISBN)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Book{}, err
		}
	}

	return book, nil
}

// ListBooks orders by id ascending so paging over an unchanged table is
// deterministic.
func (p *postgresRepository) ListBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return nil, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	var sb strings.Builder
	sb.WriteString(`
SELECT id, title, author, COALESCE(genre, ''), COALESCE(year, 0), COALESCE(isbn, '')
FROM books
WHERE true`)

	args := make([]any, 0, 6)

	addArg := func(clause string, value any) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + "$" + strconv.Itoa(len(args)))
	}

	if filter.Author != "" {
		addArg("author = ", filter.Author)
	}
	if filter.Genre != "" {
		addArg("genre = ", filter.Genre)
	}
	if filter.YearFrom != nil {
		addArg("year >= ", *filter.YearFrom)
	}
	if filter.YearTo != nil {
		addArg("year <= ", *filter.YearTo)
	}

	sb.WriteString(" ORDER BY id")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}

	rows, err := tx.Query(ctx, sb.String(), args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var book entity.Book

		if err = rows.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year, &book.ISBN); err != nil {
			return nil, err
		}

		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return nil, err
		}
	}

	return books, nil
}

// UpdateBook changes only the fields set in upd. The row is locked for the
// duration so read-modify-write stays consistent.
func (p *postgresRepository) UpdateBook(ctx context.Context, bookID int64, upd entity.BookUpdate) (entity.Book, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Book{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const querySelect = `
SELECT id, title, author, COALESCE(genre, ''), COALESCE(year, 0), COALESCE(isbn, '')
FROM books
WHERE id = $1 FOR UPDATE
`
	var book entity.Book
	err = tx.QueryRow(ctx, querySelect, bookID).
		Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year, &book.ISBN)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.Genre != nil {
		book.Genre = *upd.Genre
	}
	if upd.Year != nil {
		book.Year = *upd.Year
	}
	if upd.ISBN != nil {
		book.ISBN = *upd.ISBN
	}

	const queryUpdate = `
UPDATE books SET title = $1, author = $2, genre = $3, year = $4, isbn = $5
WHERE id = $6
`
	_, err = tx.Exec(ctx, queryUpdate, book.Title, book.Author, book.Genre, book.Year, book.ISBN, bookID)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return entity.Book{}, fmt.Errorf("%q by %q: %w", book.Title, book.Author, entity.ErrBookExists)
		}

		return entity.Book{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Book{}, err
		}
	}

	return book, nil
}

// DeleteBook removes the book and, through the FK cascade, every review
// referencing it in the same statement.
func (p *postgresRepository) DeleteBook(ctx context.Context, bookID int64) error {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
DELETE FROM books
WHERE id = $1
`
	tag, err := tx.Exec(ctx, query, bookID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (p *postgresRepository) AddReview(ctx context.Context, review entity.Review) (entity.Review, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Review{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
INSERT INTO reviews (book_id, reviewer_id, text, rating)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	result := review

	err = tx.QueryRow(ctx, query, review.BookID, review.ReviewerID, review.Text, review.Rating).
		Scan(&result.ID)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return entity.Review{}, fmt.Errorf("book with ID %d does not exist: %w",
					review.BookID, entity.ErrBookNotFound)
			case pgerrcode.CheckViolation:
				return entity.Review{}, fmt.Errorf("rating %v is out of range: %w",
					review.Rating, entity.ErrInvalidInput)
			}
		}

		return entity.Review{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Review{}, err
		}
	}

	return result, nil
}

func (p *postgresRepository) GetReview(ctx context.Context, reviewID int64) (entity.Review, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Review{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
SELECT id, book_id, reviewer_id, text, rating::float8
FROM reviews
WHERE id = $1
`
	var review entity.Review
	err = tx.QueryRow(ctx, query, reviewID).
		Scan(&review.ID, &review.BookID, &review.ReviewerID, &review.Text, &review.Rating)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Review{}, entity.ErrReviewNotFound
	}

	if err != nil {
		return entity.Review{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Review{}, err
		}
	}

	return review, nil
}

// ListBookReviews distinguishes a missing book from a book with no reviews:
// the former is ErrBookNotFound, the latter an empty slice.
func (p *postgresRepository) ListBookReviews(ctx context.Context, bookID int64, limit, offset int) ([]entity.Review, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return nil, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	if err = p.checkBookExists(ctx, tx, bookID); err != nil {
		return nil, err
	}

	const query = `
SELECT id, book_id, reviewer_id, text, rating::float8
FROM reviews
WHERE book_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`
	rows, err := tx.Query(ctx, query, bookID, limit, offset)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reviews := make([]entity.Review, 0)
	for rows.Next() {
		var review entity.Review

		if err = rows.Scan(&review.ID, &review.BookID, &review.ReviewerID, &review.Text, &review.Rating); err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

func (p *postgresRepository) UpdateReview(ctx context.Context, reviewID int64, upd entity.ReviewUpdate) (entity.Review, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.Review{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const querySelect = `
SELECT id, book_id, reviewer_id, text, rating::float8
FROM reviews
WHERE id = $1 FOR UPDATE
`
	var review entity.Review
	err = tx.QueryRow(ctx, querySelect, reviewID).
		Scan(&review.ID, &review.BookID, &review.ReviewerID, &review.Text, &review.Rating)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Review{}, entity.ErrReviewNotFound
	}

	if err != nil {
		return entity.Review{}, err
	}

	if upd.ReviewerID != nil {
		review.ReviewerID = *upd.ReviewerID
	}
	if upd.Text != nil {
		review.Text = *upd.Text
	}
	if upd.Rating != nil {
		review.Rating = *upd.Rating
	}

	const queryUpdate = `
UPDATE reviews SET reviewer_id = $1, text = $2, rating = $3
WHERE id = $4
`
	_, err = tx.Exec(ctx, queryUpdate, review.ReviewerID, review.Text, review.Rating, reviewID)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return entity.Review{}, fmt.Errorf("rating %v is out of range: %w",
				review.Rating, entity.ErrInvalidInput)
		}

		return entity.Review{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.Review{}, err
		}
	}

	return review, nil
}

func (p *postgresRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	const query = `
DELETE FROM reviews
WHERE id = $1
`
	tag, err := tx.Exec(ctx, query, reviewID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrReviewNotFound
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}

// RatingSummary averages in the database so precision is the server's float8,
// not a lossy per-row accumulation. A count of zero is the "no rating" state
// and the average carries no meaning then.
func (p *postgresRepository) RatingSummary(ctx context.Context, bookID int64) (entity.RatingSummary, error) {
	tx, owned, err := p.begin(ctx)

	if err != nil {
		return entity.RatingSummary{}, err
	}
	if owned {
		defer p.rollback(ctx, tx)
	}

	if err = p.checkBookExists(ctx, tx, bookID); err != nil {
		return entity.RatingSummary{}, err
	}

	const query = `
SELECT COALESCE(AVG(rating)::float8, 0), COUNT(*)
FROM reviews
WHERE book_id = $1
`
	var summary entity.RatingSummary
	err = tx.QueryRow(ctx, query, bookID).Scan(&summary.Average, &summary.Count)

	if err != nil {
		return entity.RatingSummary{}, err
	}

	if owned {
		if err = tx.Commit(ctx); err != nil {
			return entity.RatingSummary{}, err
		}
	}

	return summary, nil
}

func (p *postgresRepository) checkBookExists(ctx context.Context, tx pgx.Tx, bookID int64) error {
	const query = `
SELECT 1
FROM books
WHERE id = $1
`
	var one int
	err := tx.QueryRow(ctx, query, bookID).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrBookNotFound
	}

	return err
}
