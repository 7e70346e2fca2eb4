package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/bookshelf/internal/entity"
	"github.com/stretchr/testify/require"
)

func initRepoTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return context.Background(), mock, New(nil, mock)
}

func bookRows(books ...entity.Book) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "title", "author", "genre", "year", "isbn"})
	for _, b := range books {
		rows.AddRow(b.ID, b.Title, b.Author, b.Genre, b.Year, b.ISBN)
	}
	return rows
}

func reviewRows(reviews ...entity.Review) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "book_id", "reviewer_id", "text", "rating"})
	for _, r := range reviews {
		rows.AddRow(r.ID, r.BookID, r.ReviewerID, r.Text, r.Rating)
	}
	return rows
}

func Test_postgresRepository_AddBook(t *testing.T) {
	t.Parallel()

	book := entity.Book{Title: "Dune", Author: "Herbert", Genre: "sci-fi", Year: 1965, ISBN: "0441172717"}

	t.Run("inserted with own transaction", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO books`).
			WithArgs(book.Title, book.Author, book.Genre, book.Year, book.ISBN).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		created, err := repo.AddBook(ctx, book)
		require.NoError(t, err)
		require.Equal(t, int64(1), created.ID)
		require.Equal(t, book.Title, created.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reuses injected transaction without committing", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		ctx = insertTxInMock(ctx, mock)
		mock.ExpectQuery(`INSERT INTO books`).
			WithArgs(book.Title, book.Author, book.Genre, book.Year, book.ISBN).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))

		created, err := repo.AddBook(ctx, book)
		require.NoError(t, err)
		require.Equal(t, int64(2), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate title and author", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO books`).
			WithArgs(book.Title, book.Author, book.Genre, book.Year, book.ISBN).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
		mock.ExpectRollback()

		_, err := repo.AddBook(ctx, book)
		require.ErrorIs(t, err, entity.ErrBookExists)
	})
}

func Test_postgresRepository_GetBook(t *testing.T) {
	t.Parallel()

	stored := entity.Book{ID: 1, Title: "Dune", Author: "Herbert", Genre: "sci-fi", Year: 1965, ISBN: "0441172717"}

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(stored.ID).
			WillReturnRows(bookRows(stored))
		mock.ExpectCommit()

		book, err := repo.GetBook(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, stored, book)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(int64(99)).
			WillReturnRows(bookRows())
		mock.ExpectRollback()

		_, err := repo.GetBook(ctx, 99)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})
}

func Test_postgresRepository_ListBooks(t *testing.T) {
	t.Parallel()

	first := entity.Book{ID: 1, Title: "Dune", Author: "Herbert", Genre: "sci-fi", Year: 1965}
	second := entity.Book{ID: 2, Title: "Messiah", Author: "Herbert", Genre: "sci-fi", Year: 1969}

	t.Run("all filters applied in order", func(t *testing.T) {
		t.Parallel()

		yearFrom, yearTo := 1960, 1970
		filter := entity.BookFilter{
			Author:   "Herbert",
			Genre:    "sci-fi",
			YearFrom: &yearFrom,
			YearTo:   &yearTo,
			Limit:    10,
			Offset:   5,
		}

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(filter.Author, filter.Genre, yearFrom, yearTo, filter.Limit, filter.Offset).
			WillReturnRows(bookRows(first, second))
		mock.ExpectCommit()

		books, err := repo.ListBooks(ctx, filter)
		require.NoError(t, err)
		require.Equal(t, []entity.Book{first, second}, books)
	})

	t.Run("no filters returns empty slice not nil", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WillReturnRows(bookRows())
		mock.ExpectCommit()

		books, err := repo.ListBooks(ctx, entity.BookFilter{})
		require.NoError(t, err)
		require.NotNil(t, books)
		require.Empty(t, books)
	})
}

func Test_postgresRepository_UpdateBook(t *testing.T) {
	t.Parallel()

	stored := entity.Book{ID: 1, Title: "Dune", Author: "Herbert", Genre: "sci-fi", Year: 1965, ISBN: ""}

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		t.Parallel()

		newGenre := "classic sci-fi"

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(stored.ID).
			WillReturnRows(bookRows(stored))
		mock.ExpectExec(`UPDATE books`).
			WithArgs(stored.Title, stored.Author, newGenre, stored.Year, stored.ISBN, stored.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		book, err := repo.UpdateBook(ctx, stored.ID, entity.BookUpdate{Genre: &newGenre})
		require.NoError(t, err)
		require.Equal(t, newGenre, book.Genre)
		require.Equal(t, stored.Title, book.Title)
		require.Equal(t, stored.Year, book.Year)
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(int64(99)).
			WillReturnRows(bookRows())
		mock.ExpectRollback()

		_, err := repo.UpdateBook(ctx, 99, entity.BookUpdate{})
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})

	t.Run("rename onto existing title and author", func(t *testing.T) {
		t.Parallel()

		taken := "Messiah"

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, title, author`).
			WithArgs(stored.ID).
			WillReturnRows(bookRows(stored))
		mock.ExpectExec(`UPDATE books`).
			WithArgs(taken, stored.Author, stored.Genre, stored.Year, stored.ISBN, stored.ID).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
		mock.ExpectRollback()

		_, err := repo.UpdateBook(ctx, stored.ID, entity.BookUpdate{Title: &taken})
		require.ErrorIs(t, err, entity.ErrBookExists)
	})
}

func Test_postgresRepository_DeleteBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rowsAffected int64
		errRequire   error
	}{
		{name: "deleted with cascading reviews",
			rowsAffected: 1,
			errRequire:   nil},
		{name: "missing book",
			rowsAffected: 0,
			errRequire:   entity.ErrBookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM books`).
				WithArgs(int64(1)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rowsAffected))
			if tt.errRequire == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := repo.DeleteBook(ctx, 1)
			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}

func Test_postgresRepository_AddReview(t *testing.T) {
	t.Parallel()

	review := entity.Review{BookID: 1, ReviewerID: 2, Text: "Loved it", Rating: 3.5}

	t.Run("inserted", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(review.BookID, review.ReviewerID, review.Text, review.Rating).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
		mock.ExpectCommit()

		created, err := repo.AddReview(ctx, review)
		require.NoError(t, err)
		require.Equal(t, int64(10), created.ID)
		require.Equal(t, review.Rating, created.Rating)
	})

	t.Run("missing book leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(review.BookID, review.ReviewerID, review.Text, review.Rating).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
		mock.ExpectRollback()

		_, err := repo.AddReview(ctx, review)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rating outside the accepted scale", func(t *testing.T) {
		t.Parallel()

		bad := review
		bad.Rating = 9.5

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(bad.BookID, bad.ReviewerID, bad.Text, bad.Rating).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
		mock.ExpectRollback()

		_, err := repo.AddReview(ctx, bad)
		require.ErrorIs(t, err, entity.ErrInvalidInput)
	})
}

func Test_postgresRepository_GetReview(t *testing.T) {
	t.Parallel()

	stored := entity.Review{ID: 10, BookID: 1, ReviewerID: 2, Text: "ok", Rating: 4}

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(stored.ID).
			WillReturnRows(reviewRows(stored))
		mock.ExpectCommit()

		review, err := repo.GetReview(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, stored, review)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(int64(99)).
			WillReturnRows(reviewRows())
		mock.ExpectRollback()

		_, err := repo.GetReview(ctx, 99)
		require.ErrorIs(t, err, entity.ErrReviewNotFound)
	})
}

func Test_postgresRepository_ListBookReviews(t *testing.T) {
	t.Parallel()

	const bookID = int64(1)
	stored := []entity.Review{
		{ID: 1, BookID: bookID, ReviewerID: 1, Text: "first", Rating: 3.5},
		{ID: 2, BookID: bookID, ReviewerID: 2, Text: "second", Rating: 1},
	}

	t.Run("reviews listed for existing book", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(bookID, 10, 0).
			WillReturnRows(reviewRows(stored...))
		mock.ExpectCommit()

		reviews, err := repo.ListBookReviews(ctx, bookID, 10, 0)
		require.NoError(t, err)
		require.Equal(t, stored, reviews)
	})

	t.Run("existing book without reviews yields empty slice", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(bookID, 10, 0).
			WillReturnRows(reviewRows())
		mock.ExpectCommit()

		reviews, err := repo.ListBookReviews(ctx, bookID, 10, 0)
		require.NoError(t, err)
		require.NotNil(t, reviews)
		require.Empty(t, reviews)
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}))
		mock.ExpectRollback()

		_, err := repo.ListBookReviews(ctx, 99, 10, 0)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})
}

func Test_postgresRepository_UpdateReview(t *testing.T) {
	t.Parallel()

	stored := entity.Review{ID: 10, BookID: 1, ReviewerID: 2, Text: "ok", Rating: 4}

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		t.Parallel()

		newRating := 2.5

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(stored.ID).
			WillReturnRows(reviewRows(stored))
		mock.ExpectExec(`UPDATE reviews`).
			WithArgs(stored.ReviewerID, stored.Text, newRating, stored.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		review, err := repo.UpdateReview(ctx, stored.ID, entity.ReviewUpdate{Rating: &newRating})
		require.NoError(t, err)
		require.Equal(t, newRating, review.Rating)
		require.Equal(t, stored.Text, review.Text)
	})

	t.Run("missing review", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, book_id, reviewer_id`).
			WithArgs(int64(99)).
			WillReturnRows(reviewRows())
		mock.ExpectRollback()

		_, err := repo.UpdateReview(ctx, 99, entity.ReviewUpdate{})
		require.ErrorIs(t, err, entity.ErrReviewNotFound)
	})
}

func Test_postgresRepository_DeleteReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rowsAffected int64
		errRequire   error
	}{
		{name: "deleted",
			rowsAffected: 1,
			errRequire:   nil},
		{name: "missing review",
			rowsAffected: 0,
			errRequire:   entity.ErrReviewNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM reviews`).
				WithArgs(int64(10)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rowsAffected))
			if tt.errRequire == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := repo.DeleteReview(ctx, 10)
			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}

func Test_postgresRepository_RatingSummary(t *testing.T) {
	t.Parallel()

	const bookID = int64(1)

	t.Run("mean of fractional and whole ratings", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectQuery(`SELECT COALESCE`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(2.25, int64(2)))
		mock.ExpectCommit()

		summary, err := repo.RatingSummary(ctx, bookID)
		require.NoError(t, err)
		require.Equal(t, 2.25, summary.Average)
		require.Equal(t, int64(2), summary.Count)
		require.True(t, summary.HasRatings())
	})

	t.Run("no reviews yields count zero not a fake average", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectQuery(`SELECT COALESCE`).
			WithArgs(bookID).
			WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(0.0, int64(0)))
		mock.ExpectCommit()

		summary, err := repo.RatingSummary(ctx, bookID)
		require.NoError(t, err)
		require.False(t, summary.HasRatings())
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()

		ctx, mock, repo := initRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}))
		mock.ExpectRollback()

		_, err := repo.RatingSummary(ctx, 99)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})
}
