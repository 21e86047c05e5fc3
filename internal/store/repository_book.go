package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// Deletion is always a soft delete: the row stays, state flips to "deleted",
// and every read path filters deleted rows out at the SQL level.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook, book.ID, book.Title, book.Synopsis, book.Author, book.State)

	var created models.Book
	if err := row.Scan(&created.ID, &created.Title, &created.Synopsis, &created.Author, &created.State); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: inserting book failed")
		return models.Book{}, r.db.wrapDBError(err)
	}

	return created, nil
}

func (r *bookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateBook, book.ID, book.Title, book.Synopsis, book.Author)

	var updated models.Book
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Synopsis, &updated.Author, &updated.State); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error: updating book failed")
		return models.Book{}, r.db.wrapDBError(err)
	}

	return updated, nil
}

func (r *bookRepository) SoftDeleteBook(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteBook, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.SoftDeleteBook").Msg("error: deleting book failed")
		return r.db.wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDBError(err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

func (r *bookRepository) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, findBookByID, id)

	if err := row.Scan(&book.ID, &book.Title, &book.Synopsis, &book.Author, &book.State); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error: book lookup failed")
		return models.Book{}, r.db.wrapDBError(err)
	}

	return book, nil
}

func (r *bookRepository) ListActiveBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveBooks)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListActiveBooks").Msg("error: listing books failed")
		return nil, r.db.wrapDBError(err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Synopsis, &book.Author, &book.State); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListActiveBooks").Msg("error: scanning book row failed")
			return nil, ErrScanningRows
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapDBError(err)
	}

	return books, nil
}
