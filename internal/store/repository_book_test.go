package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/models"
)

func newTestBookRepo(t *testing.T) (*bookRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &bookRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var bookColumns = []string{"id", "title", "synopsis", "author", "state"}

func TestCreateBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	book := models.Book{
		ID:       "b7e2a1d0-5c3f-4e88-9d41-2a6f0c9e7712",
		Title:    "The Go Programming Language",
		Synopsis: "A reference for Go programmers.",
		Author:   "Donovan and Kernighan",
		State:    models.BookStateActive,
	}

	rows := sqlmock.
		NewRows(bookColumns).
		AddRow(book.ID, book.Title, book.Synopsis, book.Author, book.State)

	mock.ExpectQuery("INSERT INTO books").
		WithArgs(book.ID, book.Title, book.Synopsis, book.Author, book.State).
		WillReturnRows(rows)

	created, err := repo.CreateBook(ctx, book)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != book.ID {
		t.Errorf("expected id %s, got %s", book.ID, created.ID)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE books").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateBook(ctx, models.Book{ID: "missing-id", Title: "t", Synopsis: "s", Author: "a"})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestUpdateBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	book := models.Book{ID: "book-id", Title: "New Title", Synopsis: "New synopsis", Author: "New Author"}

	rows := sqlmock.
		NewRows(bookColumns).
		AddRow(book.ID, book.Title, book.Synopsis, book.Author, models.BookStateActive)

	mock.ExpectQuery("UPDATE books").
		WithArgs(book.ID, book.Title, book.Synopsis, book.Author).
		WillReturnRows(rows)

	updated, err := repo.UpdateBook(ctx, book)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != book.Title {
		t.Errorf("expected title %q, got %q", book.Title, updated.Title)
	}
}

func TestSoftDeleteBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE books").
		WithArgs("book-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDeleteBook(ctx, "book-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDeleteBook_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	// zero rows affected: the book does not exist or is already deleted
	mock.ExpectExec("UPDATE books").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteBook(ctx, "missing-id")
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestFindBookByID_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBookByID(ctx, "missing-id")
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestListActiveBooks_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(bookColumns).
		AddRow("id-1", "Book One", "First synopsis", "Author One", models.BookStateActive).
		AddRow("id-2", "Book Two", "Second synopsis", "Author Two", models.BookStateActive)

	mock.ExpectQuery("SELECT id, title").
		WillReturnRows(rows)

	books, err := repo.ListActiveBooks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != "id-1" || books[1].ID != "id-2" {
		t.Errorf("unexpected book order: %v", books)
	}
}

func TestListActiveBooks_Empty(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title").
		WillReturnRows(sqlmock.NewRows(bookColumns))

	books, err := repo.ListActiveBooks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty slice, got %d books", len(books))
	}
}
