package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/models"
)

// bookService is the concrete implementation of BookService.
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService backed by the given repository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// CreateBook validates required fields, assigns an id and persists the book
// in the active state. The returned book carries its relative link set.
func (b *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if book.Title == "" || book.Synopsis == "" || book.Author == "" {
		return models.Book{}, ErrMissingBookFields
	}

	book.ID = uuid.NewString()
	book.State = models.BookStateActive

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	createdBook.Links = models.BookLinks(createdBook.ID)
	return createdBook, nil
}

// UpdateBook replaces the title, synopsis and author of an active book.
// Soft-deleted books are treated as absent.
func (b *bookService) UpdateBook(ctx context.Context, id string, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return models.Book{}, ErrInvalidBookID
	}
	if book.Title == "" || book.Synopsis == "" || book.Author == "" {
		return models.Book{}, ErrMissingBookFields
	}

	book.ID = id
	updatedBook, err := b.bookRepository.UpdateBook(ctx, book)
	if err != nil {
		log.Err(err).Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	updatedBook.Links = models.BookLinks(updatedBook.ID)
	return updatedBook, nil
}

// DeleteBook soft-deletes a book. The row stays in place so existing
// reservations keep a valid target; the book simply stops being listable.
func (b *bookService) DeleteBook(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidBookID
	}

	if err := b.bookRepository.SoftDeleteBook(ctx, id); err != nil {
		log.Err(err).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}

// GetBook returns a single active book with its link set.
func (b *bookService) GetBook(ctx context.Context, id string) (models.Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Book{}, ErrInvalidBookID
	}

	foundBook, err := b.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("book lookup ended with error: %w", err)
	}

	foundBook.Links = models.BookLinks(foundBook.ID)
	return foundBook, nil
}

// ListBooks returns every active book, each with its link set.
func (b *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := b.bookRepository.ListActiveBooks(ctx)
	if err != nil {
		log.Err(err).Msg("book listing ended with error")
		return nil, fmt.Errorf("book listing ended with error: %w", err)
	}

	for i := range books {
		books[i].Links = models.BookLinks(books[i].ID)
	}

	return books, nil
}
