package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
	"github.com/openshelf/catalog/models"
)

// decodeBookRequest enforces the JSON content type on catalog writes and
// decodes the body. The returned message, if non-empty, is client-facing and
// already paired with the status code.
func decodeBookRequest(r *http.Request) (models.BookRequest, string, int) {
	var req models.BookRequest

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return req, "Request must be JSON", http.StatusUnsupportedMediaType
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, "Request body cannot be empty", http.StatusBadRequest
		}
		return req, "Invalid JSON format", http.StatusBadRequest
	}

	return req, "", 0
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, message, status := decodeBookRequest(r)
	if message != "" {
		utils.WriteError(w, message, status)
		return
	}

	createdBook, err := h.services.BookService.CreateBook(ctx, models.Book{
		Title:    req.Title,
		Synopsis: req.Synopsis,
		Author:   req.Author,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingBookFields) {
			utils.WriteError(w, "Missing required fields: title, synopsis, author", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during book creation")
		status := statusFromError(err)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	createdBook.Links = utils.AbsoluteLinks(createdBook.Links, utils.BaseURLFromRequest(r))
	utils.WriteJSON(w, createdBook, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, message, status := decodeBookRequest(r)
	if message != "" {
		utils.WriteError(w, message, status)
		return
	}

	bookID := chi.URLParam(r, "book_id")

	updatedBook, err := h.services.BookService.UpdateBook(ctx, bookID, models.Book{
		Title:    req.Title,
		Synopsis: req.Synopsis,
		Author:   req.Author,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBookID):
			utils.WriteError(w, "Invalid Book ID", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrMissingBookFields):
			utils.WriteError(w, "Missing required fields: title, synopsis, author", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteError(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book update")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	updatedBook.Links = utils.AbsoluteLinks(updatedBook.Links, utils.BaseURLFromRequest(r))
	utils.WriteJSON(w, updatedBook, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "book_id")

	if err := h.services.BookService.DeleteBook(ctx, bookID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBookID):
			utils.WriteError(w, "Invalid Book ID", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteError(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book deletion")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "book_id")

	foundBook, err := h.services.BookService.GetBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBookID):
			utils.WriteError(w, "Invalid Book ID", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteError(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book lookup")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	foundBook.Links = utils.AbsoluteLinks(foundBook.Links, utils.BaseURLFromRequest(r))
	utils.WriteJSON(w, foundBook, http.StatusOK)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	books, err := h.services.BookService.ListBooks(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during book listing")
		status := statusFromError(err)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	base := utils.BaseURLFromRequest(r)
	for i := range books {
		books[i].Links = utils.AbsoluteLinks(books[i].Links, base)
	}

	utils.WriteJSON(w, models.BookListResponse{
		TotalCount: len(books),
		Items:      books,
	}, http.StatusOK)
}
