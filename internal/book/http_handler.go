package book

import (
	"encoding/json"
	"errors"
	"net/http"

	"biblioapi/internal/httpx"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type upsertRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	AuthorID        int64  `json:"author_id" validate:"required,gte=1"`
	CategoryID      int64  `json:"category_id" validate:"required,gte=1"`
	ISBN            string `json:"isbn" validate:"required,isbn"`
	PublicationYear int    `json:"publication_year" validate:"required,gte=1"`
	Pages           int    `json:"pages" validate:"required,gte=1"`
	Available       *bool  `json:"available"`
}

// List handles GET /books.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list books", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}

// Create handles POST /books. New books are available until loaned out.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book", details)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	b := Book{
		Title:           req.Title,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		Pages:           req.Pages,
		Available:       available,
	}
	if err := h.repo.Create(r.Context(), &b); err != nil {
		h.writeStoreError(w, r, err, "could not create book")
		return
	}
	httpx.JSONSuccessCreated(r, w, b)
}

// Update handles PUT /books/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/books/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book", details)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	b := Book{
		ID:              id,
		Title:           req.Title,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		Pages:           req.Pages,
		Available:       available,
	}
	if err := h.repo.Update(r.Context(), &b); err != nil {
		h.writeStoreError(w, r, err, "could not update book")
		return
	}
	httpx.JSONSuccess(r, w, b, nil)
}

// Delete handles DELETE /books/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/books/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err, "could not delete book")
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "book not found", nil)
	case errors.Is(err, ErrDuplicateISBN):
		httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_ISBN", "isbn already exists", nil)
	case errors.Is(err, ErrBadReference):
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REFERENCE", "unknown author or category", nil)
	default:
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", fallback, nil)
	}
}
