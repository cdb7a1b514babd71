package review

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
	BookID   int64  `json:"book_id" validate:"required,gte=1"`
	MemberID int64  `json:"member_id" validate:"required,gte=1"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required"`
	Date     string `json:"date" validate:"required,dateformat"`
}

// List handles GET /reviews.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list reviews", nil)
		return
	}
	if reviews == nil {
		reviews = []Review{}
	}
	httpx.JSONSuccess(r, w, reviews, nil)
}

// ListByBook handles GET /reviews/book/{id}.
func (h *Handler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := httpx.IDFromPath(r.URL.Path, "/reviews/book/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	reviews, err := h.repo.ListByBook(r.Context(), bookID)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list reviews", nil)
		return
	}
	if reviews == nil {
		reviews = []Review{}
	}
	httpx.JSONSuccess(r, w, reviews, nil)
}

// Create handles POST /reviews.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid review", details)
		return
	}

	rv := Review{BookID: req.BookID, MemberID: req.MemberID, Rating: req.Rating, Comment: req.Comment, Date: req.Date}
	if err := h.repo.Create(r.Context(), &rv); err != nil {
		if errors.Is(err, ErrBadReference) {
			httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REFERENCE", "unknown book or member", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not create review", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, rv)
}

// Update handles PUT /reviews/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/reviews/")
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
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid review", details)
		return
	}

	rv := Review{ID: id, BookID: req.BookID, MemberID: req.MemberID, Rating: req.Rating, Comment: req.Comment, Date: req.Date}
	if err := h.repo.Update(r.Context(), &rv); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "review not found", nil)
		case errors.Is(err, ErrBadReference):
			httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REFERENCE", "unknown book or member", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not update review", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, rv, nil)
}

// Delete handles DELETE /reviews/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/reviews/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "review not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete review", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
