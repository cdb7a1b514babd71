package author

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
	Name        string  `json:"name" validate:"required,max=150"`
	Nationality string  `json:"nationality" validate:"required"`
	BirthDate   string  `json:"birth_date" validate:"required,dateformat"`
	Bio         *string `json:"bio"`
}

// List handles GET /authors.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list authors", nil)
		return
	}
	if authors == nil {
		authors = []Author{}
	}
	httpx.JSONSuccess(r, w, authors, nil)
}

// Create handles POST /authors.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author", details)
		return
	}

	a := Author{Name: req.Name, Nationality: req.Nationality, BirthDate: req.BirthDate, Bio: req.Bio}
	if err := h.repo.Create(r.Context(), &a); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not create author", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, a)
}

// Update handles PUT /authors/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/authors/")
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
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author", details)
		return
	}

	a := Author{ID: id, Name: req.Name, Nationality: req.Nationality, BirthDate: req.BirthDate, Bio: req.Bio}
	if err := h.repo.Update(r.Context(), &a); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "author not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not update author", nil)
		return
	}
	httpx.JSONSuccess(r, w, a, nil)
}

// Delete handles DELETE /authors/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/authors/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "author not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete author", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
