package category

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
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}

// List handles GET /categories.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list categories", nil)
		return
	}
	if categories == nil {
		categories = []Category{}
	}
	httpx.JSONSuccess(r, w, categories, nil)
}

// Create handles POST /categories.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category", details)
		return
	}

	c := Category{Name: req.Name, Description: req.Description}
	if err := h.repo.Create(r.Context(), &c); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_NAME", "category already exists", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not create category", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, c)
}

// Update handles PUT /categories/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/categories/")
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
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category", details)
		return
	}

	c := Category{ID: id, Name: req.Name, Description: req.Description}
	if err := h.repo.Update(r.Context(), &c); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "category not found", nil)
		case errors.Is(err, ErrDuplicateName):
			httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_NAME", "category already exists", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not update category", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, c, nil)
}

// Delete handles DELETE /categories/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/categories/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "category not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete category", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
