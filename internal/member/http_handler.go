package member

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
	Name         string `json:"name" validate:"required,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	RegisteredAt string `json:"registered_at" validate:"required,dateformat"`
}

// List handles GET /members.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list members", nil)
		return
	}
	if members == nil {
		members = []Member{}
	}
	httpx.JSONSuccess(r, w, members, nil)
}

// Create handles POST /members.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid member", details)
		return
	}

	m := Member{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address, RegisteredAt: req.RegisteredAt}
	if err := h.repo.Create(r.Context(), &m); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_EMAIL", "email already registered", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not create member", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, m)
}

// Update handles PUT /members/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/members/")
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
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid member", details)
		return
	}

	m := Member{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address, RegisteredAt: req.RegisteredAt}
	if err := h.repo.Update(r.Context(), &m); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "member not found", nil)
		case errors.Is(err, ErrDuplicateEmail):
			httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_EMAIL", "email already registered", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not update member", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, m, nil)
}

// Delete handles DELETE /members/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/members/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "member not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete member", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
