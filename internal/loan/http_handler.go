package loan

import (
	"encoding/json"
	"errors"
	"net/http"

	"biblioapi/internal/httpx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type openRequest struct {
	BookID   int64  `json:"book_id" validate:"required,gte=1"`
	MemberID int64  `json:"member_id" validate:"required,gte=1"`
	LoanDate string `json:"loan_date" validate:"required,dateformat"`
	DueDate  string `json:"due_date" validate:"required,dateformat"`
}

// List handles GET /loans.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list loans", nil)
		return
	}
	if loans == nil {
		loans = []Loan{}
	}
	httpx.JSONSuccess(r, w, loans, nil)
}

// Open handles POST /loans.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid loan", details)
		return
	}

	l, err := h.svc.Open(r.Context(), OpenLoanInput{
		BookID:   req.BookID,
		MemberID: req.MemberID,
		LoanDate: req.LoanDate,
		DueDate:  req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookUnavailable):
			httpx.JSONError(r, w, http.StatusConflict, "BOOK_UNAVAILABLE", "book not available", nil)
		case errors.Is(err, ErrMemberNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found", nil)
		case errors.Is(err, ErrInvalidPeriod):
			httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_PERIOD", "due date before loan date", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not open loan", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(r, w, l)
}

// Close handles PUT /loans/{id}/return.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromSubPath(r.URL.Path, "/loans/", "/return")
	if !ok {
		http.NotFound(w, r)
		return
	}

	l, err := h.svc.Close(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "loan not found", nil)
		case errors.Is(err, ErrAlreadyReturned):
			httpx.JSONError(r, w, http.StatusConflict, "ALREADY_RETURNED", "loan already returned", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not return loan", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, l, nil)
}

// Cancel handles DELETE /loans/{id}.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IDFromPath(r.URL.Path, "/loans/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "loan not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete loan", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
