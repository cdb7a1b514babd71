package review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"biblioapi/internal/testutil"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context) ([]Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *mockRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, rv *Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, rv *Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_Create(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil)
	h := NewHandler(repo)

	req := testutil.NewRequest(http.MethodPost, "/reviews", map[string]any{
		"book_id":   1,
		"member_id": 2,
		"rating":    5,
		"comment":   "A masterpiece, could not put it down.",
		"date":      "2024-03-05",
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	resp := testutil.RecordHTTPResponse(rec)
	testutil.AssertResponseCode(t, resp.Code, http.StatusCreated)
	testutil.AssertResponseBody(t, resp.Body, "success", true)
	repo.AssertExpectations(t)
}

func TestHandler_Create_RatingOutOfRange(t *testing.T) {
	repo := new(mockRepo)
	h := NewHandler(repo)

	req := testutil.NewRequest(http.MethodPost, "/reviews", map[string]any{
		"book_id":   1,
		"member_id": 2,
		"rating":    6,
		"comment":   "too enthusiastic",
		"date":      "2024-03-05",
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	resp := testutil.RecordHTTPResponse(rec)
	testutil.AssertResponseCode(t, resp.Code, http.StatusBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_Create_UnknownBook(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*review.Review")).Return(ErrBadReference)
	h := NewHandler(repo)

	req := testutil.NewRequest(http.MethodPost, "/reviews", map[string]any{
		"book_id":   999,
		"member_id": 2,
		"rating":    4,
		"comment":   "solid read",
		"date":      "2024-03-05",
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	resp := testutil.RecordHTTPResponse(rec)
	testutil.AssertResponseCode(t, resp.Code, http.StatusBadRequest)
	testutil.AssertResponseBody(t, resp.Body, "success", false)
}

func TestHandler_ListByBook(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListByBook", mock.Anything, int64(4)).Return([]Review{
		{ID: 1, BookID: 4, MemberID: 2, Rating: 5, Comment: "wonderful", Date: "2024-03-05", BookTitle: "One Hundred Years of Solitude", MemberName: "Laura Sanchez"},
	}, nil)
	h := NewHandler(repo)

	req := testutil.NewRequest(http.MethodGet, "/reviews/book/4", nil)
	rec := httptest.NewRecorder()
	h.ListByBook(rec, req)

	resp := testutil.RecordHTTPResponse(rec)
	testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
	testutil.AssertResponseBody(t, resp.Body, "success", true)
	repo.AssertExpectations(t)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Delete", mock.Anything, int64(99)).Return(ErrNotFound)
	h := NewHandler(repo)

	req := testutil.NewRequest(http.MethodDelete, "/reviews/99", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	resp := testutil.RecordHTTPResponse(rec)
	testutil.AssertResponseCode(t, resp.Code, http.StatusNotFound)
}
