package book

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context) ([]Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Book), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"title":            "Ficciones",
		"author_id":        2,
		"category_id":      1,
		"isbn":             "978-0802130303",
		"publication_year": 1944,
		"pages":            174,
	}
}

func postBook(t *testing.T, handler *Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Create(w, r)
	return w
}

func TestHandler_Create(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *Book) bool {
		return b.Available // new books default to available
	})).Return(nil)

	w := postBook(t, NewHandler(repo), validBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestHandler_Create_DuplicateISBN(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(ErrDuplicateISBN)

	w := postBook(t, NewHandler(repo), validBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Create_BadReference(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(ErrBadReference)

	w := postBook(t, NewHandler(repo), validBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Create_InvalidISBN(t *testing.T) {
	body := validBody()
	body["isbn"] = "not-an-isbn"

	w := postBook(t, NewHandler(&mockRepo{}), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestHandler_List(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything).Return([]Book{
		{ID: 1, Title: "Ficciones", ISBN: "978-0802130303", Available: true, AuthorName: "Jorge Luis Borges", CategoryName: "Fiction"},
	}, nil)

	handler := NewHandler(repo)
	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []Book `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Jorge Luis Borges", resp.Data[0].AuthorName)
}

func TestHandler_Update_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Update", mock.Anything, mock.Anything).Return(ErrNotFound)

	raw, _ := json.Marshal(validBody())
	r := httptest.NewRequest(http.MethodPut, "/books/42", bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewHandler(repo).Update(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	w := httptest.NewRecorder()
	NewHandler(repo).Delete(w, httptest.NewRequest(http.MethodDelete, "/books/3", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
