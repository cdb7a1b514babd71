package category

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

func (m *mockRepo) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, c *Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, c *Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_List(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything).Return([]Category{
		{ID: 1, Name: "Fiction", Description: "Narrative works drawn from the imagination"},
	}, nil)

	handler := NewHandler(repo)
	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool       `json:"success"`
		Data    []Category `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	repo.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mockRepo)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"Mystery","description":"Stories of suspense and investigation"}`,
			setupMock: func(m *mockRepo) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "conflict - duplicate name",
			body: `{"name":"Mystery","description":"dup"}`,
			setupMock: func(m *mockRepo) {
				m.On("Create", mock.Anything, mock.Anything).Return(ErrDuplicateName)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "bad request - missing description",
			body:           `{"name":"Mystery"}`,
			setupMock:      func(m *mockRepo) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid json",
			body:           `{`,
			setupMock:      func(m *mockRepo) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			tt.setupMock(repo)
			handler := NewHandler(repo)

			r := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			repo.AssertExpectations(t)
		})
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Update", mock.Anything, mock.Anything).Return(ErrNotFound)

	handler := NewHandler(repo)
	r := httptest.NewRequest(http.MethodPut, "/categories/42", bytes.NewBufferString(`{"name":"X","description":"Y"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Update(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	handler := NewHandler(repo)
	w := httptest.NewRecorder()
	handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/categories/7", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}

func TestHandler_Delete_MalformedID(t *testing.T) {
	handler := NewHandler(&mockRepo{})
	w := httptest.NewRecorder()
	handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/categories/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
