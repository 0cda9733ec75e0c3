package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/storefront-server/internal/model"
	"github.com/shopforge/storefront-server/internal/testutil"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, changes model.CategoryChanges) (model.Category, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func categoryRouter(svc CategoryService) http.Handler {
	h := NewCategory(svc, testutil.MakeNoopLogger())

	r := chi.NewRouter()
	r.Post("/categories", h.Create)
	r.Get("/categories", h.List)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("success with parent", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Create", mock.Anything, model.CreateCategoryParams{
			Name:             "Drills",
			ParentCategoryID: int64Ptr(1),
		}).Return(model.Category{ID: 2, Name: "Drills", ParentCategoryID: int64Ptr(1)}, nil)

		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(
			`{"name":"Drills","parent_category_id":1}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp categoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.CategoryID)
		require.NotNil(t, resp.ParentCategoryID)
		assert.Equal(t, int64(1), *resp.ParentCategoryID)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := &MockCategoryService{}

		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "malformed_request", errorKind(t, rec))
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("dangling parent", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Create", mock.Anything, mock.Anything).Return(model.Category{}, model.ErrUnknownCategory)

		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(
			`{"name":"Drills","parent_category_id":999}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unknown_category", errorKind(t, rec))
	})
}

func TestCategoryHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("List", mock.Anything).Return([]model.Category{
			{ID: 1, Name: "Tools"},
			{ID: 2, Name: "Drills", ParentCategoryID: int64Ptr(1)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []categoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Nil(t, resp[0].ParentCategoryID)
	})

	t.Run("empty result encodes as empty array", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("List", mock.Anything).Return([]model.Category{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestCategoryHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Update", mock.Anything, int64(2), model.CategoryChanges{
			Name: strPtr("Power drills"),
		}).Return(model.Category{ID: 2, Name: "Power drills"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/categories/2", strings.NewReader(
			`{"name":"Power drills"}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp categoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Power drills", resp.Name)
	})

	t.Run("self parent", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Update", mock.Anything, int64(2), mock.Anything).Return(model.Category{}, model.ErrSelfParent)

		req := httptest.NewRequest(http.MethodPut, "/categories/2", strings.NewReader(
			`{"parent_category_id":2}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "self_parent", errorKind(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Update", mock.Anything, int64(42), mock.Anything).Return(model.Category{}, model.ErrNotFound)

		req := httptest.NewRequest(http.MethodPut, "/categories/42", strings.NewReader(`{"name":"Tools"}`))
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorKind(t, rec))
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Delete", mock.Anything, int64(2)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/categories/2", nil)
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Category deleted successfully", resp.Message)
	})

	t.Run("still referenced by products", func(t *testing.T) {
		svc := &MockCategoryService{}
		svc.On("Delete", mock.Anything, int64(2)).Return(model.ErrCategoryInUse)

		req := httptest.NewRequest(http.MethodDelete, "/categories/2", nil)
		rec := httptest.NewRecorder()
		categoryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "category_in_use", errorKind(t, rec))
	})
}
