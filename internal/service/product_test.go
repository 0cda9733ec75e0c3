package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/storefront-server/internal/model"
	"github.com/shopforge/storefront-server/internal/testutil"
)

// MockProductStore mocks the ProductStore interface
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) GetByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) List(ctx context.Context, skip, limit int, categoryID *int64) ([]model.Product, error) {
	args := m.Called(ctx, skip, limit, categoryID)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, id int64, changes model.ProductChanges) (model.Product, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProduct_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown category fails before any write", func(t *testing.T) {
		products := &MockProductStore{}
		categories := &MockCategoryStore{}
		svc := NewProduct(products, categories, testutil.MakeNoopLogger())

		categories.On("GetByID", ctx, int64(999)).Return(model.Category{}, model.ErrNotFound)

		_, err := svc.Create(ctx, model.CreateProductParams{Name: "Widget", Price: 9.99, CategoryID: 999})
		assert.ErrorIs(t, err, model.ErrUnknownCategory)

		products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("successful creation", func(t *testing.T) {
		products := &MockProductStore{}
		categories := &MockCategoryStore{}
		svc := NewProduct(products, categories, testutil.MakeNoopLogger())

		categories.On("GetByID", ctx, int64(3)).Return(model.Category{ID: 3, Name: "Tools"}, nil)
		products.On("Create", ctx, mock.MatchedBy(func(p model.Product) bool {
			return p.Name == "Widget" && p.CategoryID == 3 && p.StockQuantity == 10
		})).Return(model.Product{ID: 5, Name: "Widget", CategoryID: 3, StockQuantity: 10}, nil)

		saved, err := svc.Create(ctx, model.CreateProductParams{
			Name:          "Widget",
			Price:         9.99,
			StockQuantity: 10,
			CategoryID:    3,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), saved.ID)
		products.AssertExpectations(t)
		categories.AssertExpectations(t)
	})
}

func TestProduct_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing product", func(t *testing.T) {
		products := &MockProductStore{}
		svc := NewProduct(products, &MockCategoryStore{}, testutil.MakeNoopLogger())

		products.On("GetByID", ctx, int64(8)).Return(model.Product{}, model.ErrNotFound)

		_, err := svc.Update(ctx, 8, model.ProductChanges{Price: floatPtr(1)})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		products := &MockProductStore{}
		svc := NewProduct(products, &MockCategoryStore{}, testutil.MakeNoopLogger())

		products.On("GetByID", ctx, int64(8)).Return(model.Product{ID: 8}, nil)

		_, err := svc.Update(ctx, 8, model.ProductChanges{})
		assert.ErrorIs(t, err, model.ErrEmptyUpdate)

		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("price change leaves other fields alone", func(t *testing.T) {
		products := &MockProductStore{}
		svc := NewProduct(products, &MockCategoryStore{}, testutil.MakeNoopLogger())

		products.On("GetByID", ctx, int64(8)).Return(model.Product{ID: 8, StockQuantity: 10}, nil)
		products.On("Update", ctx, int64(8), mock.MatchedBy(func(c model.ProductChanges) bool {
			return c.Price != nil && *c.Price == 109.99 &&
				c.Name == nil && c.Description == nil && c.StockQuantity == nil && c.ImageURL == nil
		})).Return(model.Product{ID: 8, Price: 109.99, StockQuantity: 10}, nil)

		saved, err := svc.Update(ctx, 8, model.ProductChanges{Price: floatPtr(109.99)})
		require.NoError(t, err)

		assert.Equal(t, 10, saved.StockQuantity)
		products.AssertExpectations(t)
	})
}

func TestProduct_List(t *testing.T) {
	ctx := context.Background()

	t.Run("category filter is passed through", func(t *testing.T) {
		products := &MockProductStore{}
		svc := NewProduct(products, &MockCategoryStore{}, testutil.MakeNoopLogger())

		filter := int64Ptr(3)
		products.On("List", ctx, 0, 10, filter).Return([]model.Product{}, nil)

		result, err := svc.List(ctx, 0, 10, filter)
		require.NoError(t, err)

		assert.Empty(t, result)
		products.AssertExpectations(t)
	})
}
