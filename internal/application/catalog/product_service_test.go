package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, category, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a product with tax and shipping", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("ExistsBySKU", ctx, "TEE-01").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		taxRate := decimal.NewFromFloat(8.5)
		shipping := decimal.NewFromFloat(5)
		inventory := 10

		resp, err := service.Create(ctx, CreateProductRequest{
			SKU:           "tee-01",
			Name:          "Fern Tee",
			Price:         decimal.NewFromInt(20),
			TaxRate:       &taxRate,
			ShippingPrice: &shipping,
			Inventory:     &inventory,
			Categories:    []string{"apparel"},
		})

		require.NoError(t, err)
		assert.Equal(t, "TEE-01", resp.SKU)
		assert.Equal(t, "8.5", resp.TaxRate.String())
		assert.Equal(t, 10, resp.Inventory)
		repo.AssertExpectations(t)
	})

	t.Run("should reject a duplicate SKU", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("ExistsBySKU", ctx, "TEE-01").Return(true, nil)

		_, err := service.Create(ctx, CreateProductRequest{
			SKU:   "TEE-01",
			Name:  "Fern Tee",
			Price: decimal.NewFromInt(20),
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("should filter by category when set", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t)
		repo.On("FindByCategory", ctx, "apparel", mock.AnythingOfType("shared.Filter")).
			Return([]catalog.Product{*product}, nil)
		repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		result, err := service.List(ctx, ProductListFilter{Category: "apparel"})

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, int64(1), result.Total)
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("should list everything without a category", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).
			Return([]catalog.Product{}, nil)
		repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		result, err := service.List(ctx, ProductListFilter{})

		require.NoError(t, err)
		assert.Empty(t, result.Items)
	})
}

func TestProductServiceVariants(t *testing.T) {
	ctx := context.Background()

	t.Run("should add a variant", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t)
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		resp, err := service.AddVariant(ctx, product.ID, AddVariantRequest{
			Size:      "M",
			Color:     "green",
			Price:     decimal.NewFromInt(22),
			Inventory: 3,
		})

		require.NoError(t, err)
		assert.True(t, resp.HasVariants)
		require.Len(t, resp.Variants, 1)
		assert.Equal(t, 3, resp.Variants[0].Inventory)
	})

	t.Run("should fail updating an unknown variant", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t)
		_, err := product.AddVariant("M", "green", valueobject.NewMoneyUSDFromFloat(22), 3)
		require.NoError(t, err)
		repo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err = service.UpdateVariant(ctx, product.ID, "XL", "purple", UpdateVariantRequest{})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("should propagate not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Get(ctx, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("TEE-01", "Fern Tee", valueobject.NewMoneyUSDFromFloat(20))
	require.NoError(t, err)
	product.SetOptions([]string{"green", "black"}, []string{"M", "L"})
	return product
}
