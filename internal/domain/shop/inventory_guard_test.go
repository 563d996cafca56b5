package shop

import (
	"errors"
	"testing"

	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckQuantity(t *testing.T) {
	t.Run("should reject quantities above available stock", func(t *testing.T) {
		err := CheckQuantity(5, 3)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
	})

	t.Run("should allow quantity equal to available stock", func(t *testing.T) {
		assert.NoError(t, CheckQuantity(3, 3))
	})

	t.Run("should report out of stock when nothing is available", func(t *testing.T) {
		err := CheckQuantity(1, 0)
		assert.True(t, errors.Is(err, shared.ErrOutOfStock))
	})

	t.Run("should reject non-positive quantities before the stock check", func(t *testing.T) {
		err := CheckQuantity(0, 0)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})
}

func TestAvailableStock(t *testing.T) {
	t.Run("should use product inventory for non-variant products", func(t *testing.T) {
		product, err := catalog.NewProduct("MUG-01", "Moss Mug", money("12.00"))
		require.NoError(t, err)
		require.NoError(t, product.SetInventory(7))

		available, err := AvailableStock(product, "", "")

		require.NoError(t, err)
		assert.Equal(t, 7, available)
	})

	t.Run("should require a complete selection for variant products", func(t *testing.T) {
		product := variantProduct(t)

		_, err := AvailableStock(product, "M", "")
		assert.True(t, errors.Is(err, shared.ErrVariantRequired))

		_, err = AvailableStock(product, "", "green")
		assert.True(t, errors.Is(err, shared.ErrVariantRequired))

		_, err = AvailableStock(product, "", "")
		assert.True(t, errors.Is(err, shared.ErrVariantRequired))
	})

	t.Run("should fail with variant unavailable for an unknown combination", func(t *testing.T) {
		product := variantProduct(t)

		_, err := AvailableStock(product, "XL", "purple")

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VARIANT_UNAVAILABLE", domainErr.Code)
	})

	t.Run("should use variant inventory for a resolved combination", func(t *testing.T) {
		product := variantProduct(t)

		available, err := AvailableStock(product, "M", "green")

		require.NoError(t, err)
		assert.Equal(t, 4, available)
	})
}

func TestGuardCartMutation(t *testing.T) {
	t.Run("should pass for a valid quantity against variant stock", func(t *testing.T) {
		product := variantProduct(t)

		assert.NoError(t, GuardCartMutation(product, "M", "green", 4))
	})

	t.Run("should fail when requested exceeds variant stock", func(t *testing.T) {
		product := variantProduct(t)

		err := GuardCartMutation(product, "M", "green", 5)

		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
	})

	t.Run("should report out of stock for a depleted variant", func(t *testing.T) {
		product := variantProduct(t)
		variant := product.ResolveVariant("L", "black")
		require.NotNil(t, variant)
		require.NoError(t, variant.SetInventory(0))

		err := GuardCartMutation(product, "L", "black", 1)

		assert.True(t, errors.Is(err, shared.ErrOutOfStock))
	})

	t.Run("should surface variant required before any stock check", func(t *testing.T) {
		product := variantProduct(t)

		err := GuardCartMutation(product, "", "", 1)

		assert.True(t, errors.Is(err, shared.ErrVariantRequired))
	})
}

func variantProduct(t *testing.T) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct("TEE-01", "Fern Tee", money("20.00"))
	require.NoError(t, err)
	product.SetOptions([]string{"green", "black"}, []string{"M", "L"})

	_, err = product.AddVariant("M", "green", money("20.00"), 4)
	require.NoError(t, err)
	_, err = product.AddVariant("L", "black", money("22.00"), 2)
	require.NoError(t, err)

	return product
}
