package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockUnitOfWork creates a ShopUnitOfWork with a mocked SQL connection
func newMockUnitOfWork(t *testing.T) (*ShopUnitOfWork, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewShopUnitOfWork(gormDB), mock, mockDB
}

func TestShopUnitOfWork_Execute(t *testing.T) {
	t.Run("commits when the callback succeeds", func(t *testing.T) {
		uow, mock, mockDB := newMockUnitOfWork(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := uow.Execute(context.Background(), func(products catalog.ProductRepository, orders shop.OrderRepository, carts shop.CartRepository) error {
			called = true
			assert.NotNil(t, products)
			assert.NotNil(t, orders)
			assert.NotNil(t, carts)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the callback fails", func(t *testing.T) {
		uow, mock, mockDB := newMockUnitOfWork(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		failure := shared.NewDomainError("INTERNAL_ERROR", "order save failed")
		err := uow.Execute(context.Background(), func(products catalog.ProductRepository, orders shop.OrderRepository, carts shop.CartRepository) error {
			return failure
		})

		assert.ErrorIs(t, err, failure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
