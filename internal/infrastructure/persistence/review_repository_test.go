package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockReviewRepository creates a GormReviewRepository with a mocked SQL connection
func newMockReviewRepository(t *testing.T) (*GormReviewRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormReviewRepository(gormDB), mock, mockDB
}

func TestGormReviewRepository_SummaryForProduct(t *testing.T) {
	t.Run("computes count and average in the database", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"product_id", "review_count", "average_rating"}).
			AddRow(productID, 4, 4.25)

		mock.ExpectQuery(`SELECT product_id, COUNT\(\*\) AS review_count, COALESCE\(AVG\(rating\), 0\) AS average_rating FROM "reviews" WHERE product_id = \$1 GROUP BY .*`).
			WithArgs(productID).
			WillReturnRows(rows)

		summary, err := repo.SummaryForProduct(context.Background(), productID)

		assert.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, productID, summary.ProductID)
		assert.Equal(t, int64(4), summary.ReviewCount)
		assert.Equal(t, 4.25, summary.AverageRating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("yields a zero summary for an unreviewed product", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT product_id, COUNT\(\*\) AS review_count, COALESCE\(AVG\(rating\), 0\) AS average_rating FROM "reviews" WHERE product_id = \$1 GROUP BY .*`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "review_count", "average_rating"}))

		summary, err := repo.SummaryForProduct(context.Background(), productID)

		assert.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, productID, summary.ProductID)
		assert.Equal(t, int64(0), summary.ReviewCount)
		assert.Equal(t, 0.0, summary.AverageRating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormReviewRepository_SummariesForProducts(t *testing.T) {
	t.Run("returns empty map without querying for no IDs", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		summaries, err := repo.SummariesForProducts(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, summaries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("omits products without reviews", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		reviewedID := uuid.New()
		unreviewedID := uuid.New()

		rows := sqlmock.NewRows([]string{"product_id", "review_count", "average_rating"}).
			AddRow(reviewedID, 2, 3.5)

		mock.ExpectQuery(`SELECT product_id, COUNT\(\*\) AS review_count, COALESCE\(AVG\(rating\), 0\) AS average_rating FROM "reviews" WHERE product_id IN .* GROUP BY .*`).
			WithArgs(reviewedID, unreviewedID).
			WillReturnRows(rows)

		summaries, err := repo.SummariesForProducts(context.Background(), []uuid.UUID{reviewedID, unreviewedID})

		assert.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, int64(2), summaries[reviewedID].ReviewCount)
		assert.Equal(t, 3.5, summaries[reviewedID].AverageRating)
		_, ok := summaries[unreviewedID]
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
