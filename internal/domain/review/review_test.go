package review

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("should create a review and publish an event", func(t *testing.T) {
		productID := uuid.New()
		customerID := uuid.New()

		review, err := NewReview(productID, customerID, "Ada", 4, "  Lovely glaze.  ")

		require.NoError(t, err)
		assert.Equal(t, productID, review.ProductID)
		assert.Equal(t, 4, review.Rating)
		assert.Equal(t, "Lovely glaze.", review.Comment)

		events := review.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReviewSubmitted, events[0].EventType())
	})

	t.Run("should reject ratings outside 1..5", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := NewReview(uuid.New(), uuid.New(), "Ada", rating, "")

			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "INVALID_RATING", domainErr.Code)
		}
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		for _, rating := range []int{MinRating, MaxRating} {
			_, err := NewReview(uuid.New(), uuid.New(), "Ada", rating, "")
			assert.NoError(t, err)
		}
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := NewReview(uuid.Nil, uuid.New(), "Ada", 3, "")
		assert.Error(t, err)

		_, err = NewReview(uuid.New(), uuid.Nil, "Ada", 3, "")
		assert.Error(t, err)
	})
}

func TestReviewUpdate(t *testing.T) {
	t.Run("should replace rating and comment", func(t *testing.T) {
		review, err := NewReview(uuid.New(), uuid.New(), "Ada", 2, "Chipped on arrival")
		require.NoError(t, err)

		require.NoError(t, review.Update(5, "Replacement arrived, flawless"))

		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "Replacement arrived, flawless", review.Comment)
	})

	t.Run("should keep the old rating on invalid input", func(t *testing.T) {
		review, err := NewReview(uuid.New(), uuid.New(), "Ada", 3, "")
		require.NoError(t, err)

		assert.Error(t, review.Update(9, ""))
		assert.Equal(t, 3, review.Rating)
	})
}
