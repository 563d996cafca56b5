package media

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	uploader := uuid.New()

	t.Run("should create a pending asset with a derived storage key", func(t *testing.T) {
		asset, err := NewAsset(uploader, "mug-glaze.JPG", "image/jpeg", 1024)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, asset.Status)
		assert.True(t, strings.HasPrefix(asset.StorageKey, "media/"))
		assert.True(t, strings.HasSuffix(asset.StorageKey, ".jpg"))
		assert.False(t, asset.IsActive())
	})

	t.Run("should reject a disallowed content type", func(t *testing.T) {
		_, err := NewAsset(uploader, "sneaky.svg", "image/svg+xml", 1024)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "DISALLOWED_CONTENT_TYPE", domainErr.Code)
	})

	t.Run("should reject an oversized file", func(t *testing.T) {
		_, err := NewAsset(uploader, "huge.png", "image/png", MaxFileSize+1)
		assert.Error(t, err)
	})

	t.Run("should reject an empty file name", func(t *testing.T) {
		_, err := NewAsset(uploader, "  ", "image/png", 1024)
		assert.Error(t, err)
	})
}

func TestAssetConfirm(t *testing.T) {
	t.Run("should activate a pending asset once", func(t *testing.T) {
		asset, err := NewAsset(uuid.New(), "bowl.png", "image/png", 2048)
		require.NoError(t, err)

		require.NoError(t, asset.Confirm())
		assert.True(t, asset.IsActive())

		err = asset.Confirm()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}
