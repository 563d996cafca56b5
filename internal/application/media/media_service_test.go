package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/media"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAssetRepository is a mock implementation of media.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*media.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindByStorageKey(ctx context.Context, key string) (*media.Asset, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Asset), args.Error(1)
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *media.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func adminCaller() authctx.Caller {
	return authctx.Caller{UserID: uuid.New(), Email: "studio@mosslight.example", Role: identity.RoleAdmin}
}

func TestMediaServiceInitiateUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("should save a pending asset and return an upload URL", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorage)
		service := NewMediaService(assetRepo, storage, zap.NewNop())

		assetRepo.On("Save", ctx, mock.MatchedBy(func(a *media.Asset) bool {
			return a.Status == media.StatusPending
		})).Return(nil)
		storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "image/png", 15*time.Minute).
			Return("https://storage.example/put", time.Now().Add(15*time.Minute), nil)

		resp, err := service.InitiateUpload(ctx, adminCaller(), InitiateUploadRequest{
			FileName:    "mug.png",
			ContentType: "image/png",
			FileSize:    2048,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example/put", resp.UploadURL)
	})

	t.Run("should clean up the record when URL generation fails", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorage)
		service := NewMediaService(assetRepo, storage, zap.NewNop())

		assetRepo.On("Save", ctx, mock.Anything).Return(nil)
		assetRepo.On("Delete", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
		storage.On("GenerateUploadURL", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return("", time.Time{}, errors.New("s3 unreachable"))

		_, err := service.InitiateUpload(ctx, adminCaller(), InitiateUploadRequest{
			FileName:    "mug.png",
			ContentType: "image/png",
			FileSize:    2048,
		})

		require.Error(t, err)
		assetRepo.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("uuid.UUID"))
	})

	t.Run("should refuse non-admin callers", func(t *testing.T) {
		service := NewMediaService(new(MockAssetRepository), new(MockObjectStorage), zap.NewNop())

		caller := authctx.Caller{UserID: uuid.New(), Email: "ada@example.com", Role: identity.RoleCustomer}
		_, err := service.InitiateUpload(ctx, caller, InitiateUploadRequest{
			FileName:    "mug.png",
			ContentType: "image/png",
			FileSize:    2048,
		})

		assert.Error(t, err)
	})
}

func TestMediaServiceConfirmUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("should activate the asset when the file is present", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorage)
		service := NewMediaService(assetRepo, storage, zap.NewNop())

		asset, err := media.NewAsset(uuid.New(), "mug.png", "image/png", 2048)
		require.NoError(t, err)

		assetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
		assetRepo.On("Save", ctx, asset).Return(nil)
		storage.On("ObjectExists", ctx, asset.StorageKey).Return(true, nil)

		resp, err := service.ConfirmUpload(ctx, adminCaller(), asset.ID)

		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("should reject confirmation when the file never arrived", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorage)
		service := NewMediaService(assetRepo, storage, zap.NewNop())

		asset, err := media.NewAsset(uuid.New(), "mug.png", "image/png", 2048)
		require.NoError(t, err)

		assetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
		storage.On("ObjectExists", ctx, asset.StorageKey).Return(false, nil)

		_, err = service.ConfirmUpload(ctx, adminCaller(), asset.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
	})
}

func TestMediaServiceGetDownloadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("should hide pending assets", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		service := NewMediaService(assetRepo, new(MockObjectStorage), zap.NewNop())

		asset, err := media.NewAsset(uuid.New(), "mug.png", "image/png", 2048)
		require.NoError(t, err)
		assetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)

		_, err = service.GetDownloadURL(ctx, asset.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should return a presigned GET URL for an active asset", func(t *testing.T) {
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorage)
		service := NewMediaService(assetRepo, storage, zap.NewNop())

		asset, err := media.NewAsset(uuid.New(), "mug.png", "image/png", 2048)
		require.NoError(t, err)
		require.NoError(t, asset.Confirm())

		assetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
		storage.On("GenerateDownloadURL", ctx, asset.StorageKey, time.Hour).
			Return("https://storage.example/get", time.Now().Add(time.Hour), nil)

		resp, err := service.GetDownloadURL(ctx, asset.ID)

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example/get", resp.URL)
	})
}
