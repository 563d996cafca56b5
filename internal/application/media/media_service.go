package media

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/media"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// ObjectStorage defines the object storage operations the service needs.
// Implemented by the S3 client in infrastructure/storage.
type ObjectStorage interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// ServiceConfig holds URL expiry settings for the media service
type ServiceConfig struct {
	UploadURLExpiry   time.Duration
	DownloadURLExpiry time.Duration
}

// DefaultServiceConfig returns the default expiry settings
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
	}
}

// MediaService handles image uploads through the presigned URL flow
type MediaService struct {
	assetRepo media.AssetRepository
	storage   ObjectStorage
	config    ServiceConfig
	logger    *zap.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(assetRepo media.AssetRepository, storage ObjectStorage, logger *zap.Logger) *MediaService {
	return &MediaService{
		assetRepo: assetRepo,
		storage:   storage,
		config:    DefaultServiceConfig(),
		logger:    logger,
	}
}

// SetConfig sets the service configuration
func (s *MediaService) SetConfig(config ServiceConfig) {
	s.config = config
}

// InitiateUploadRequest represents an upload request
type InitiateUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
}

// InitiateUploadResponse carries the presigned PUT URL
type InitiateUploadResponse struct {
	AssetID   uuid.UUID `json:"asset_id"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AssetResponse represents a confirmed asset in API responses
type AssetResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	StorageKey  string    `json:"storage_key"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DownloadURLResponse carries a presigned GET URL
type DownloadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InitiateUpload records a pending asset and returns a presigned upload
// URL. Admin only; every storefront image is studio-managed.
func (s *MediaService) InitiateUpload(ctx context.Context, caller authctx.Caller, req InitiateUploadRequest) (*InitiateUploadResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	asset, err := media.NewAsset(caller.UserID, req.FileName, req.ContentType, req.FileSize)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, asset.StorageKey, asset.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		// Drop the orphaned record so the key can be reused
		if derr := s.assetRepo.Delete(ctx, asset.ID); derr != nil {
			s.logger.Warn("failed to clean up pending asset",
				zap.String("asset_id", asset.ID.String()),
				zap.Error(derr))
		}
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	return &InitiateUploadResponse{
		AssetID:   asset.ID,
		UploadURL: uploadURL,
		ExpiresAt: expiresAt,
	}, nil
}

// ConfirmUpload verifies the file landed in storage and activates the asset
func (s *MediaService) ConfirmUpload(ctx context.Context, caller authctx.Caller, assetID uuid.UUID) (*AssetResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, asset.StorageKey)
	if err != nil {
		return nil, shared.NewDomainError("STORAGE_CHECK_FAILED", "Failed to verify upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND",
			"File not found in storage. Upload the file before confirming.")
	}

	if err := asset.Confirm(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	resp := toAssetResponse(asset)
	return &resp, nil
}

// GetDownloadURL returns a presigned GET URL for a confirmed asset
func (s *MediaService) GetDownloadURL(ctx context.Context, assetID uuid.UUID) (*DownloadURLResponse, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if !asset.IsActive() {
		return nil, shared.ErrNotFound
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, asset.StorageKey, s.config.DownloadURLExpiry)
	if err != nil {
		return nil, shared.NewDomainError("DOWNLOAD_URL_FAILED", "Failed to generate download URL")
	}

	return &DownloadURLResponse{URL: url, ExpiresAt: expiresAt}, nil
}

// Delete removes the asset record and its stored object. Admin only.
func (s *MediaService) Delete(ctx context.Context, caller authctx.Caller, assetID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, asset.StorageKey); err != nil {
		// The record stays so the orphaned object remains discoverable
		return shared.NewDomainError("STORAGE_DELETE_FAILED", "Failed to delete stored file")
	}

	return s.assetRepo.Delete(ctx, assetID)
}

func toAssetResponse(a *media.Asset) AssetResponse {
	return AssetResponse{
		ID:          a.ID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		FileSize:    a.FileSize,
		StorageKey:  a.StorageKey,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
