package media

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// AssetStatus tracks the presigned-upload lifecycle
type AssetStatus string

const (
	// StatusPending means an upload URL was issued but the file is unverified
	StatusPending AssetStatus = "pending"
	// StatusActive means the file was confirmed present in object storage
	StatusActive AssetStatus = "active"
)

// Image uploads only; SVG is excluded because it can carry scripts.
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MaxFileSize is the upload size cap in bytes (10 MiB)
const MaxFileSize = 10 << 20

// Asset is an uploaded storefront image tracked through the presigned
// upload flow. The storage key is derived here so callers never choose
// object paths.
type Asset struct {
	shared.BaseAggregateRoot
	FileName    string      `gorm:"type:varchar(255);not null"`
	ContentType string      `gorm:"type:varchar(100);not null"`
	FileSize    int64       `gorm:"not null"`
	StorageKey  string      `gorm:"type:varchar(500);not null;uniqueIndex"`
	Status      AssetStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	UploadedBy  uuid.UUID   `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Asset) TableName() string {
	return "media_assets"
}

// NewAsset creates a pending asset for a presigned upload
func NewAsset(uploadedBy uuid.UUID, fileName, contentType string, fileSize int64) (*Asset, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if !allowedContentTypes[contentType] {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			"Only JPEG, PNG, GIF, and WebP images can be uploaded")
	}
	if fileSize <= 0 || fileSize > MaxFileSize {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size must be between 1 byte and 10 MiB")
	}
	if uploadedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UPLOADER", "Uploader ID cannot be empty")
	}

	base := shared.NewBaseAggregateRoot()
	return &Asset{
		BaseAggregateRoot: base,
		FileName:          fileName,
		ContentType:       contentType,
		FileSize:          fileSize,
		StorageKey:        buildStorageKey(base.ID, fileName),
		Status:            StatusPending,
		UploadedBy:        uploadedBy,
	}, nil
}

// Confirm activates the asset once the file is verified in storage
func (a *Asset) Confirm() error {
	if a.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Asset is already confirmed")
	}
	a.Status = StatusActive
	a.IncrementVersion()
	return nil
}

// IsActive reports whether the asset's file is confirmed present
func (a *Asset) IsActive() bool {
	return a.Status == StatusActive
}

func buildStorageKey(id uuid.UUID, fileName string) string {
	ext := ""
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = strings.ToLower(fileName[i:])
	}
	return "media/" + id.String() + ext
}
