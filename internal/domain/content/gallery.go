package content

import (
	"strings"
	"time"

	"github.com/mosslight/storefront/internal/domain/shared"
)

// GalleryItem is a single image in the studio gallery
type GalleryItem struct {
	shared.BaseAggregateRoot
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	ImageKey    string `gorm:"type:varchar(500);not null"`
	SortOrder   int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (GalleryItem) TableName() string {
	return "gallery_items"
}

// NewGalleryItem creates a gallery entry for an uploaded image
func NewGalleryItem(title, description, imageKey string, sortOrder int) (*GalleryItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if imageKey == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image key cannot be empty")
	}

	return &GalleryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       strings.TrimSpace(description),
		ImageKey:          imageKey,
		SortOrder:         sortOrder,
	}, nil
}

// Update replaces title, description, and position
func (g *GalleryItem) Update(title, description string, sortOrder int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}

	g.Title = title
	g.Description = strings.TrimSpace(description)
	g.SortOrder = sortOrder
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// PortfolioPiece is a featured work with a longer story than a gallery item
type PortfolioPiece struct {
	shared.BaseAggregateRoot
	Title     string `gorm:"type:varchar(200);not null"`
	Story     string `gorm:"type:text"`
	Materials string `gorm:"type:varchar(500)"`
	ImageKey  string `gorm:"type:varchar(500)"`
	Featured  bool   `gorm:"not null;default:false"`
	SortOrder int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (PortfolioPiece) TableName() string {
	return "portfolio_pieces"
}

// NewPortfolioPiece creates a portfolio entry
func NewPortfolioPiece(title, story, materials string) (*PortfolioPiece, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}

	return &PortfolioPiece{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Story:             strings.TrimSpace(story),
		Materials:         strings.TrimSpace(materials),
	}, nil
}

// Update replaces the editable fields
func (p *PortfolioPiece) Update(title, story, materials string, featured bool, sortOrder int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}

	p.Title = title
	p.Story = strings.TrimSpace(story)
	p.Materials = strings.TrimSpace(materials)
	p.Featured = featured
	p.SortOrder = sortOrder
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetImageKey attaches the piece's image
func (p *PortfolioPiece) SetImageKey(key string) {
	p.ImageKey = key
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
