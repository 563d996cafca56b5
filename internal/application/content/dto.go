package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
)

// CreateBlogPostRequest represents a new journal draft
type CreateBlogPostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
	Excerpt string `json:"excerpt" binding:"max=500"`
	Publish bool   `json:"publish"`
}

// UpdateBlogPostRequest represents a journal edit
type UpdateBlogPostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
	Excerpt string `json:"excerpt" binding:"max=500"`
}

// BlogListFilter represents query parameters for listing posts
type BlogListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BlogPostResponse represents a journal entry in API responses
type BlogPostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	ImageKey    string     `json:"image_key,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GalleryItemRequest represents a gallery entry submission
type GalleryItemRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	ImageKey    string `json:"image_key" binding:"required,max=500"`
	SortOrder   int    `json:"sort_order"`
}

// GalleryItemResponse represents a gallery entry in API responses
type GalleryItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageKey    string    `json:"image_key"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// PortfolioPieceRequest represents a portfolio entry submission
type PortfolioPieceRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Story     string `json:"story" binding:"max=10000"`
	Materials string `json:"materials" binding:"max=500"`
	Featured  bool   `json:"featured"`
	SortOrder int    `json:"sort_order"`
}

// PortfolioPieceResponse represents a portfolio entry in API responses
type PortfolioPieceResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Story     string    `json:"story,omitempty"`
	Materials string    `json:"materials,omitempty"`
	ImageKey  string    `json:"image_key,omitempty"`
	Featured  bool      `json:"featured"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialLinkRequest represents a social content reference submission
type SocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required,max=50"`
	URL       string `json:"url" binding:"required,url,max=500"`
	Caption   string `json:"caption" binding:"max=500"`
	ImageKey  string `json:"image_key" binding:"max=500"`
	SortOrder int    `json:"sort_order"`
}

// SocialLinkResponse represents a social content reference in API responses
type SocialLinkResponse struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	ImageKey  string    `json:"image_key,omitempty"`
	SortOrder int       `json:"sort_order"`
}

// CreateDiscussionPostRequest represents a new thread or reply
type CreateDiscussionPostRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Body     string     `json:"body" binding:"required,max=10000"`
}

// DiscussionPostResponse represents a board post in API responses
type DiscussionPostResponse struct {
	ID         uuid.UUID                `json:"id"`
	ParentID   *uuid.UUID               `json:"parent_id,omitempty"`
	AuthorName string                   `json:"author_name"`
	Body       string                   `json:"body"`
	CreatedAt  time.Time                `json:"created_at"`
	Replies    []DiscussionPostResponse `json:"replies,omitempty"`
}

// ToBlogPostResponse converts a domain BlogPost to BlogPostResponse
func ToBlogPostResponse(p *content.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Excerpt:     p.Excerpt,
		ImageKey:    p.ImageKey,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToGalleryItemResponse converts a domain GalleryItem to GalleryItemResponse
func ToGalleryItemResponse(g *content.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageKey:    g.ImageKey,
		SortOrder:   g.SortOrder,
		CreatedAt:   g.CreatedAt,
	}
}

// ToPortfolioPieceResponse converts a domain PortfolioPiece to PortfolioPieceResponse
func ToPortfolioPieceResponse(p *content.PortfolioPiece) PortfolioPieceResponse {
	return PortfolioPieceResponse{
		ID:        p.ID,
		Title:     p.Title,
		Story:     p.Story,
		Materials: p.Materials,
		ImageKey:  p.ImageKey,
		Featured:  p.Featured,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

// ToSocialLinkResponse converts a domain SocialLink to SocialLinkResponse
func ToSocialLinkResponse(s *content.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:        s.ID,
		Platform:  s.Platform,
		URL:       s.URL,
		Caption:   s.Caption,
		ImageKey:  s.ImageKey,
		SortOrder: s.SortOrder,
	}
}

// ToDiscussionPostResponse converts a domain DiscussionPost to DiscussionPostResponse
func ToDiscussionPostResponse(p *content.DiscussionPost) DiscussionPostResponse {
	return DiscussionPostResponse{
		ID:         p.ID,
		ParentID:   p.ParentID,
		AuthorName: p.AuthorName,
		Body:       p.Body,
		CreatedAt:  p.CreatedAt,
	}
}
