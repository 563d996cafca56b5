package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// DiscussionPost is a community board entry. Threading is one level deep:
// a post either starts a thread (ParentID nil) or replies to one.
type DiscussionPost struct {
	shared.BaseAggregateRoot
	ParentID   *uuid.UUID `gorm:"type:uuid;index"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;not null"`
	AuthorName string     `gorm:"type:varchar(100);not null"`
	Body       string     `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (DiscussionPost) TableName() string {
	return "discussion_posts"
}

// NewDiscussionPost starts a new thread
func NewDiscussionPost(authorID uuid.UUID, authorName, body string) (*DiscussionPost, error) {
	return newPost(nil, authorID, authorName, body)
}

// NewDiscussionReply replies to an existing thread. Replying to a reply is
// not allowed; callers pass the thread root's ID.
func NewDiscussionReply(parentID, authorID uuid.UUID, authorName, body string) (*DiscussionPost, error) {
	if parentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent post ID cannot be empty")
	}
	return newPost(&parentID, authorID, authorName, body)
}

func newPost(parentID *uuid.UUID, authorID uuid.UUID, authorName, body string) (*DiscussionPost, error) {
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author ID cannot be empty")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Post body cannot be empty")
	}

	return &DiscussionPost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ParentID:          parentID,
		AuthorID:          authorID,
		AuthorName:        strings.TrimSpace(authorName),
		Body:              body,
	}, nil
}

// IsReply reports whether the post belongs to a thread
func (p *DiscussionPost) IsReply() bool {
	return p.ParentID != nil
}

// SocialLink is an external social content reference shown on the
// storefront's social page
type SocialLink struct {
	shared.BaseAggregateRoot
	Platform  string `gorm:"type:varchar(50);not null"`
	URL       string `gorm:"type:varchar(500);not null"`
	Caption   string `gorm:"type:varchar(500)"`
	ImageKey  string `gorm:"type:varchar(500)"`
	SortOrder int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (SocialLink) TableName() string {
	return "social_links"
}

// NewSocialLink creates a social content reference
func NewSocialLink(platform, url, caption string) (*SocialLink, error) {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform cannot be empty")
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, shared.NewDomainError("INVALID_URL", "URL cannot be empty")
	}

	return &SocialLink{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Platform:          platform,
		URL:               url,
		Caption:           strings.TrimSpace(caption),
	}, nil
}

// Update replaces the editable fields
func (s *SocialLink) Update(platform, url, caption string, sortOrder int) error {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return shared.NewDomainError("INVALID_PLATFORM", "Platform cannot be empty")
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return shared.NewDomainError("INVALID_URL", "URL cannot be empty")
	}

	s.Platform = platform
	s.URL = url
	s.Caption = strings.TrimSpace(caption)
	s.SortOrder = sortOrder
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
