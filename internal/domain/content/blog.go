package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// BlogPost is a studio journal entry shown on the storefront
type BlogPost struct {
	shared.BaseAggregateRoot
	Title       string     `gorm:"type:varchar(200);not null"`
	Slug        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Body        string     `gorm:"type:text;not null"`
	Excerpt     string     `gorm:"type:varchar(500)"`
	ImageKey    string     `gorm:"type:varchar(500)"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null"`
	Published   bool       `gorm:"not null;default:false"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}

// NewBlogPost creates an unpublished draft
func NewBlogPost(authorID uuid.UUID, title, body, excerpt string) (*BlogPost, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Body cannot be empty")
	}
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author ID cannot be empty")
	}

	return &BlogPost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Slug:              Slugify(title),
		Body:              body,
		Excerpt:           strings.TrimSpace(excerpt),
		AuthorID:          authorID,
	}, nil
}

// Update replaces the editable fields. The slug follows the title so
// storefront links stay readable; old links resolve by ID.
func (p *BlogPost) Update(title, body, excerpt string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return shared.NewDomainError("INVALID_BODY", "Body cannot be empty")
	}

	p.Title = title
	p.Slug = Slugify(title)
	p.Body = body
	p.Excerpt = strings.TrimSpace(excerpt)
	p.touch()
	return nil
}

// Publish makes the post visible on the storefront
func (p *BlogPost) Publish() {
	if p.Published {
		return
	}
	now := time.Now()
	p.Published = true
	p.PublishedAt = &now
	p.touch()
}

// Unpublish hides the post again, keeping the original publish date
func (p *BlogPost) Unpublish() {
	if !p.Published {
		return
	}
	p.Published = false
	p.touch()
}

// SetImageKey attaches a cover image stored in object storage
func (p *BlogPost) SetImageKey(key string) {
	p.ImageKey = key
	p.touch()
}

func (p *BlogPost) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Slugify turns a title into a URL-safe lowercase slug
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
