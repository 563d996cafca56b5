package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// BlogService handles the studio journal
type BlogService struct {
	blogRepo content.BlogRepository
	logger   *zap.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo content.BlogRepository, logger *zap.Logger) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// ListPublished returns published posts for the storefront, newest first
func (s *BlogService) ListPublished(ctx context.Context, filter BlogListFilter) (*shared.Paginated[BlogPostResponse], error) {
	domainFilter := toDomainFilter(filter.Page, filter.PageSize)
	domainFilter.OrderBy = "published_at"
	domainFilter.OrderDir = "desc"

	posts, err := s.blogRepo.FindPublished(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.blogRepo.Count(ctx, true)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(toBlogResponses(posts), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListAll returns every post including drafts. Admin only.
func (s *BlogService) ListAll(ctx context.Context, caller authctx.Caller, filter BlogListFilter) (*shared.Paginated[BlogPostResponse], error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	domainFilter := toDomainFilter(filter.Page, filter.PageSize)
	posts, err := s.blogRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.blogRepo.Count(ctx, false)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(toBlogResponses(posts), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// GetBySlug returns a single post by its storefront slug. Drafts are only
// visible to admins.
func (s *BlogService) GetBySlug(ctx context.Context, caller authctx.Caller, slug string) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published && !caller.IsAdmin() {
		return nil, shared.ErrNotFound
	}
	resp := ToBlogPostResponse(post)
	return &resp, nil
}

// Create writes a new journal entry. Admin only.
func (s *BlogService) Create(ctx context.Context, caller authctx.Caller, req CreateBlogPostRequest) (*BlogPostResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	post, err := content.NewBlogPost(caller.UserID, req.Title, req.Body, req.Excerpt)
	if err != nil {
		return nil, err
	}
	if req.Publish {
		post.Publish()
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("blog post created",
		zap.String("slug", post.Slug),
		zap.Bool("published", post.Published))

	resp := ToBlogPostResponse(post)
	return &resp, nil
}

// Update edits an existing post. Admin only.
func (s *BlogService) Update(ctx context.Context, caller authctx.Caller, postID uuid.UUID, req UpdateBlogPostRequest) (*BlogPostResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Update(req.Title, req.Body, req.Excerpt); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := ToBlogPostResponse(post)
	return &resp, nil
}

// SetPublished publishes or unpublishes a post. Admin only.
func (s *BlogService) SetPublished(ctx context.Context, caller authctx.Caller, postID uuid.UUID, published bool) (*BlogPostResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if published {
		post.Publish()
	} else {
		post.Unpublish()
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := ToBlogPostResponse(post)
	return &resp, nil
}

// SetImage attaches a cover image. Admin only.
func (s *BlogService) SetImage(ctx context.Context, caller authctx.Caller, postID uuid.UUID, imageKey string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	post.SetImageKey(imageKey)

	return s.blogRepo.Save(ctx, post)
}

// Delete removes a post. Admin only.
func (s *BlogService) Delete(ctx context.Context, caller authctx.Caller, postID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if _, err := s.blogRepo.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, postID)
}

func toBlogResponses(posts []content.BlogPost) []BlogPostResponse {
	items := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, ToBlogPostResponse(&posts[i]))
	}
	return items
}

func toDomainFilter(page, pageSize int) shared.Filter {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	return filter
}
