package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// DiscussionService handles the community board. Reading is public;
// posting requires a signed-in caller.
type DiscussionService struct {
	discussionRepo content.DiscussionRepository
}

// NewDiscussionService creates a new DiscussionService
func NewDiscussionService(discussionRepo content.DiscussionRepository) *DiscussionService {
	return &DiscussionService{discussionRepo: discussionRepo}
}

// ListThreads returns thread roots with their replies attached
func (s *DiscussionService) ListThreads(ctx context.Context, page, pageSize int) ([]DiscussionPostResponse, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.OrderBy = "created_at"
	filter.OrderDir = "desc"

	threads, err := s.discussionRepo.FindThreads(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]DiscussionPostResponse, 0, len(threads))
	for i := range threads {
		resp := ToDiscussionPostResponse(&threads[i])

		replies, err := s.discussionRepo.FindReplies(ctx, threads[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range replies {
			resp.Replies = append(resp.Replies, ToDiscussionPostResponse(&replies[j]))
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

// Post creates a thread, or a reply when ParentID is set. Replies to
// replies are flattened onto the thread root.
func (s *DiscussionService) Post(ctx context.Context, caller authctx.Caller, req CreateDiscussionPostRequest) (*DiscussionPostResponse, error) {
	var post *content.DiscussionPost
	var err error

	if req.ParentID != nil {
		parent, ferr := s.discussionRepo.FindByID(ctx, *req.ParentID)
		if ferr != nil {
			return nil, ferr
		}
		rootID := parent.ID
		if parent.IsReply() {
			rootID = *parent.ParentID
		}
		post, err = content.NewDiscussionReply(rootID, caller.UserID, caller.Identity(), req.Body)
	} else {
		post, err = content.NewDiscussionPost(caller.UserID, caller.Identity(), req.Body)
	}
	if err != nil {
		return nil, err
	}

	if err := s.discussionRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := ToDiscussionPostResponse(post)
	return &resp, nil
}

// Delete removes a post. The author or an admin may delete it.
func (s *DiscussionService) Delete(ctx context.Context, caller authctx.Caller, postID uuid.UUID) error {
	post, err := s.discussionRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != caller.UserID {
		if err := caller.RequireAdmin(); err != nil {
			return err
		}
	}

	return s.discussionRepo.Delete(ctx, postID)
}
