package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// ShowcaseService handles the gallery, portfolio, and social pages.
// Reads are public; all writes are admin only.
type ShowcaseService struct {
	galleryRepo   content.GalleryRepository
	portfolioRepo content.PortfolioRepository
	socialRepo    content.SocialRepository
}

// NewShowcaseService creates a new ShowcaseService
func NewShowcaseService(
	galleryRepo content.GalleryRepository,
	portfolioRepo content.PortfolioRepository,
	socialRepo content.SocialRepository,
) *ShowcaseService {
	return &ShowcaseService{
		galleryRepo:   galleryRepo,
		portfolioRepo: portfolioRepo,
		socialRepo:    socialRepo,
	}
}

// ListGallery returns gallery items in sort order
func (s *ShowcaseService) ListGallery(ctx context.Context) ([]GalleryItemResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "sort_order"
	filter.OrderDir = "asc"

	items, err := s.galleryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]GalleryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToGalleryItemResponse(&items[i]))
	}
	return responses, nil
}

// CreateGalleryItem adds an image to the gallery. Admin only.
func (s *ShowcaseService) CreateGalleryItem(ctx context.Context, caller authctx.Caller, req GalleryItemRequest) (*GalleryItemResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	item, err := content.NewGalleryItem(req.Title, req.Description, req.ImageKey, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.galleryRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToGalleryItemResponse(item)
	return &resp, nil
}

// UpdateGalleryItem edits a gallery entry. Admin only.
func (s *ShowcaseService) UpdateGalleryItem(ctx context.Context, caller authctx.Caller, itemID uuid.UUID, req GalleryItemRequest) (*GalleryItemResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	item, err := s.galleryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Title, req.Description, req.SortOrder); err != nil {
		return nil, err
	}

	if err := s.galleryRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToGalleryItemResponse(item)
	return &resp, nil
}

// DeleteGalleryItem removes a gallery entry. Admin only.
func (s *ShowcaseService) DeleteGalleryItem(ctx context.Context, caller authctx.Caller, itemID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if _, err := s.galleryRepo.FindByID(ctx, itemID); err != nil {
		return err
	}
	return s.galleryRepo.Delete(ctx, itemID)
}

// ListPortfolio returns portfolio pieces in sort order
func (s *ShowcaseService) ListPortfolio(ctx context.Context) ([]PortfolioPieceResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "sort_order"
	filter.OrderDir = "asc"

	pieces, err := s.portfolioRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toPortfolioResponses(pieces), nil
}

// ListFeaturedPortfolio returns only the featured pieces for the home page
func (s *ShowcaseService) ListFeaturedPortfolio(ctx context.Context) ([]PortfolioPieceResponse, error) {
	pieces, err := s.portfolioRepo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toPortfolioResponses(pieces), nil
}

// CreatePortfolioPiece adds a portfolio entry. Admin only.
func (s *ShowcaseService) CreatePortfolioPiece(ctx context.Context, caller authctx.Caller, req PortfolioPieceRequest) (*PortfolioPieceResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	piece, err := content.NewPortfolioPiece(req.Title, req.Story, req.Materials)
	if err != nil {
		return nil, err
	}
	if req.Featured || req.SortOrder != 0 {
		if err := piece.Update(req.Title, req.Story, req.Materials, req.Featured, req.SortOrder); err != nil {
			return nil, err
		}
	}

	if err := s.portfolioRepo.Save(ctx, piece); err != nil {
		return nil, err
	}

	resp := ToPortfolioPieceResponse(piece)
	return &resp, nil
}

// UpdatePortfolioPiece edits a portfolio entry. Admin only.
func (s *ShowcaseService) UpdatePortfolioPiece(ctx context.Context, caller authctx.Caller, pieceID uuid.UUID, req PortfolioPieceRequest) (*PortfolioPieceResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	piece, err := s.portfolioRepo.FindByID(ctx, pieceID)
	if err != nil {
		return nil, err
	}

	if err := piece.Update(req.Title, req.Story, req.Materials, req.Featured, req.SortOrder); err != nil {
		return nil, err
	}

	if err := s.portfolioRepo.Save(ctx, piece); err != nil {
		return nil, err
	}

	resp := ToPortfolioPieceResponse(piece)
	return &resp, nil
}

// SetPortfolioImage attaches a piece's image. Admin only.
func (s *ShowcaseService) SetPortfolioImage(ctx context.Context, caller authctx.Caller, pieceID uuid.UUID, imageKey string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	piece, err := s.portfolioRepo.FindByID(ctx, pieceID)
	if err != nil {
		return err
	}

	piece.SetImageKey(imageKey)

	return s.portfolioRepo.Save(ctx, piece)
}

// DeletePortfolioPiece removes a portfolio entry. Admin only.
func (s *ShowcaseService) DeletePortfolioPiece(ctx context.Context, caller authctx.Caller, pieceID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if _, err := s.portfolioRepo.FindByID(ctx, pieceID); err != nil {
		return err
	}
	return s.portfolioRepo.Delete(ctx, pieceID)
}

// ListSocialLinks returns the social page content
func (s *ShowcaseService) ListSocialLinks(ctx context.Context) ([]SocialLinkResponse, error) {
	links, err := s.socialRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SocialLinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, ToSocialLinkResponse(&links[i]))
	}
	return responses, nil
}

// CreateSocialLink adds a social content reference. Admin only.
func (s *ShowcaseService) CreateSocialLink(ctx context.Context, caller authctx.Caller, req SocialLinkRequest) (*SocialLinkResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	link, err := content.NewSocialLink(req.Platform, req.URL, req.Caption)
	if err != nil {
		return nil, err
	}
	if req.ImageKey != "" || req.SortOrder != 0 {
		if err := link.Update(req.Platform, req.URL, req.Caption, req.SortOrder); err != nil {
			return nil, err
		}
		link.ImageKey = req.ImageKey
	}

	if err := s.socialRepo.Save(ctx, link); err != nil {
		return nil, err
	}

	resp := ToSocialLinkResponse(link)
	return &resp, nil
}

// UpdateSocialLink edits a social content reference. Admin only.
func (s *ShowcaseService) UpdateSocialLink(ctx context.Context, caller authctx.Caller, linkID uuid.UUID, req SocialLinkRequest) (*SocialLinkResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	link, err := s.socialRepo.FindByID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if err := link.Update(req.Platform, req.URL, req.Caption, req.SortOrder); err != nil {
		return nil, err
	}
	link.ImageKey = req.ImageKey

	if err := s.socialRepo.Save(ctx, link); err != nil {
		return nil, err
	}

	resp := ToSocialLinkResponse(link)
	return &resp, nil
}

// DeleteSocialLink removes a social content reference. Admin only.
func (s *ShowcaseService) DeleteSocialLink(ctx context.Context, caller authctx.Caller, linkID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if _, err := s.socialRepo.FindByID(ctx, linkID); err != nil {
		return err
	}
	return s.socialRepo.Delete(ctx, linkID)
}

func toPortfolioResponses(pieces []content.PortfolioPiece) []PortfolioPieceResponse {
	responses := make([]PortfolioPieceResponse, 0, len(pieces))
	for i := range pieces {
		responses = append(responses, ToPortfolioPieceResponse(&pieces[i]))
	}
	return responses
}
