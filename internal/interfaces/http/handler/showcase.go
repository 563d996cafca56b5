package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contentapp "github.com/mosslight/storefront/internal/application/content"
)

// ShowcaseHandler handles gallery, portfolio, and social link endpoints
type ShowcaseHandler struct {
	BaseHandler
	showcaseService *contentapp.ShowcaseService
}

// NewShowcaseHandler creates a new ShowcaseHandler
func NewShowcaseHandler(showcaseService *contentapp.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{showcaseService: showcaseService}
}

// ListGallery returns all gallery items in display order
func (h *ShowcaseHandler) ListGallery(c *gin.Context) {
	items, err := h.showcaseService.ListGallery(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateGalleryItem adds an image to the gallery
func (h *ShowcaseHandler) CreateGalleryItem(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req contentapp.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.CreateGalleryItem(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateGalleryItem edits a gallery entry
func (h *ShowcaseHandler) UpdateGalleryItem(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid gallery item ID")
		return
	}

	var req contentapp.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.UpdateGalleryItem(c.Request.Context(), caller, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteGalleryItem removes a gallery entry
func (h *ShowcaseHandler) DeleteGalleryItem(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid gallery item ID")
		return
	}

	if err := h.showcaseService.DeleteGalleryItem(c.Request.Context(), caller, itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPortfolio returns all portfolio pieces in display order
func (h *ShowcaseHandler) ListPortfolio(c *gin.Context) {
	pieces, err := h.showcaseService.ListPortfolio(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pieces)
}

// ListFeaturedPortfolio returns pieces flagged for the front page
func (h *ShowcaseHandler) ListFeaturedPortfolio(c *gin.Context) {
	pieces, err := h.showcaseService.ListFeaturedPortfolio(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pieces)
}

// CreatePortfolioPiece adds a piece to the portfolio
func (h *ShowcaseHandler) CreatePortfolioPiece(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req contentapp.PortfolioPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.CreatePortfolioPiece(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePortfolioPiece edits a portfolio entry
func (h *ShowcaseHandler) UpdatePortfolioPiece(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid portfolio piece ID")
		return
	}

	var req contentapp.PortfolioPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.UpdatePortfolioPiece(c.Request.Context(), caller, pieceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetPortfolioImage attaches an uploaded image to a portfolio piece
func (h *ShowcaseHandler) SetPortfolioImage(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid portfolio piece ID")
		return
	}

	var req setImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.showcaseService.SetPortfolioImage(c.Request.Context(), caller, pieceID, req.ImageKey); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeletePortfolioPiece removes a portfolio entry
func (h *ShowcaseHandler) DeletePortfolioPiece(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid portfolio piece ID")
		return
	}

	if err := h.showcaseService.DeletePortfolioPiece(c.Request.Context(), caller, pieceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSocialLinks returns the studio's social content references
func (h *ShowcaseHandler) ListSocialLinks(c *gin.Context) {
	links, err := h.showcaseService.ListSocialLinks(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, links)
}

// CreateSocialLink adds a social content reference
func (h *ShowcaseHandler) CreateSocialLink(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req contentapp.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.CreateSocialLink(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateSocialLink edits a social content reference
func (h *ShowcaseHandler) UpdateSocialLink(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid social link ID")
		return
	}

	var req contentapp.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.showcaseService.UpdateSocialLink(c.Request.Context(), caller, linkID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteSocialLink removes a social content reference
func (h *ShowcaseHandler) DeleteSocialLink(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid social link ID")
		return
	}

	if err := h.showcaseService.DeleteSocialLink(c.Request.Context(), caller, linkID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
