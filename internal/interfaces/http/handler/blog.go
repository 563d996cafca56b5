package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contentapp "github.com/mosslight/storefront/internal/application/content"
)

// BlogHandler handles studio journal endpoints
type BlogHandler struct {
	BaseHandler
	blogService *contentapp.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *contentapp.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// publishRequest toggles a post's published flag
type publishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// ListPublished returns published posts for the public journal page
func (h *BlogHandler) ListPublished(c *gin.Context) {
	filter := contentapp.BlogListFilter{}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.blogService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetBySlug returns one post. Drafts resolve only for admins; the route
// uses optional auth so an anonymous reader gets a plain 404 for drafts.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	caller, _ := getCaller(c)

	resp, err := h.blogService.GetBySlug(c.Request.Context(), caller, c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListAll returns every post, drafts included, for the admin editor
func (h *BlogHandler) ListAll(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter := contentapp.BlogListFilter{}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.blogService.ListAll(c.Request.Context(), caller, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Create creates a new post, optionally publishing it immediately
func (h *BlogHandler) Create(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req contentapp.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update edits a post's content
func (h *BlogHandler) Update(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req contentapp.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.Update(c.Request.Context(), caller, postID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetPublished publishes or unpublishes a post
func (h *BlogHandler) SetPublished(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.SetPublished(c.Request.Context(), caller, postID, *req.Published)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetImage attaches an uploaded header image to a post
func (h *BlogHandler) SetImage(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req setImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.blogService.SetImage(c.Request.Context(), caller, postID, req.ImageKey); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a post
func (h *BlogHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), caller, postID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
