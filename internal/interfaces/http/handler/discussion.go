package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contentapp "github.com/mosslight/storefront/internal/application/content"
)

// DiscussionHandler handles community board endpoints
type DiscussionHandler struct {
	BaseHandler
	discussionService *contentapp.DiscussionService
}

// NewDiscussionHandler creates a new DiscussionHandler
func NewDiscussionHandler(discussionService *contentapp.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

// ListThreads returns top-level threads with their replies nested
func (h *DiscussionHandler) ListThreads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	threads, err := h.discussionService.ListThreads(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, threads)
}

// Post creates a thread, or a reply when parent_id is set
func (h *DiscussionHandler) Post(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req contentapp.CreateDiscussionPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.discussionService.Post(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Delete removes a post. Authors can delete their own; admins any.
// Deleting a thread removes its replies too.
func (h *DiscussionHandler) Delete(c *gin.Context) {
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

	if err := h.discussionService.Delete(c.Request.Context(), caller, postID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
