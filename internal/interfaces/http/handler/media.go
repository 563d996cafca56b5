package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mediaapp "github.com/mosslight/storefront/internal/application/media"
)

// MediaHandler handles media asset endpoints. Uploads go straight to
// object storage via presigned URLs; the API only brokers them.
type MediaHandler struct {
	BaseHandler
	mediaService *mediaapp.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *mediaapp.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// InitiateUpload registers a pending asset and returns a presigned PUT URL
func (h *MediaHandler) InitiateUpload(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req mediaapp.InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.mediaService.InitiateUpload(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ConfirmUpload verifies the object landed in storage and activates the asset
func (h *MediaHandler) ConfirmUpload(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	resp, err := h.mediaService.ConfirmUpload(c.Request.Context(), caller, assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetDownloadURL returns a presigned GET URL for an active asset
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	resp, err := h.mediaService.GetDownloadURL(c.Request.Context(), assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an asset record and its stored object
func (h *MediaHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), caller, assetID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
