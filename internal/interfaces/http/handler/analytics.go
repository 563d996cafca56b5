package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	analyticsapp "github.com/mosslight/storefront/internal/application/analytics"
)

// AnalyticsHandler handles event tracking and admin reports
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// RecordEvent stores one storefront interaction. Optional auth: signed-in
// visitors are attributed, anonymous ones recorded without a user.
func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var req analyticsapp.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var userID *uuid.UUID
	if caller, ok := getCaller(c); ok {
		userID = &caller.UserID
	}

	if err := h.analyticsService.RecordEvent(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// GetReport returns per-kind event counts over the requested window
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter := analyticsapp.ReportFilter{}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.analyticsService.GetReport(c.Request.Context(), caller, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// GetProductViews returns the view count for one product
func (h *AnalyticsHandler) GetProductViews(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	filter := analyticsapp.ReportFilter{}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	views, err := h.analyticsService.GetProductViews(c.Request.Context(), caller, productID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"product_id": productID, "views": views})
}
