package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	messagingapp "github.com/mosslight/storefront/internal/application/messaging"
)

// MessageHandler handles the contact form and the studio inbox
type MessageHandler struct {
	BaseHandler
	messageService *messagingapp.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *messagingapp.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send accepts a contact-form submission. The route uses optional auth:
// a signed-in sender is linked to their account, anonymous is fine too.
func (h *MessageHandler) Send(c *gin.Context) {
	var req messagingapp.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var senderID *uuid.UUID
	if caller, ok := getCaller(c); ok {
		senderID = &caller.UserID
	}

	resp, err := h.messageService.Send(c.Request.Context(), senderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns inbox messages for the admin dashboard
func (h *MessageHandler) List(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter := messagingapp.MessageListFilter{}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	messages, err := h.messageService.GetMessages(c.Request.Context(), caller, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, messages)
}

// ListMine returns messages the caller sent while signed in
func (h *MessageHandler) ListMine(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	messages, err := h.messageService.GetMyMessages(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, messages)
}

// MarkRead marks one inbox message as read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), caller, messageID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
