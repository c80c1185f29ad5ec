package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// MessageHandler coordinates message endpoints. Every endpoint requires
// authentication and is scoped to conversations the caller participates in.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// List returns the caller's messages, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	senderID, ok := queryUint64(c, "sender_id")
	if !ok {
		return
	}
	recipientID, ok := queryUint64(c, "recipient_id")
	if !ok {
		return
	}

	filter := repository.MessageFilter{
		UserID:      caller,
		SenderID:    senderID,
		RecipientID: recipientID,
		UnreadOnly:  c.Query("unread_only") == "true",
	}
	params := utils.GetPaginationParams(c)

	messages, total, err := h.messageService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageListResponse(messages, params, total))
}

// Get returns a message. Participants only.
func (h *MessageHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	message, err := h.messageService.Get(caller, id)
	if err != nil {
		h.respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageDTO(*message))
}

// Create sends a message from the caller to an existing recipient.
func (h *MessageHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	type CreateRequest struct {
		RecipientID uint64 `json:"recipient_id" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.Create(caller, services.CreateMessageInput{
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	if err != nil {
		h.respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// Update toggles the read flag. Sender only; content is immutable.
func (h *MessageHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		IsRead *bool `json:"is_read"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.Update(caller, id, services.UpdateMessageInput{
		IsRead: req.IsRead,
	})
	if err != nil {
		h.respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageDTO(*message))
}

// Delete removes a message. Either participant may delete.
func (h *MessageHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.messageService.Delete(caller, id); err != nil {
		h.respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message deleted",
	})
}

func (h *MessageHandler) respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMessageNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRecipientNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSelfMessage):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotSender):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotParticipant):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
