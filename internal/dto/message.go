package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// MessageDTO represents a message in API responses
type MessageDTO struct {
	ID          uint64    `json:"id"`
	Content     string    `json:"content"`
	SenderID    uint64    `json:"sender_id"`
	RecipientID uint64    `json:"recipient_id"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
}

// MessageListResponse represents a paginated list of messages
type MessageListResponse struct {
	Messages   []MessageDTO             `json:"messages"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToMessageDTO converts a Message model to MessageDTO
func ToMessageDTO(message models.Message) MessageDTO {
	return MessageDTO{
		ID:          message.ID,
		Content:     message.Content,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Timestamp:   message.Timestamp,
		IsRead:      message.IsRead,
	}
}

// ToMessageListResponse converts messages to a MessageListResponse
func ToMessageListResponse(messages []models.Message, params utils.PaginationParams, total int64) MessageListResponse {
	items := make([]MessageDTO, len(messages))
	for i, message := range messages {
		items[i] = ToMessageDTO(message)
	}

	return MessageListResponse{
		Messages: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
