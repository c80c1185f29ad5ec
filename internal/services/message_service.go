package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfMessage       = errors.New("cannot send a message to yourself")
	ErrNotSender         = errors.New("only the sender can edit a message")
	ErrNotParticipant    = errors.New("only the sender or recipient can access this message")
)

// MessageService enforces the messaging rules between two users.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// List returns the caller's messages, newest first. The caller-participant
// predicate is always applied by the repository.
func (s *MessageService) List(filter repository.MessageFilter, params utils.PaginationParams) ([]models.Message, int64, error) {
	return s.messageRepo.List(filter, params)
}

// Get returns a message visible to the caller: sender or recipient only.
func (s *MessageService) Get(callerID, messageID uint64) (*models.Message, error) {
	message, err := s.find(messageID)
	if err != nil {
		return nil, err
	}

	if message.SenderID != callerID && message.RecipientID != callerID {
		return nil, ErrNotParticipant
	}
	return message, nil
}

// CreateMessageInput represents input for sending a message.
type CreateMessageInput struct {
	RecipientID uint64
	Content     string
}

// Create sends a message. The recipient must exist and must not be the
// sender.
func (s *MessageService) Create(senderID uint64, input CreateMessageInput) (*models.Message, error) {
	if _, err := s.userRepo.FindByID(input.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	if senderID == input.RecipientID {
		return nil, ErrSelfMessage
	}

	message := &models.Message{
		Content:     input.Content,
		SenderID:    senderID,
		RecipientID: input.RecipientID,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// UpdateMessageInput applies only the fields that are present. Content is
// immutable after send; only the read flag can change.
type UpdateMessageInput struct {
	IsRead *bool
}

// Update applies a partial update. Only the sender may update.
func (s *MessageService) Update(callerID, messageID uint64, input UpdateMessageInput) (*models.Message, error) {
	message, err := s.find(messageID)
	if err != nil {
		return nil, err
	}

	if callerID != message.SenderID {
		return nil, ErrNotSender
	}

	if input.IsRead != nil {
		message.IsRead = *input.IsRead
	}

	if err := s.messageRepo.Update(message); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return message, nil
}

// Delete removes the message. Either participant may delete.
func (s *MessageService) Delete(callerID, messageID uint64) error {
	message, err := s.find(messageID)
	if err != nil {
		return err
	}

	if callerID != message.SenderID && callerID != message.RecipientID {
		return ErrNotParticipant
	}

	if err := s.messageRepo.Delete(messageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (s *MessageService) find(id uint64) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return message, nil
}
