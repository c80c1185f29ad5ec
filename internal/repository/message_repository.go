package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create creates a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByID finds a message by ID
func (r *GormMessageRepository) FindByID(id uint64) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// List retrieves the caller's messages ordered by timestamp, newest first.
// The participant predicate (sender or recipient is the caller) is applied
// before any other filter and cannot be overridden.
func (r *GormMessageRepository) List(filter MessageFilter, params utils.PaginationParams) ([]models.Message, int64, error) {
	query := r.db.Model(&models.Message{}).
		Where("sender_id = ? OR recipient_id = ?", filter.UserID, filter.UserID)

	if filter.SenderID != nil {
		query = query.Where("sender_id = ?", *filter.SenderID)
	}
	if filter.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filter.RecipientID)
	}
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	if err := query.Order("timestamp DESC").
		Scopes(database.Paginate(params)).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Update updates a message
func (r *GormMessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// Delete deletes a message
func (r *GormMessageRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Message{}, id).Error
}
