// database/repository/conversation.go
package repository

import (
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"
	"barberbook/utils"

	"gorm.io/gorm"
)

// ConversationRepository defines the interface for chat data access.
type ConversationRepository interface {
	Create(conv *models.Conversation) error
	GetByID(id uint) (*models.Conversation, error)
	ListByUser(userID uint) ([]models.Conversation, error)
	AppendMessage(msg *models.Message) error
	ListMessages(conversationID uint) ([]models.Message, error)
}

// GormConversationRepo implements ConversationRepository using GORM.
type GormConversationRepo struct {
	store *database.Store
}

// NewGormConversationRepo builds a conversation repository over the given store.
func NewGormConversationRepo(store *database.Store) *GormConversationRepo {
	return &GormConversationRepo{store: store}
}

// Create inserts a new conversation.
func (repo *GormConversationRepo) Create(conv *models.Conversation) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}
	if conv.Title == "" {
		conv.Title = models.DefaultConversationTitle
	}
	if err := db.Create(conv).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// GetByID retrieves a conversation by its ID.
func (repo *GormConversationRepo) GetByID(id uint) (*models.Conversation, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var conv models.Conversation
	err = db.First(&conv, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrNotFound.WithMessage("conversation %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve conversation %d: %w", id, err)
	}
	return &conv, nil
}

// ListByUser returns the user's conversations, most recently active first.
func (repo *GormConversationRepo) ListByUser(userID uint) ([]models.Conversation, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var convs []models.Conversation
	err = db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&convs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for user %d: %w", userID, err)
	}
	return convs, nil
}

// AppendMessage stores a message and bumps the conversation's activity
// timestamp so recency ordering holds.
func (repo *GormConversationRepo) AppendMessage(msg *models.Message) error {
	db, err := repo.store.DB()
	if err != nil {
		return utils.ErrBackendUnavailable
	}

	if err := db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	err = db.Model(&models.Conversation{}).
		Where("id = ?", msg.ConversationID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to touch conversation %d: %w", msg.ConversationID, err)
	}
	return nil
}

// ListMessages returns a conversation's messages in creation order.
func (repo *GormConversationRepo) ListMessages(conversationID uint) ([]models.Message, error) {
	db, err := repo.store.DB()
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	var msgs []models.Message
	err = db.Where("conversation_id = ?", conversationID).Order("created_at ASC").Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for conversation %d: %w", conversationID, err)
	}
	return msgs, nil
}
