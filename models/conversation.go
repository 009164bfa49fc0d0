package models

import "time"

// Message roles mirror the NLP backend's wire contract.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// DefaultConversationTitle is given to conversations started without one.
const DefaultConversationTitle = "New conversation"

// Conversation groups a user's chat messages. Listing orders by most
// recent activity, so UpdatedAt is bumped on every appended message.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `json:"title"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one chat line, append-only, listed in creation order.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"index;not null" json:"conversation_id"`
	Role           string    `gorm:"not null" json:"role"` // "user" or "assistant"
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
