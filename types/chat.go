package types

import "time"

// ChatConversation is one message/response exchange within a session.
// Rows are immutable once written; a session is only a grouping key.
type ChatConversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:100;index;not null" json:"session_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatResult is what the chat service hands back to its callers.
type ChatResult struct {
	Response  string
	SessionID string
}
