package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tieubaoca/csbot-be/types"
)

type ConversationRepo interface {
	Append(ctx context.Context, turn *types.ChatConversation) error
	ListBySession(ctx context.Context, sessionID string) ([]types.ChatConversation, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{
		db: db,
	}
}

func (r *conversationRepo) Append(ctx context.Context, turn *types.ChatConversation) error {
	return r.db.WithContext(ctx).Create(turn).Error
}

// ListBySession returns the session's turns oldest first. The id tiebreak
// keeps insertion order for turns sharing a timestamp.
func (r *conversationRepo) ListBySession(ctx context.Context, sessionID string) ([]types.ChatConversation, error) {
	turns := make([]types.ChatConversation, 0)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&turns).Error
	return turns, err
}
