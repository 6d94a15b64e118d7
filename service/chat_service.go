package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tieubaoca/csbot-be/repository"
	"github.com/tieubaoca/csbot-be/types"
)

const systemPromptTemplate = `You are a helpful customer service bot. Use the following business knowledge to answer questions:

%s

If you don't have specific information about the question, politely say so and offer to help in other ways. Be friendly and professional.`

// ChatService answers user messages with the full knowledge base as context
// and records every exchange under its session.
type ChatService struct {
	ai            AIService
	knowledge     repository.KnowledgeRepo
	conversations repository.ConversationRepo
}

func NewChatService(ai AIService, knowledge repository.KnowledgeRepo, conversations repository.ConversationRepo) *ChatService {
	return &ChatService{
		ai:            ai,
		knowledge:     knowledge,
		conversations: conversations,
	}
}

// Respond generates a reply for message. An empty sessionID starts a new
// session; the id actually used is returned so the client can continue it.
func (s *ChatService) Respond(ctx context.Context, message, sessionID string) (*types.ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	entries, err := s.knowledge.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	reply, err := s.ai.Chat(ctx, buildSystemPrompt(entries), message)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	turn := &types.ChatConversation{
		SessionID: sessionID,
		Message:   message,
		Response:  reply,
	}
	if err := s.conversations.Append(ctx, turn); err != nil {
		return nil, fmt.Errorf("store conversation: %w", err)
	}

	return &types.ChatResult{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

// History returns the session's turns oldest first.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]types.ChatConversation, error) {
	return s.conversations.ListBySession(ctx, sessionID)
}

// buildSystemPrompt renders every knowledge entry into the context block the
// model answers from. The whole corpus goes into every turn; there is no
// retrieval step at this scale.
func buildSystemPrompt(entries []types.KnowledgeEntry) string {
	var block strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&block, "Title: %s\nContent: %s\n---\n", entry.Title, entry.Content)
	}
	return fmt.Sprintf(systemPromptTemplate, block.String())
}
