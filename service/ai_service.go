package service

import (
	"context"
	"io"
)

// AIService generates a single-turn completion for a user message under a
// system prompt.
type AIService interface {
	Chat(ctx context.Context, systemPrompt, message string) (string, error)
}

// SpeechSynthesizer converts text to an audio stream. The caller owns the
// returned stream and must close it.
type SpeechSynthesizer interface {
	Speech(ctx context.Context, text string) (io.ReadCloser, error)
}
