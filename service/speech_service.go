package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tieubaoca/csbot-be/utils"
)

// SpeechService turns text into WAV audio through the configured synthesizer.
type SpeechService struct {
	synthesizer SpeechSynthesizer
}

func NewSpeechService(synthesizer SpeechSynthesizer) *SpeechService {
	return &SpeechService{
		synthesizer: synthesizer,
	}
}

// Synthesize returns the audio for text. The provider streams its result, so
// the stream is spooled through a temp file that is removed before returning.
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	stream, err := s.synthesizer.Speech(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer stream.Close()

	path, cleanup, err := utils.SpoolToTempFile(stream, "speech-*.wav")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return os.ReadFile(path)
}
