package service

import (
	"context"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"
)

const (
	chatMaxTokens   = 500
	chatTemperature = 0.7
)

type OpenAIService struct {
	client   *openai.Client
	model    string
	ttsModel string
	ttsVoice string
}

func NewOpenAIService(baseURL, apiKey, model, ttsModel, ttsVoice string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // point at a compatible local server if needed
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client:   client,
		model:    model,
		ttsModel: ttsModel,
		ttsVoice: ttsVoice,
	}
}

func (s *OpenAIService) Chat(ctx context.Context, systemPrompt, message string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			MaxTokens:   chatMaxTokens,
			Temperature: chatTemperature,
		},
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := s.client.CreateSpeech(
		ctx,
		openai.CreateSpeechRequest{
			Model:          openai.SpeechModel(s.ttsModel),
			Input:          text,
			Voice:          openai.SpeechVoice(s.ttsVoice),
			ResponseFormat: openai.SpeechResponseFormatWav,
		},
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
