package service

import (
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func newTestGeminiService(t *testing.T, keys []string) *GeminiService {
	t.Helper()
	svc, err := NewGeminiService(keys, "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("NewGeminiService failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestNewGeminiServiceRequiresKeys(t *testing.T) {
	if _, err := NewGeminiService(nil, "gemini-1.5-flash"); err == nil {
		t.Error("expected error for empty key list")
	}
}

func TestGeminiModelGenerationConfig(t *testing.T) {
	svc := newTestGeminiService(t, []string{"test-key"})

	model := svc.generativeModel("You are a helpful assistant.")

	if model.MaxOutputTokens == nil {
		t.Fatal("MaxOutputTokens not set")
	}
	if got := *model.MaxOutputTokens; got != chatMaxTokens {
		t.Errorf("MaxOutputTokens = %d, want %d", got, chatMaxTokens)
	}
	if model.Temperature == nil {
		t.Fatal("Temperature not set")
	}
	if got := *model.Temperature; got != chatTemperature {
		t.Errorf("Temperature = %v, want %v", got, chatTemperature)
	}
}

func TestGeminiModelSystemInstruction(t *testing.T) {
	svc := newTestGeminiService(t, []string{"test-key"})

	model := svc.generativeModel("Answer politely.")

	if model.SystemInstruction == nil || len(model.SystemInstruction.Parts) == 0 {
		t.Fatal("system instruction not set")
	}
	text, ok := model.SystemInstruction.Parts[0].(genai.Text)
	if !ok {
		t.Fatalf("unexpected part type %T", model.SystemInstruction.Parts[0])
	}
	if string(text) != "Answer politely." {
		t.Errorf("system instruction = %q", string(text))
	}
}

func TestGeminiRotateSwapsClient(t *testing.T) {
	svc := newTestGeminiService(t, []string{"key-one", "key-two"})

	before := svc.currentClient()
	if err := svc.rotateAPIKey(); err != nil {
		t.Fatalf("rotateAPIKey failed: %v", err)
	}
	if svc.currentClient() == before {
		t.Error("client not replaced after rotation")
	}
	if svc.currentKey != 1 {
		t.Errorf("currentKey = %d, want 1", svc.currentKey)
	}
}

func TestGeminiConcurrentClientAccess(t *testing.T) {
	svc := newTestGeminiService(t, []string{"key-one", "key-two"})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				svc.generativeModel("concurrent")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if err := svc.rotateAPIKey(); err != nil {
					t.Errorf("rotateAPIKey failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
