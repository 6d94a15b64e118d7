package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/csbot-be/database"
	"github.com/tieubaoca/csbot-be/repository"
	"github.com/tieubaoca/csbot-be/service"
)

type fakeAI struct {
	reply string
	err   error
}

func (f *fakeAI) Chat(ctx context.Context, systemPrompt, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAI) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader([]byte("RIFF....WAVEfmt "))), nil
}

// newTestRouter wires the full API the way the start command does, with the
// AI provider stubbed out.
func newTestRouter(t *testing.T, ai *fakeAI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	knowledgeRepo := repository.NewKnowledgeRepo(db)
	conversationRepo := repository.NewConversationRepo(db)

	scraperService := service.NewScraperService(time.Second)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, scraperService)
	chatService := service.NewChatService(ai, knowledgeRepo, conversationRepo)
	speechService := service.NewSpeechService(ai)

	corsHandler := NewCorsHandler()
	knowledgeHandler := NewKnowledgeHandler(knowledgeService)
	chatHandler := NewChatHandler(chatService)
	speechHandler := NewSpeechHandler(speechService)

	router := gin.New()
	router.Use(corsHandler.CorsMiddleware)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/knowledge", knowledgeHandler.HandleListKnowledge)
		apiV1.POST("/knowledge", knowledgeHandler.HandleAddKnowledge)
		apiV1.DELETE("/knowledge/:id", knowledgeHandler.HandleDeleteKnowledge)
		apiV1.POST("/chat", chatHandler.HandleChat)
		apiV1.GET("/chat/history/:session_id", chatHandler.HandleChatHistory)
		apiV1.POST("/speech", speechHandler.HandleSpeech)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
