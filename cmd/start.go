/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/csbot-be/config"
	"github.com/tieubaoca/csbot-be/database"
	"github.com/tieubaoca/csbot-be/handler"
	"github.com/tieubaoca/csbot-be/repository"
	"github.com/tieubaoca/csbot-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat server",
	Long:  `Starts the HTTP server serving knowledge, chat and speech endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}()

		// init repos
		knowledgeRepo := repository.NewKnowledgeRepo(db)
		conversationRepo := repository.NewConversationRepo(db)

		// init services
		openAIService := service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.TTSModel, cfg.TTSVoice)

		var aiService service.AIService = openAIService
		if cfg.AIProvider == "gemini" {
			geminiService, err := service.NewGeminiService(strings.Split(cfg.GeminiAPIKey, ","), cfg.GeminiModel)
			if err != nil {
				log.Fatalf("Failed to create Gemini service: %v", err)
			}
			defer geminiService.Close()
			aiService = geminiService
		}

		scraperService := service.NewScraperService(cfg.FetchTimeout())
		knowledgeService := service.NewKnowledgeService(knowledgeRepo, scraperService)
		chatService := service.NewChatService(aiService, knowledgeRepo, conversationRepo)
		speechService := service.NewSpeechService(openAIService)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		knowledgeHandler := handler.NewKnowledgeHandler(knowledgeService)
		chatHandler := handler.NewChatHandler(chatService)
		speechHandler := handler.NewSpeechHandler(speechService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.GET("/knowledge", knowledgeHandler.HandleListKnowledge)
			apiV1.POST("/knowledge", knowledgeHandler.HandleAddKnowledge)
			apiV1.DELETE("/knowledge/:id", knowledgeHandler.HandleDeleteKnowledge)
			apiV1.POST("/chat", chatHandler.HandleChat)
			apiV1.GET("/chat/history/:session_id", chatHandler.HandleChatHistory)
			apiV1.POST("/speech", speechHandler.HandleSpeech)
			apiV1.GET("/ws/chat", gin.WrapF(wsService.HandleChat))
		}

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("Starting server on port %s...\n", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("Server error:", err)
			}
		}()

		<-ctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
