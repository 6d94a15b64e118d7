package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"port"`
	DatabasePath string `mapstructure:"database_path"`

	// Chat provider: "openai" (default) or "gemini".
	AIProvider   string `mapstructure:"ai_provider"`
	AIEndpoint   string `mapstructure:"ai_endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"gemini_model"`

	// Speech synthesis always goes through OpenAI.
	TTSModel string `mapstructure:"tts_model"`
	TTSVoice string `mapstructure:"tts_voice"`

	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("database_path", "csbot.db")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-4.1-nano")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("tts_model", "tts-1")
	v.SetDefault("tts_voice", "nova")
	v.SetDefault("fetch_timeout_seconds", 10)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
