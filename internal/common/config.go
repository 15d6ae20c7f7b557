package common

import (
	"os"
	"strconv"
	"time"

	"github.com/cmorenog/docextract/constants"
)

// Config holds all application configuration
type Config struct {
	Extract ExtractConfig
	LLM     LLMConfig
}

// ExtractConfig holds extraction-pipeline tuning knobs
type ExtractConfig struct {
	MaxTextChars int
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxTextChars: getEnvAsInt("EXTRACT_MAX_TEXT_CHARS", constants.DefaultMaxTextChars),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 2048),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. An empty OPENAI_API_KEY
// is allowed: the pipeline then runs manual extraction only.
func (c *Config) Validate() error {
	if c.Extract.MaxTextChars <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_MAX_TEXT_CHARS must be positive", ErrInvalidInput)
	}
	if c.LLM.APIKey != "" && c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_MODEL is required when OPENAI_API_KEY is set", ErrInvalidInput)
	}
	return nil
}
