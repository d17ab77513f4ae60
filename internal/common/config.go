package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Input  InputConfig
	Output OutputConfig
	LLM    LLMConfig
}

// InputConfig holds text-acquisition configuration.
type InputConfig struct {
	Dir        string
	OCRIfEmpty bool // reserved for an OCR fallback collaborator; off by default
}

// OutputConfig holds batch output configuration.
type OutputConfig struct {
	Dir      string
	Workers  int
	XLSXPath string // optional summary workbook; empty disables it
}

// LLMConfig holds the external candidate-provider configuration.
type LLMConfig struct {
	Provider string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:        getEnv("RFP_INPUT_DIR", "data"),
			OCRIfEmpty: getEnvAsBool("ENABLE_OCR", false),
		},
		Output: OutputConfig{
			Dir:      getEnv("RFP_OUTPUT_DIR", "outputs"),
			Workers:  getEnvAsInt("RFP_WORKERS", 1),
			XLSXPath: getEnv("RFP_XLSX_PATH", ""),
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", ""),
			Model:    getEnv("LLM_MODEL", ""),
			APIKey:   getEnv("LLM_API_KEY", ""),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
	}
}

// Validate checks the effective configuration before a run starts.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Dir) == "" {
		return NewAppError("CONFIG_ERROR", "input directory is required", ErrInvalidInput)
	}
	if c.Output.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "worker count must be at least 1", ErrInvalidInput)
	}
	switch strings.ToLower(strings.TrimSpace(c.LLM.Provider)) {
	case "", "gemini", "groq":
	default:
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("unknown LLM provider %q", c.LLM.Provider), ErrInvalidInput)
	}
	return nil
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

func getEnvAsBool(key string, defaultValue bool) bool {
	switch value := os.Getenv(key); value {
	case "1", "true", "yes", "TRUE", "YES", "True":
		return true
	case "":
		return defaultValue
	default:
		return false
	}
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
