package ai

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of AI task being performed.
type TaskType string

const (
	TaskEvaluate TaskType = "evaluate"
	TaskGenerate TaskType = "generate"
	TaskChat     TaskType = "chat"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the AI subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// Enabled reports whether AI features can run at all.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// DefaultConfig returns a Config with sensible defaults. Without an API key the
// AI subsystem stays off and the rest of the app works normally.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  20000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskEvaluate: {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 20000},
			TaskGenerate: {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 30000},
			TaskChat:     {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads AI configuration from environment variables, falling back to
// defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MINDQUEST_AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MINDQUEST_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MINDQUEST_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MINDQUEST_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MINDQUEST_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("MINDQUEST_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskEvaluate, "MINDQUEST_AI_EVALUATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskGenerate, "MINDQUEST_AI_GENERATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "MINDQUEST_AI_CHAT_TIMEOUT_MS")

	return cfg
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
