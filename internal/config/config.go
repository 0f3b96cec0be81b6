package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     int
	DBPath   string
	LogLevel string
	// Attention sampling
	SampleInterval time.Duration
	CameraDevice   int
	CameraStub     bool
	// Recommendation agent tuning
	LearningRate float64
	Gamma        float64
	Epsilon      float64
	// Frontend
	FrontendDir string
	// Schedule templates
	TemplateDirs []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           envInt("PORT", 8000),
		DBPath:         envStr("FOCUS_DB_PATH", "data/focus_tutor.db"),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		SampleInterval: envDuration("SAMPLE_INTERVAL", 2*time.Second),
		CameraDevice:   envInt("CAMERA_DEVICE", 0),
		CameraStub:     envBool("CAMERA_STUB", true),
		LearningRate:   envFloat("RL_LEARNING_RATE", 0.1),
		Gamma:          envFloat("RL_GAMMA", 0.99),
		Epsilon:        envFloat("RL_EPSILON", 0.1),
		FrontendDir:    envStr("FRONTEND_DIR", "frontend"),
		TemplateDirs:   envDirs("TEMPLATE_DIRS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("FOCUS_DB_PATH must not be empty")
	}
	if c.SampleInterval <= 0 {
		return fmt.Errorf("SAMPLE_INTERVAL must be positive, got %s", c.SampleInterval)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("RL_EPSILON must be within [0,1], got %f", c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("RL_LEARNING_RATE must be within (0,1], got %f", c.LearningRate)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("RL_GAMMA must be within [0,1], got %f", c.Gamma)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envDirs(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var dirs []string
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}
