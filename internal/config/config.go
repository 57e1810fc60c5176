package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Document source and batch output
	DocsDir   string `yaml:"docs_dir"`
	OutputDir string `yaml:"output_dir"`

	// Page composition
	DefaultTitle string `yaml:"default_title"`

	// Auth
	APIKey string `yaml:"-"`

	// Optional remote publishing
	PublishURL    string `yaml:"publish_url"`
	PublishAPIKey string `yaml:"-"`

	// Batch render pipeline
	WorkerCount  int           `yaml:"worker_count"`
	MaxQueueSize int           `yaml:"max_queue_size"`
	JobTTL       time.Duration `yaml:"job_ttl"`
}

// Load builds the configuration: defaults first, then the optional YAML
// file named by GUIDEVIEW_CONFIG, then environment variables on top.
// Secrets only come from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:         "8090",
		DocsDir:      "./docs",
		OutputDir:    "./public",
		DefaultTitle: "Guides",
		WorkerCount:  4,
		MaxQueueSize: 100,
		JobTTL:       1 * time.Hour,
	}

	if path := os.Getenv("GUIDEVIEW_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.DocsDir = envOr("DOCS_DIR", cfg.DocsDir)
	cfg.OutputDir = envOr("OUTPUT_DIR", cfg.OutputDir)
	cfg.DefaultTitle = envOr("DEFAULT_TITLE", cfg.DefaultTitle)
	cfg.APIKey = envOr("GUIDEVIEW_API_KEY", cfg.APIKey)
	cfg.PublishURL = envOr("PUBLISH_URL", cfg.PublishURL)
	cfg.PublishAPIKey = envOr("PUBLISH_API_KEY", cfg.PublishAPIKey)
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)
	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("DOCS_DIR is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("GUIDEVIEW_API_KEY is required")
	}
	if c.PublishURL != "" && c.PublishAPIKey == "" {
		return fmt.Errorf("PUBLISH_API_KEY is required when PUBLISH_URL is set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
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
