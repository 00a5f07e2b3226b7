// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default channel: Outdoor Boys.
const (
	DefaultChannelID   = "UCXCbmqLdPscHPhFL7gqPOhQ"
	DefaultChannelName = "Outdoor Boys"
)

// Config holds all settings for one knowledge-base build run.
type Config struct {
	// ChannelID is the YouTube channel to scrape.
	ChannelID string `json:"channel_id"`
	// ChannelName is the display name recorded in metadata.json.
	ChannelName string `json:"channel_name"`

	// YouTubeAPIKey authenticates Data API calls (required).
	YouTubeAPIKey string `json:"-"`
	// AnthropicAPIKey enables LLM fact extraction (optional).
	AnthropicAPIKey string `json:"-"`
	// Model overrides the extraction model id ("" = client default).
	Model string `json:"model"`

	// OutputDir is where the knowledge-base files are written.
	OutputDir string `json:"output_dir"`
	// MaxVideos caps how many uploads are processed (0 = all).
	MaxVideos int `json:"max_videos"`

	// PageRate paces paginated Data API fetches, in pages per second.
	PageRate float64 `json:"page_rate"`
	// VideoDelay is the pause between per-video iterations.
	VideoDelay time.Duration `json:"video_delay"`
	// HTTPTimeout bounds individual timedtext requests.
	HTTPTimeout time.Duration `json:"http_timeout"`
	// LLMTimeout bounds individual language-model requests.
	LLMTimeout time.Duration `json:"llm_timeout"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		ChannelID:   DefaultChannelID,
		ChannelName: DefaultChannelName,
		OutputDir:   "./knowledge-base",
		MaxVideos:   10,
		PageRate:    2.0, // ~0.5s between page fetches
		VideoDelay:  500 * time.Millisecond,
		HTTPTimeout: 30 * time.Second,
		LLMTimeout:  2 * time.Minute,
	}
}

// Load loads configuration from the optional config file and environment
// variables, applying defaults. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load ytkb.json from the current directory or the
// user's config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytkb.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytkb", "ytkb.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.YouTubeAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicAPIKey = v
	}
	if v := os.Getenv("YTKB_CHANNEL_ID"); v != "" {
		c.ChannelID = v
	}
	if v := os.Getenv("YTKB_CHANNEL_NAME"); v != "" {
		c.ChannelName = v
	}
	if v := os.Getenv("YTKB_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("YTKB_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTKB_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("YTKB_PAGE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PageRate = f
		}
	}
	if v := os.Getenv("YTKB_VIDEO_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.VideoDelay = d
		}
	}
	if v := os.Getenv("YTKB_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("YTKB_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.LLMTimeout = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.ChannelID == "" {
		return fmt.Errorf("channel_id must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("max_videos must be non-negative")
	}
	if c.PageRate < 0 {
		return fmt.Errorf("page_rate must be non-negative")
	}
	if c.VideoDelay < 0 {
		return fmt.Errorf("video_delay must be non-negative")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("llm_timeout must be positive")
	}
	return nil
}
