// Command ytkb builds a knowledge base from a YouTube channel. It lists the
// channel's playlists and uploads, fetches per-video transcripts, optionally
// extracts structured facts with an Anthropic model, and writes the results
// as JSON files for the chat frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ytkb/config"
	"ytkb/extract"
	httpclient "ytkb/http"
	"ytkb/pipeline"
	"ytkb/youtube"
)

func main() {
	// .env is optional; flags and real env vars take priority anyway.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	apiKey := flag.String("api-key", cfg.YouTubeAPIKey, "YouTube Data API key (or YOUTUBE_API_KEY)")
	anthropicKey := flag.String("anthropic-key", cfg.AnthropicAPIKey, "Anthropic API key for fact extraction (or ANTHROPIC_API_KEY)")
	channelID := flag.String("channel", cfg.ChannelID, "YouTube channel ID to scrape")
	channelName := flag.String("channel-name", cfg.ChannelName, "Channel display name for metadata.json")
	outputDir := flag.String("output", cfg.OutputDir, "Output directory")
	maxVideos := flag.Int("max-videos", cfg.MaxVideos, "Max videos to process (0 = all)")
	model := flag.String("model", cfg.Model, "Extraction model id (empty = default)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ytkb - build a channel knowledge base

Usage:
  ytkb -api-key KEY [flags]

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.YouTubeAPIKey = *apiKey
	cfg.AnthropicAPIKey = *anthropicKey
	cfg.ChannelID = *channelID
	cfg.ChannelName = *channelName
	cfg.OutputDir = *outputDir
	cfg.MaxVideos = *maxVideos
	cfg.Model = *model

	if cfg.YouTubeAPIKey == "" {
		fmt.Fprintf(os.Stderr, "Error: YouTube API key required (use -api-key or set YOUTUBE_API_KEY)\n")
		flag.Usage()
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	lister, err := youtube.NewAPIClient(ctx, cfg.YouTubeAPIKey, cfg.PageRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating YouTube client: %v\n", err)
		os.Exit(1)
	}

	transcriptHTTP := httpclient.New(&httpclient.Config{
		Timeout:           cfg.HTTPTimeout,
		UserAgent:         "ytkb/1.0",
		RequestsPerSecond: cfg.PageRate,
		Retry:             httpclient.DefaultConfig().Retry,
	})
	transcripts := youtube.NewTranscriptClient(transcriptHTTP)
	defer transcripts.Close()

	var llm extract.LLM
	if cfg.AnthropicAPIKey != "" {
		llmHTTP := httpclient.New(&httpclient.Config{
			Timeout:           cfg.LLMTimeout,
			UserAgent:         "ytkb/1.0",
			RequestsPerSecond: 1.0,
			Retry:             httpclient.DefaultConfig().Retry,
		})
		client, err := extract.NewAnthropicClient(cfg.AnthropicAPIKey, llmHTTP)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating Anthropic client: %v\n", err)
			os.Exit(1)
		}
		if cfg.Model != "" {
			client.Model = cfg.Model
		}
		llm = client
	}

	runner := pipeline.New(cfg, lister, transcripts, extract.NewExtractor(llm))

	result, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf(`Knowledge base built successfully.

Statistics:
  Videos:     %d
  Facts:      %d
  Jokes:      %d
  Recipes:    %d
  Businesses: %d
  Categories: %d

Files saved to %s/
`, result.Videos, result.Facts, result.Jokes, result.Recipes, result.Businesses,
		result.Categories, result.OutputDir)
}
