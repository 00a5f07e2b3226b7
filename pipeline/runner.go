// Package pipeline drives the single-pass knowledge-base build: playlists,
// videos, transcripts, fact extraction, aggregation, serialization.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"ytkb/config"
	"ytkb/extract"
	"ytkb/kb"
	"ytkb/youtube"
)

// ChannelLister lists playlists and videos for a channel. Listing failures
// are fatal for the run.
type ChannelLister interface {
	ListPlaylists(ctx context.Context, channelID string) ([]youtube.PlaylistInfo, error)
	UploadsPlaylist(ctx context.Context, channelID string) (playlistID, channelTitle string, err error)
	ListPlaylistItems(ctx context.Context, playlistID string, max int) ([]youtube.VideoInfo, error)
}

// TranscriptFetcher fetches a video transcript. Failures degrade to
// skipping the video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (*youtube.Transcript, error)
}

// FactExtractor extracts structured facts via the language model. Failures
// degrade to empty results.
type FactExtractor interface {
	Enabled() bool
	FromTranscript(ctx context.Context, title, description, transcript string) (extract.Extraction, error)
	BusinessesFromDescription(ctx context.Context, description string) ([]any, error)
}

// Result summarizes a completed build.
type Result struct {
	Videos     int
	Facts      int
	Jokes      int
	Recipes    int
	Businesses int
	Categories int
	OutputDir  string
}

// Runner executes one end-to-end knowledge-base build.
type Runner struct {
	cfg         *config.Config
	lister      ChannelLister
	transcripts TranscriptFetcher
	extractor   FactExtractor
	rules       []kb.CategoryRule
}

// New creates a runner from its collaborators.
func New(cfg *config.Config, lister ChannelLister, transcripts TranscriptFetcher, extractor FactExtractor) *Runner {
	return &Runner{
		cfg:         cfg,
		lister:      lister,
		transcripts: transcripts,
		extractor:   extractor,
		rules:       kb.DefaultCategoryRules(),
	}
}

// Run performs the build. Nothing is written to the output directory until
// every video has been processed; cancellation or a listing error mid-run
// leaves no output at all.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	log.Printf("pipeline: building knowledge base for channel %s", r.cfg.ChannelID)

	playlists, err := r.lister.ListPlaylists(ctx, r.cfg.ChannelID)
	if err != nil {
		return nil, err
	}
	log.Printf("pipeline: found %d playlists", len(playlists))

	categories := make([]kb.CategorySummary, 0, len(playlists))
	for _, p := range playlists {
		categories = append(categories, kb.CategorySummary{
			ID:          p.ID,
			Name:        p.Title,
			Description: p.Description,
			PlaylistID:  p.ID,
			Category:    kb.InferCategory(r.rules, p.Title, ""),
			FactCount:   0,
		})
	}

	uploadsID, channelTitle, err := r.lister.UploadsPlaylist(ctx, r.cfg.ChannelID)
	if err != nil {
		return nil, err
	}

	videos, err := r.lister.ListPlaylistItems(ctx, uploadsID, r.cfg.MaxVideos)
	if err != nil {
		return nil, err
	}
	log.Printf("pipeline: processing %d videos", len(videos))

	if !r.extractor.Enabled() {
		log.Printf("pipeline: no language-model key configured, skipping fact extraction")
	}

	builder := kb.NewBuilder()
	for i, video := range videos {
		log.Printf("pipeline: [%d/%d] %s", i+1, len(videos), video.Title)

		transcript, err := r.transcripts.Fetch(ctx, video.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("pipeline: no transcript for %s: %v", video.ID, err)
			continue
		}

		ref := kb.VideoRef{ID: video.ID, Title: video.Title}
		category := kb.InferCategory(r.rules, video.Title, video.Description)

		ext, err := r.extractor.FromTranscript(ctx, video.Title, video.Description, transcript.FullText)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("pipeline: extraction failed for %s: %v", video.ID, err)
			ext = extract.Extraction{}
		}
		builder.AddExtraction(ref, category, ext)

		descBusinesses, err := r.extractor.BusinessesFromDescription(ctx, video.Description)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("pipeline: business extraction failed for %s: %v", video.ID, err)
		} else {
			builder.AddDescriptionBusinesses(ref, descBusinesses)
		}

		if err := wait(ctx, r.cfg.VideoDelay); err != nil {
			return nil, err
		}
	}

	channelName := r.cfg.ChannelName
	if channelName == "" {
		channelName = channelTitle
	}

	meta := kb.Metadata{
		LastUpdated: time.Now(),
		TotalVideos: len(videos),
		TotalFacts:  builder.FactCount(),
		Version:     kb.Version,
		ChannelName: channelName,
		RunID:       uuid.NewString(),
	}

	collections := builder.Snapshot()
	writer := kb.NewWriter(r.cfg.OutputDir)
	if err := writer.WriteAll(meta, categories, collections); err != nil {
		return nil, err
	}

	return &Result{
		Videos:     len(videos),
		Facts:      len(collections.Facts),
		Jokes:      len(collections.Jokes),
		Recipes:    len(collections.Recipes),
		Businesses: len(collections.Businesses),
		Categories: len(categories),
		OutputDir:  r.cfg.OutputDir,
	}, nil
}

// wait sleeps for d or returns early when the context is canceled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
