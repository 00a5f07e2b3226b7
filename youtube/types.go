// Package youtube provides channel and playlist listing via the YouTube
// Data API v3, and transcript fetching via the public timedtext endpoint.
package youtube

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for listing and transcript operations.
var (
	ErrChannelNotFound  = errors.New("youtube: channel not found")
	ErrNoCaptions       = errors.New("youtube: no captions available")
	ErrCaptionsDisabled = errors.New("youtube: captions disabled or restricted")
)

// PlaylistInfo contains metadata about a channel playlist.
type PlaylistInfo struct {
	// ID is the YouTube playlist ID.
	ID string `json:"id"`

	// Title is the playlist title.
	Title string `json:"title"`

	// Description is the playlist description, possibly empty.
	Description string `json:"description"`

	// VideoCount is the number of videos in the playlist.
	VideoCount int64 `json:"video_count"`
}

// VideoInfo contains metadata about a video inside a playlist.
type VideoInfo struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"video_id"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the video description, possibly empty.
	Description string `json:"description"`

	// PublishedAt is when the video was published.
	PublishedAt time.Time `json:"published_at"`

	// PlaylistID is the playlist this video was listed from.
	PlaylistID string `json:"playlist_id"`
}

// TranscriptSegment is one timed caption line.
type TranscriptSegment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`

	// Duration is the segment duration in seconds.
	Duration float64 `json:"duration"`

	// Text is the caption text.
	Text string `json:"text"`
}

// Transcript holds the full caption track of one video.
type Transcript struct {
	VideoID  string              `json:"video_id"`
	Segments []TranscriptSegment `json:"segments"`
	FullText string              `json:"full_text"`
}

// ListerError wraps listing errors with context about what failed.
type ListerError struct {
	// Op names the listing operation ("playlists", "channel", "playlist-items").
	Op string
	// Channel is the channel or playlist being listed.
	Channel string
	// Err is the underlying error.
	Err error
}

func (e *ListerError) Error() string {
	return fmt.Sprintf("list %s for %s: %v", e.Op, e.Channel, e.Err)
}

func (e *ListerError) Unwrap() error { return e.Err }

// TranscriptError wraps transcript fetch errors with the video id.
type TranscriptError struct {
	VideoID string
	Err     error
}

func (e *TranscriptError) Error() string {
	return fmt.Sprintf("transcript for %s: %v", e.VideoID, e.Err)
}

func (e *TranscriptError) Unwrap() error { return e.Err }
