package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	httpclient "ytkb/http"
)

// defaultTimedtextURL is YouTube's public caption endpoint.
const defaultTimedtextURL = "https://www.youtube.com/api/timedtext"

// TranscriptClient fetches video transcripts from the timedtext endpoint.
// Transcript fetches are best-effort: callers are expected to log failures
// and continue without the video.
type TranscriptClient struct {
	http *httpclient.Client

	// BaseURL is the timedtext endpoint. Overridable for tests.
	BaseURL string

	// Language is the caption language code requested (default "en").
	Language string
}

// NewTranscriptClient creates a transcript client. A nil httpc uses the
// package default client.
func NewTranscriptClient(httpc *httpclient.Client) *TranscriptClient {
	if httpc == nil {
		httpc = httpclient.New(nil)
	}
	return &TranscriptClient{
		http:     httpc,
		BaseURL:  defaultTimedtextURL,
		Language: "en",
	}
}

// timedtextResponse is the raw json3 timedtext payload.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	TStartMs    int64              `json:"tStartMs"`
	DDurationMs int64              `json:"dDurationMs"`
	Segs        []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// Fetch retrieves the caption track for a video and concatenates the timed
// segments into a single plain-text blob in original order.
func (tc *TranscriptClient) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	if videoID == "" {
		return nil, &TranscriptError{VideoID: videoID, Err: fmt.Errorf("video id required")}
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", tc.Language)
	params.Set("fmt", "json3")

	resp, err := tc.http.Get(ctx, tc.BaseURL+"?"+params.Encode())
	if err != nil {
		return nil, &TranscriptError{VideoID: videoID, Err: classifyFetchError(err)}
	}

	// The endpoint reports a missing track as an empty 200 body.
	if len(resp.Body) == 0 {
		return nil, &TranscriptError{VideoID: videoID, Err: ErrNoCaptions}
	}

	segments, err := parseTimedtext(resp.Body)
	if err != nil {
		return nil, &TranscriptError{VideoID: videoID, Err: err}
	}
	if len(segments) == 0 {
		return nil, &TranscriptError{VideoID: videoID, Err: ErrNoCaptions}
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}

	return &Transcript{
		VideoID:  videoID,
		Segments: segments,
		FullText: strings.Join(texts, " "),
	}, nil
}

// classifyFetchError maps HTTP failures onto the package sentinels.
func classifyFetchError(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusNotFound:
			return ErrNoCaptions
		case http.StatusForbidden:
			return ErrCaptionsDisabled
		}
	}
	return err
}

// parseTimedtext converts the json3 payload into ordered segments.
func parseTimedtext(data []byte) ([]TranscriptSegment, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal timedtext JSON: %w", err)
	}

	var segments []TranscriptSegment
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		trimmed := strings.TrimSpace(text.String())
		if trimmed == "" {
			continue
		}

		segments = append(segments, TranscriptSegment{
			Start:    float64(event.TStartMs) / 1000.0,
			Duration: float64(event.DDurationMs) / 1000.0,
			Text:     trimmed,
		})
	}

	return segments, nil
}

// Close releases resources held by the client.
func (tc *TranscriptClient) Close() error {
	if tc.http != nil {
		return tc.http.Close()
	}
	return nil
}
