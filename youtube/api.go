package youtube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the largest page the Data API allows for list calls.
const maxPageSize = 50

// APIClient lists playlists and videos through the YouTube Data API v3.
// Page fetches are paced by a rate limiter to stay friendly to the quota;
// API errors are not retried and propagate to the caller, which treats
// listing failures as fatal for the run.
type APIClient struct {
	service *youtube.Service
	pace    *rate.Limiter
}

// NewAPIClient creates a Data API client. pagesPerSecond limits how fast
// consecutive result pages are requested; 0 disables pacing.
func NewAPIClient(ctx context.Context, apiKey string, pagesPerSecond float64) (*APIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	var pace *rate.Limiter
	if pagesPerSecond > 0 {
		pace = rate.NewLimiter(rate.Limit(pagesPerSecond), 1)
	}

	return &APIClient{service: service, pace: pace}, nil
}

// ListPlaylists fetches all playlists of the channel, following pagination
// until exhausted.
func (c *APIClient) ListPlaylists(ctx context.Context, channelID string) ([]PlaylistInfo, error) {
	var playlists []PlaylistInfo

	pageToken := ""
	for {
		call := c.service.Playlists.List([]string{"snippet", "contentDetails"}).
			ChannelId(channelID).
			MaxResults(maxPageSize).
			PageToken(pageToken).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			return nil, &ListerError{Op: "playlists", Channel: channelID, Err: err}
		}

		for _, item := range resp.Items {
			playlist := PlaylistInfo{ID: item.Id}
			if item.Snippet != nil {
				playlist.Title = item.Snippet.Title
				playlist.Description = item.Snippet.Description
			}
			if item.ContentDetails != nil {
				playlist.VideoCount = item.ContentDetails.ItemCount
			}
			playlists = append(playlists, playlist)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
	}

	return playlists, nil
}

// UploadsPlaylist resolves the channel's uploads playlist id and returns it
// together with the channel title.
func (c *APIClient) UploadsPlaylist(ctx context.Context, channelID string) (string, string, error) {
	call := c.service.Channels.List([]string{"contentDetails", "snippet"}).
		Id(channelID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", "", &ListerError{Op: "channel", Channel: channelID, Err: err}
	}
	if len(resp.Items) == 0 {
		return "", "", &ListerError{Op: "channel", Channel: channelID, Err: ErrChannelNotFound}
	}

	channel := resp.Items[0]
	if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil {
		return "", "", &ListerError{Op: "channel", Channel: channelID, Err: fmt.Errorf("no uploads playlist")}
	}

	var title string
	if channel.Snippet != nil {
		title = channel.Snippet.Title
	}

	return channel.ContentDetails.RelatedPlaylists.Uploads, title, nil
}

// ListPlaylistItems fetches videos from a playlist, following pagination.
// max > 0 caps the number of videos returned.
func (c *APIClient) ListPlaylistItems(ctx context.Context, playlistID string, max int) ([]VideoInfo, error) {
	var videos []VideoInfo

	pageToken := ""
	for {
		call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(maxPageSize).
			PageToken(pageToken).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			return nil, &ListerError{Op: "playlist-items", Channel: playlistID, Err: err}
		}

		for _, item := range resp.Items {
			video := VideoInfo{PlaylistID: playlistID}
			if item.ContentDetails != nil {
				video.ID = item.ContentDetails.VideoId
			}
			if item.Snippet != nil {
				video.Title = item.Snippet.Title
				video.Description = item.Snippet.Description
				if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					video.PublishedAt = t
				}
			}
			videos = append(videos, video)
			if max > 0 && len(videos) >= max {
				return videos, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
	}

	return videos, nil
}

func (c *APIClient) wait(ctx context.Context) error {
	if c.pace == nil {
		return nil
	}
	return c.pace.Wait(ctx)
}
