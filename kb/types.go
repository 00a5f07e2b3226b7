// Package kb defines the knowledge-base record shapes and the aggregation
// and serialization logic that turns per-video extraction results into the
// JSON files consumed by the chat frontend.
package kb

import "time"

// FactType classifies an extracted fact.
type FactType string

const (
	FactSurvivalTip       FactType = "survival_tip"
	FactBuildingTechnique FactType = "building_technique"
	FactLifeLesson        FactType = "life_lesson"
	FactFishingTip        FactType = "fishing_tip"
	FactGear              FactType = "gear"
)

// Fact is an atomic extracted statement attributed to one source video.
// Field names follow the frontend's camelCase contract.
type Fact struct {
	ID         string   `json:"id"`
	Type       FactType `json:"type"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	VideoID    string   `json:"videoId"`
	VideoTitle string   `json:"videoTitle"`
	Tags       []string `json:"tags"`
}

// Joke is a joke told in a video, with the video title as context.
type Joke struct {
	ID         string `json:"id"`
	Punchline  string `json:"punchline"`
	Context    string `json:"context"`
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
}

// Recipe is a dish prepared in a video.
type Recipe struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	Steps         []string `json:"steps"`
	CookingMethod string   `json:"cookingMethod"`
	VideoID       string   `json:"videoId"`
	VideoTitle    string   `json:"videoTitle"`
}

// VideoReference points a business record back at the video that mentioned it.
type VideoReference struct {
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
}

// Business is a real-world business or service mentioned in a video or its
// description. The transcript-derived and description-derived extraction
// paths can both emit a record for the same entity; no cross-source merge
// is performed.
type Business struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Location        string           `json:"location"`
	Contact         string           `json:"contact"`
	Website         string           `json:"website"`
	VideoReferences []VideoReference `json:"videoReferences"`
	Description     string           `json:"description"`
}

// CategorySummary is the playlist-derived category record written to
// categories.json.
type CategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PlaylistID  string `json:"playlistId"`
	Category    string `json:"category"`
	FactCount   int    `json:"factCount"`
}

// Metadata describes one build run. It is written to metadata.json.
type Metadata struct {
	LastUpdated time.Time `json:"lastUpdated"`
	TotalVideos int       `json:"totalVideos"`
	TotalFacts  int       `json:"totalFacts"`
	Version     string    `json:"version"`
	ChannelName string    `json:"channelName"`
	RunID       string    `json:"runId"`
}

// Version is the knowledge-base schema version written to metadata.json.
const Version = "1.0.0"

// VideoRef identifies the source video while aggregating.
type VideoRef struct {
	ID    string
	Title string
}
