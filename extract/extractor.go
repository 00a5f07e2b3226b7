package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Truncation limits applied when embedding video text into prompts.
const (
	maxDescriptionChars = 500
	maxTranscriptChars  = 12000
)

// Token budgets per prompt, matching the size of the expected output.
const (
	transcriptMaxTokens  = 4096
	descriptionMaxTokens = 1000
)

// LLM is the completion surface the extractor needs.
type LLM interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Extraction holds everything pulled out of one video transcript. The gear,
// recipe, and business lists carry parsed-JSON values rather than typed
// records because the model is not guaranteed to honor the schema; the
// aggregator validates shape at read time.
type Extraction struct {
	SurvivalTips       []string
	BuildingTechniques []string
	LifeLessons        []string
	DadJokes           []string
	FishingTips        []string
	Gear               []any
	Recipes            []any
	Businesses         []any
}

// Extractor prompts the model for structured facts. A nil LLM disables
// extraction: every call returns empty results without error.
type Extractor struct {
	llm LLM
}

// NewExtractor creates an extractor. llm may be nil to disable extraction.
func NewExtractor(llm LLM) *Extractor {
	return &Extractor{llm: llm}
}

// Enabled reports whether a language model is configured.
func (e *Extractor) Enabled() bool {
	return e != nil && e.llm != nil
}

// FromTranscript extracts structured facts from a video transcript.
func (e *Extractor) FromTranscript(ctx context.Context, title, description, transcript string) (Extraction, error) {
	if !e.Enabled() {
		return Extraction{}, nil
	}

	prompt := transcriptPrompt(title, description, transcript)
	text, err := e.llm.Complete(ctx, prompt, transcriptMaxTokens)
	if err != nil {
		return Extraction{}, fmt.Errorf("extract: %w", err)
	}

	return decodeExtraction(text)
}

// BusinessesFromDescription extracts business mentions from a video
// description. The result elements are parsed-JSON values; the aggregator
// checks each is an object with a name before use.
func (e *Extractor) BusinessesFromDescription(ctx context.Context, description string) ([]any, error) {
	if !e.Enabled() {
		return nil, nil
	}

	text, err := e.llm.Complete(ctx, descriptionPrompt(description), descriptionMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extract businesses: %w", err)
	}

	var businesses []any
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &businesses); err != nil {
		return nil, fmt.Errorf("extract businesses: decode: %w", err)
	}
	return businesses, nil
}

func transcriptPrompt(title, description, transcript string) string {
	return fmt.Sprintf(`Analyze this Outdoor Boys YouTube video transcript and extract structured information.

Video Title: %s
Video Description: %s

Transcript (first 12000 chars):
%s

Extract the following into valid JSON:
{
    "survival_tips": ["specific actionable tip 1", "tip 2"],
    "building_techniques": ["technique with detail"],
    "life_lessons": ["wisdom/philosophy shared"],
    "dad_jokes": ["any jokes Zach tells"],
    "gear_recommendations": [{"name": "item name", "use": "what it's for", "recommendation": "why recommended"}],
    "recipes": [{"name": "dish name", "ingredients": ["ing1"], "steps": ["step1"], "cooking_method": "campfire|grill|indoor"}],
    "businesses_mentioned": [{"name": "business name", "type": "charter|restaurant|store|lodge|guide", "location": "city, state", "contact": "if mentioned"}],
    "fishing_tips": ["specific fishing advice"]
}

Only include items that are clearly mentioned in the transcript. Be specific and detailed.
Return ONLY valid JSON, no other text.`,
		title, truncate(description, maxDescriptionChars), truncate(transcript, maxTranscriptChars))
}

func descriptionPrompt(description string) string {
	return fmt.Sprintf(`Extract any businesses, services, or locations mentioned in this YouTube video description:

%s

Look for:
- Charter services (fishing, hunting guides)
- Restaurants/lodges
- Equipment stores/brands with links
- Specific locations with contact info

Return as JSON array:
[{"name": "", "type": "charter|restaurant|store|lodge|guide|other", "location": "", "website": "", "contact": ""}]

Return ONLY valid JSON array, no other text. Return [] if no businesses found.`, description)
}

// decodeExtraction parses the model's text response. The response must be a
// JSON object; each known field is read defensively so a partially
// malformed object still yields whatever lists are usable.
func decodeExtraction(text string) (Extraction, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &obj); err != nil {
		return Extraction{}, fmt.Errorf("extract: decode: %w", err)
	}

	return Extraction{
		SurvivalTips:       stringList(obj["survival_tips"]),
		BuildingTechniques: stringList(obj["building_techniques"]),
		LifeLessons:        stringList(obj["life_lessons"]),
		DadJokes:           stringList(obj["dad_jokes"]),
		FishingTips:        stringList(obj["fishing_tips"]),
		Gear:               anyList(obj["gear_recommendations"]),
		Recipes:            anyList(obj["recipes"]),
		Businesses:         anyList(obj["businesses_mentioned"]),
	}, nil
}

// stringList keeps the string elements of a parsed-JSON array.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// anyList returns v if it is a parsed-JSON array.
func anyList(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	return items
}

// stripCodeFence removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line ("json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
