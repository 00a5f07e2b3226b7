package kb

import (
	"fmt"

	"ytkb/extract"
)

// Builder accumulates per-video extraction results into the global
// knowledge-base collections. It is not safe for concurrent use; the
// pipeline is strictly sequential.
type Builder struct {
	facts      []Fact
	jokes      []Joke
	recipes    []Recipe
	businesses []Business
}

// NewBuilder returns an empty builder. Collections start as empty (not nil)
// slices so they serialize as [] even when nothing was extracted.
func NewBuilder() *Builder {
	return &Builder{
		facts:      []Fact{},
		jokes:      []Joke{},
		recipes:    []Recipe{},
		businesses: []Business{},
	}
}

// AddExtraction fans one video's transcript extraction out into the
// collections. category is the video's inferred category; it is applied to
// survival tips, while the other fact types carry fixed categories.
func (b *Builder) AddExtraction(video VideoRef, category string, ext extract.Extraction) {
	for _, tip := range ext.SurvivalTips {
		b.addFact(FactSurvivalTip, tip, category, video, []string{"survival", category})
	}
	for _, tech := range ext.BuildingTechniques {
		b.addFact(FactBuildingTechnique, tech, "building", video, []string{"building", "construction"})
	}
	for _, lesson := range ext.LifeLessons {
		b.addFact(FactLifeLesson, lesson, "life_lessons", video, []string{"wisdom", "philosophy"})
	}
	for _, tip := range ext.FishingTips {
		b.addFact(FactFishingTip, tip, "fishing", video, []string{"fishing"})
	}

	for _, gear := range ext.Gear {
		b.addFact(FactGear, gearContent(gear), "gear", video, []string{"gear", "equipment"})
	}

	for _, joke := range ext.DadJokes {
		b.jokes = append(b.jokes, Joke{
			ID:         ContentID(joke),
			Punchline:  joke,
			Context:    video.Title,
			VideoID:    video.ID,
			VideoTitle: video.Title,
		})
	}

	for _, item := range ext.Recipes {
		recipe, ok := asObject(item)
		if !ok {
			continue
		}
		name := getString(recipe, "name")
		if name == "" {
			name = "Unknown Recipe"
		}
		method := getString(recipe, "cooking_method")
		if method == "" {
			method = "campfire"
		}
		b.recipes = append(b.recipes, Recipe{
			ID:            ContentID(getString(recipe, "name")),
			Name:          name,
			Description:   fmt.Sprintf("From %s", video.Title),
			Ingredients:   stringsOf(recipe["ingredients"]),
			Steps:         stringsOf(recipe["steps"]),
			CookingMethod: method,
			VideoID:       video.ID,
			VideoTitle:    video.Title,
		})
	}

	b.addBusinesses(video, ext.Businesses, fmt.Sprintf("Mentioned in %s", video.Title))
}

// AddDescriptionBusinesses records businesses extracted from the video
// description. These are kept separate from transcript-derived mentions;
// the two paths can emit duplicate entries for the same entity and no
// cross-source merge occurs.
func (b *Builder) AddDescriptionBusinesses(video VideoRef, items []any) {
	b.addBusinesses(video, items, fmt.Sprintf("From video description: %s", video.Title))
}

func (b *Builder) addFact(factType FactType, content, category string, video VideoRef, tags []string) {
	b.facts = append(b.facts, Fact{
		ID:         ContentID(content),
		Type:       factType,
		Content:    content,
		Category:   category,
		VideoID:    video.ID,
		VideoTitle: video.Title,
		Tags:       tags,
	})
}

func (b *Builder) addBusinesses(video VideoRef, items []any, description string) {
	for _, item := range items {
		biz, ok := asObject(item)
		if !ok {
			continue
		}
		name := getString(biz, "name")
		if name == "" {
			continue
		}

		bizType := getString(biz, "type")
		if bizType == "" {
			bizType = "other"
		}

		b.businesses = append(b.businesses, Business{
			ID:       ContentID(name),
			Name:     name,
			Type:     bizType,
			Location: getString(biz, "location"),
			Contact:  getString(biz, "contact"),
			Website:  getString(biz, "website"),
			VideoReferences: []VideoReference{
				{VideoID: video.ID, VideoTitle: video.Title},
			},
			Description: description,
		})
	}
}

// Collections is a snapshot of everything accumulated so far.
type Collections struct {
	Facts      []Fact
	Jokes      []Joke
	Recipes    []Recipe
	Businesses []Business
}

// Snapshot returns the accumulated collections.
func (b *Builder) Snapshot() Collections {
	return Collections{
		Facts:      b.facts,
		Jokes:      b.jokes,
		Recipes:    b.recipes,
		Businesses: b.businesses,
	}
}

// FactCount returns the number of facts accumulated so far.
func (b *Builder) FactCount() int { return len(b.facts) }

// gearContent flattens a gear recommendation into one content string.
// Model output that is not an object is coerced to its string form rather
// than rejected.
func gearContent(v any) string {
	gear, ok := asObject(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	name := getString(gear, "name")
	if name == "" {
		name = "Unknown"
	}
	return fmt.Sprintf("%s: %s - %s", name, getString(gear, "use"), getString(gear, "recommendation"))
}

// asObject checks that a parsed-JSON value is an object.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// getString reads a string field from a parsed-JSON object, returning ""
// for missing or non-string values.
func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// stringsOf keeps the string elements of a parsed-JSON array.
func stringsOf(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
