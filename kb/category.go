package kb

import "strings"

// CategoryRule maps a category name to the keywords that select it.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// DefaultCategoryRules is the ordered keyword table for the Outdoor Boys
// channel. Order matters: the first rule with a keyword hit wins, so more
// specific categories come before broader ones.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{"winter_survival", []string{"winter", "cold", "snow", "ice", "freeze", "survival", "shelter"}},
		{"building", []string{"build", "cabin", "construction", "sauna", "house", "shed"}},
		{"fishing", []string{"fish", "fishing", "catch", "salmon", "trout", "halibut"}},
		{"camping", []string{"camp", "camping", "tent", "outdoor"}},
		{"cooking", []string{"cook", "recipe", "food", "meal", "eat"}},
		{"gear", []string{"gear", "equipment", "review", "tool"}},
		{"alaska", []string{"alaska", "wild", "wilderness", "adventure"}},
		{"family", []string{"family", "kids", "boys"}},
	}
}

// DefaultCategory is returned when no rule matches.
const DefaultCategory = "general"

// InferCategory returns the first rule whose keyword list matches the
// lower-cased concatenation of title and description, or DefaultCategory
// if none do.
func InferCategory(rules []CategoryRule, title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Name
			}
		}
	}
	return DefaultCategory
}
