package kb

import "testing"

func TestInferCategory(t *testing.T) {
	rules := DefaultCategoryRules()

	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"winter keyword", "Solo Winter Camping", "", "winter_survival"},
		{"building keyword", "Log Cabin Update", "", "building"},
		{"fishing keyword", "Halibut Charter Trip", "", "fishing"},
		{"cooking keyword", "My Favorite Steak Meal", "", "cooking"},
		{"case insensitive", "WINTER Fun", "", "winter_survival"},
		{"keyword in description", "Day Trip", "we went after salmon all morning", "fishing"},
		{"no match", "Quarterly Channel Update", "", "general"},
		{"empty input", "", "", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCategory(rules, tt.title, tt.description)
			if got != tt.want {
				t.Errorf("InferCategory(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

// TestInferCategoryFirstMatchWins verifies that rule order decides ties:
// text hitting several categories always resolves to the earliest rule.
func TestInferCategoryFirstMatchWins(t *testing.T) {
	rules := DefaultCategoryRules()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		// "ice" (winter_survival) beats "fishing" (listed later)
		{"winter beats fishing", "Ice Fishing for Trout", "winter_survival"},
		// "build" (building) beats "camp" (camping)
		{"building beats camping", "We Build a Camp Kitchen", "building"},
		// "fish" (fishing) beats "cook" (cooking)
		{"fishing beats cooking", "Catch and Cook", "fishing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCategory(rules, tt.title, "")
			if got != tt.want {
				t.Errorf("InferCategory(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestInferCategoryDeterministic(t *testing.T) {
	rules := DefaultCategoryRules()
	first := InferCategory(rules, "Ice Fishing for Trout", "")
	for i := 0; i < 100; i++ {
		if got := InferCategory(rules, "Ice Fishing for Trout", ""); got != first {
			t.Fatalf("InferCategory not deterministic: got %q then %q", first, got)
		}
	}
}

func TestInferCategoryEmptyRules(t *testing.T) {
	if got := InferCategory(nil, "Winter Camping", ""); got != DefaultCategory {
		t.Errorf("InferCategory with no rules = %q, want %q", got, DefaultCategory)
	}
}
