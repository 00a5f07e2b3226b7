package kb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ytkb/extract"
)

func testMetadata() Metadata {
	return Metadata{
		LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TotalVideos: 3,
		TotalFacts:  1,
		Version:     Version,
		ChannelName: "Outdoor Boys",
		RunID:       "test-run",
	}
}

func TestWriterWritesAllFiles(t *testing.T) {
	dir := t.TempDir()

	b := NewBuilder()
	b.AddExtraction(testVideo, "fishing", extract.Extraction{
		SurvivalTips: []string{"keep your matches dry"},
	})

	w := NewWriter(dir)
	err := w.WriteAll(testMetadata(), []CategorySummary{{ID: "PL1", Name: "Fishing"}}, b.Snapshot())
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	for _, name := range []string{MetadataFile, CategoriesFile, FactsFile, BusinessesFile, JokesFile, RecipesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, FactsFile))
	if err != nil {
		t.Fatalf("read facts.json: %v", err)
	}
	var facts []Fact
	if err := json.Unmarshal(data, &facts); err != nil {
		t.Fatalf("facts.json is not valid JSON: %v", err)
	}
	if len(facts) != 1 || facts[0].Content != "keep your matches dry" {
		t.Errorf("facts.json content = %+v", facts)
	}

	// Pretty-printed output.
	if !strings.Contains(string(data), "\n  ") {
		t.Error("facts.json is not indented")
	}
}

func TestWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "knowledge-base")

	w := NewWriter(dir)
	if err := w.WriteAll(testMetadata(), nil, NewBuilder().Snapshot()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, MetadataFile)); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestWriterEmptyCollectionsSerializeAsArrays(t *testing.T) {
	dir := t.TempDir()

	if err := NewWriter(dir).WriteAll(testMetadata(), nil, NewBuilder().Snapshot()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	for _, name := range []string{CategoriesFile, FactsFile, BusinessesFile, JokesFile, RecipesFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("%s = %q, want []", name, strings.TrimSpace(string(data)))
		}
	}
}

func TestWriterOverwritesPriorRun(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	first := NewBuilder()
	first.AddExtraction(testVideo, "fishing", extract.Extraction{
		SurvivalTips: []string{"tip one", "tip two"},
	})
	if err := w.WriteAll(testMetadata(), nil, first.Snapshot()); err != nil {
		t.Fatalf("first WriteAll() error = %v", err)
	}

	second := NewBuilder()
	second.AddExtraction(testVideo, "fishing", extract.Extraction{
		SurvivalTips: []string{"only tip"},
	})
	if err := w.WriteAll(testMetadata(), nil, second.Snapshot()); err != nil {
		t.Fatalf("second WriteAll() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FactsFile))
	if err != nil {
		t.Fatalf("read facts.json: %v", err)
	}
	var facts []Fact
	if err := json.Unmarshal(data, &facts); err != nil {
		t.Fatalf("facts.json invalid: %v", err)
	}
	if len(facts) != 1 {
		t.Errorf("got %d facts after overwrite, want 1 (no merging)", len(facts))
	}
}

func TestWriterMetadataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	meta := testMetadata()

	if err := NewWriter(dir).WriteAll(meta, nil, NewBuilder().Snapshot()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		t.Fatalf("read metadata.json: %v", err)
	}

	var got Metadata
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("metadata.json invalid: %v", err)
	}
	if got.TotalVideos != meta.TotalVideos || got.Version != meta.Version || got.ChannelName != meta.ChannelName {
		t.Errorf("metadata round trip mismatch: %+v", got)
	}

	// The frontend reads camelCase keys.
	for _, key := range []string{"lastUpdated", "totalVideos", "totalFacts", "channelName"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("metadata.json missing key %q", key)
		}
	}
}
