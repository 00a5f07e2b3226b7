package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ytkb/internal/storage"
)

// Output file names, fixed for the consuming frontend.
const (
	MetadataFile   = "metadata.json"
	CategoriesFile = "categories.json"
	FactsFile      = "facts.json"
	BusinessesFile = "businesses.json"
	JokesFile      = "jokes.json"
	RecipesFile    = "recipes.json"
)

// Writer serializes a finished knowledge base into its output directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir. The directory is created on the
// first write if it does not exist.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteAll writes the six knowledge-base files, overwriting prior content.
// Each file is written atomically; nothing is written until the whole run
// has finished aggregating.
func (w *Writer) WriteAll(meta Metadata, categories []CategorySummary, c Collections) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if categories == nil {
		categories = []CategorySummary{}
	}

	files := []struct {
		name string
		data any
	}{
		{MetadataFile, meta},
		{CategoriesFile, categories},
		{FactsFile, c.Facts},
		{BusinessesFile, c.Businesses},
		{JokesFile, c.Jokes},
		{RecipesFile, c.Recipes},
	}

	for _, f := range files {
		if err := w.writeJSON(f.name, f.data); err != nil {
			return err
		}
	}

	return nil
}

// writeJSON pretty-prints v into name under the output directory.
func (w *Writer) writeJSON(name string, v any) error {
	writer, err := storage.NewAtomicWriter(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		writer.Abort()
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := writer.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
