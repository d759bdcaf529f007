package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedEntry is one question/answer pair in a YAML seed file.
type SeedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// defaultSeed is used when the catalog is empty and no seed file is configured.
var defaultSeed = []SeedEntry{
	{Question: "Capital of Italy", Answer: "Rome"},
	{Question: "Capital of France", Answer: "Paris"},
	{Question: "Capital of Spain", Answer: "Madrid"},
	{Question: "Capital of Portugal", Answer: "Lisbon"},
}

// LoadSeedFile parses a YAML file containing a list of seed entries.
func LoadSeedFile(path string) ([]SeedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []SeedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return entries, nil
}

// Seed populates an empty catalog. A non-empty catalog is left untouched.
// When path is empty the built-in starter set is used.
func Seed(ctx context.Context, c Catalog, path string) (int, error) {
	n, err := c.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	entries := defaultSeed
	if path != "" {
		entries, err = LoadSeedFile(path)
		if err != nil {
			return 0, err
		}
	}

	created := 0
	for _, e := range entries {
		if _, err := c.Create(ctx, e.Question, e.Answer); err != nil {
			return created, fmt.Errorf("seed quiz %q: %w", e.Question, err)
		}
		created++
	}
	return created, nil
}
