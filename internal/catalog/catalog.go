// Package catalog holds the static Ìgálá name dataset and the pure
// search/filter logic over it. The dataset is bundled at build time and is
// never mutated at runtime; user-generated content lives in the database,
// not here.
package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"
)

//go:embed names.json
var namesJSON []byte

// NameEntry is one catalog entry. Field names mirror the published dataset.
type NameEntry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Meaning        string `json:"meaning"`
	Pronunciation  string `json:"pronunciation"`
	Gender         string `json:"gender"`
	Category       string `json:"category"`
	OriginStory    string `json:"origin_story"`
	RelatedProverb string `json:"related_proverb"`
}

// Category is a fixed tag grouping catalog entries.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Data is the full bundled dataset. Treat as read-only.
type Data struct {
	Names      []NameEntry `json:"names"`
	Categories []Category  `json:"categories"`
}

var (
	loadOnce sync.Once
	loaded   *Data
	loadErr  error
	byID     map[string]*NameEntry
)

// Load parses the embedded dataset once and returns it. Callers must not
// mutate the returned slices.
func Load() (*Data, error) {
	loadOnce.Do(func() {
		var d Data
		if err := json.Unmarshal(namesJSON, &d); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded names dataset: %w", err)
			return
		}
		byID = make(map[string]*NameEntry, len(d.Names))
		for i := range d.Names {
			byID[d.Names[i].ID] = &d.Names[i]
		}
		loaded = &d
	})
	return loaded, loadErr
}

// MustLoad is Load for program startup paths where a broken bundle is fatal.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// ByID returns the entry with the given id, or nil.
func ByID(id string) *NameEntry {
	if _, err := Load(); err != nil {
		return nil
	}
	return byID[id]
}
