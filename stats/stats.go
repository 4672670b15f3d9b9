// Package stats collects runtime statistics from the Discord host and
// publishes them into an in-memory store read by commands and other
// consumers.
package stats

import "sync"

// Category names a group of published counters. Every category has exactly
// one writer, the collector that owns it; readers may come from anywhere.
type Category string

const (
	CategoryBot               Category = "bot"
	CategoryGuilds            Category = "guilds"
	CategoryShards            Category = "shards"
	CategoryAudio             Category = "audio"
	CategoryCurrency          Category = "currency"
	CategoryGuildRegions      Category = "guilds_regions"
	CategoryGuildFeatures     Category = "guild_features"
	CategoryGuildVerification Category = "guild_verification"
	CategoryAdventure         Category = "adventure"
)

var categories = []Category{
	CategoryBot,
	CategoryGuilds,
	CategoryShards,
	CategoryAudio,
	CategoryCurrency,
	CategoryGuildRegions,
	CategoryGuildFeatures,
	CategoryGuildVerification,
	CategoryAdventure,
}

// Store is the published-stats namespace: category -> label -> value.
// Collectors replace a category wholesale every cycle, so values never
// accumulate across cycles.
type Store struct {
	mut        sync.RWMutex
	categories map[Category]map[string]float64
}

func NewStore() *Store {
	s := &Store{
		categories: make(map[Category]map[string]float64, len(categories)),
	}

	for _, cat := range categories {
		s.categories[cat] = make(map[string]float64)
	}

	return s
}

// Replace swaps out every label of a category with the given values.
// The map is copied; callers keep ownership of their argument.
func (s *Store) Replace(cat Category, values map[string]float64) {
	copied := make(map[string]float64, len(values))
	for label, value := range values {
		copied[label] = value
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	s.categories[cat] = copied
}

// Category returns a copy of a single category's labels.
func (s *Store) Category(cat Category) map[string]float64 {
	s.mut.RLock()
	defer s.mut.RUnlock()

	values := make(map[string]float64, len(s.categories[cat]))
	for label, value := range s.categories[cat] {
		values[label] = value
	}

	return values
}

// ToMap exports the whole store as a plain nested mapping.
func (s *Store) ToMap() map[string]map[string]float64 {
	s.mut.RLock()
	defer s.mut.RUnlock()

	out := make(map[string]map[string]float64, len(s.categories))
	for cat, values := range s.categories {
		copied := make(map[string]float64, len(values))
		for label, value := range values {
			copied[label] = value
		}

		out[string(cat)] = copied
	}

	return out
}
