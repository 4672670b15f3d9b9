package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/predaa/martine/adventure"
	"github.com/predaa/martine/audio"
	"github.com/predaa/martine/bank"
	"github.com/predaa/martine/host"
	"github.com/predaa/martine/settings"
	"github.com/predaa/martine/topgg"
)

// CounterSource supplies named lifetime counters, possibly formatted for
// humans. Satisfied by lifetime.Tracker.
type CounterSource interface {
	Counter(ctx context.Context, name string) (string, error)
}

// VoteSource supplies external vote counts, nil meaning no data this cycle.
// Satisfied by topgg.Client.
type VoteSource interface {
	Votes(ctx context.Context) *topgg.Votes
}

// Collectors gathers every statistics domain from the host and publishes the
// results into the store. Adventure, Counters and Votes are optional; a nil
// value disables the corresponding data.
type Collectors struct {
	Store    *Store
	Host     host.Provider
	Settings settings.Service
	Bank     bank.Service

	Adventure adventure.Service
	Players   *audio.Registry
	Counters  CounterSource
	Votes     VoteSource

	Log *zap.SugaredLogger
}

// counters is a per-cycle working tally, discarded after publishing.
type counters map[string]float64

// sets tallies unique IDs per label, flattened to cardinalities at the end
// of a pass.
type sets map[string]map[string]struct{}

func (s sets) add(label, id string) {
	ids, ok := s[label]
	if !ok {
		ids = make(map[string]struct{})
		s[label] = ids
	}

	ids[id] = struct{}{}
}

func (s sets) flattenInto(c counters) {
	for label, ids := range s {
		c[label] = float64(len(ids))
	}
}
