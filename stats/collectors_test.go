package stats

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/predaa/martine/audio"
	"github.com/predaa/martine/bank"
	"github.com/predaa/martine/host"
	"github.com/predaa/martine/topgg"
)

type stubSettings struct {
	lightmode bool
	detailed  bool
	topgg     bool
	err       error
}

func (s stubSettings) Lightmode(ctx context.Context) (bool, error) { return s.lightmode, s.err }
func (s stubSettings) Detailed(ctx context.Context) (bool, error)  { return s.detailed, s.err }
func (s stubSettings) TopGG(ctx context.Context) (bool, error)     { return s.topgg, s.err }

func (s stubSettings) SetLightmode(ctx context.Context, enabled bool) error { return nil }
func (s stubSettings) SetDetailed(ctx context.Context, enabled bool) error  { return nil }
func (s stubSettings) SetTopGG(ctx context.Context, enabled bool) error     { return nil }

type stubHost struct {
	snap      *host.Snapshot
	latencies []time.Duration
	err       error
}

func (h stubHost) Snapshot(ctx context.Context) (*host.Snapshot, error) {
	return h.snap, h.err
}

func (h stubHost) Latencies() []time.Duration {
	return h.latencies
}

type stubBank struct {
	accounts []bank.Account
	err      error

	// failures greater than zero makes the next calls fail, counting down.
	failures int64
	calls    int64
}

func (b *stubBank) AllAccounts(ctx context.Context) ([]bank.Account, error) {
	atomic.AddInt64(&b.calls, 1)
	if atomic.AddInt64(&b.failures, -1) >= 0 {
		return nil, context.DeadlineExceeded
	}

	return b.accounts, b.err
}

type stubAdventure struct {
	users map[string]map[string]any
	err   error
}

func (a stubAdventure) AllUsers(ctx context.Context) (map[string]map[string]any, error) {
	return a.users, a.err
}

type stubCounters map[string]string

func (c stubCounters) Counter(ctx context.Context, name string) (string, error) {
	return c[name], nil
}

type stubVotes struct {
	votes *topgg.Votes
}

func (v stubVotes) Votes(ctx context.Context) *topgg.Votes {
	return v.votes
}

func newTestCollectors(settings stubSettings, h stubHost) *Collectors {
	return &Collectors{
		Store:    NewStore(),
		Host:     h,
		Settings: settings,
		Bank:     &stubBank{},
		Players:  audio.NewRegistry(),
		Log:      zap.NewNop().Sugar(),
	}
}
