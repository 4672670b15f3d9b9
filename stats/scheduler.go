package stats

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultInterval separates two successful collection cycles.
	DefaultInterval = 60 * time.Second

	// DefaultRetryDelay is the shortened pause after a failed cycle.
	DefaultRetryDelay = 10 * time.Second
)

// Scheduler runs every collector concurrently on a fixed interval, forever.
// Collectors that wrap their own failures never fail a cycle; anything that
// escapes them (shard or currency errors, cancellation) is logged and the
// cycle is retried after a shorter pause.
type Scheduler struct {
	Interval   time.Duration
	RetryDelay time.Duration

	collectors *Collectors
	log        *zap.SugaredLogger

	ready     chan struct{}
	readyOnce sync.Once
}

func NewScheduler(collectors *Collectors, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Interval:   DefaultInterval,
		RetryDelay: DefaultRetryDelay,
		collectors: collectors,
		log:        log,
		ready:      make(chan struct{}),
	}
}

// Ready is closed after the first cycle that completes without a top-level
// failure. Consumers that want populated statistics wait on it.
func (s *Scheduler) Ready() <-chan struct{} {
	return s.ready
}

// Run blocks until hostReady closes, then loops collection cycles until the
// context is cancelled. It always returns the context's error.
func (s *Scheduler) Run(ctx context.Context, hostReady <-chan struct{}) error {
	select {
	case <-hostReady:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.log.Info("host ready, starting stats collection")

	for {
		delay := s.Interval
		if err := s.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			s.log.Errorf("stats cycle failed: %v", err)
			delay = s.RetryDelay
		} else {
			s.readyOnce.Do(func() {
				close(s.ready)
			})
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// cycle runs all collectors concurrently and waits for every one of them,
// regardless of individual failures.
func (s *Scheduler) cycle(ctx context.Context) error {
	var eg errgroup.Group

	for _, collect := range []func(context.Context) error{
		s.collectors.collectGuilds,
		s.collectors.collectCurrency,
		s.collectors.collectShards,
		s.collectors.collectAudio,
		s.collectors.collectAdventure,
	} {
		collect := collect
		eg.Go(func() error {
			return collect(ctx)
		})
	}

	return eg.Wait()
}
