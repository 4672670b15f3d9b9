package stats

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"

	"github.com/predaa/martine/host"
)

func newTestScheduler(bank *stubBank) *Scheduler {
	c := newTestCollectors(stubSettings{lightmode: true}, stubHost{snap: &host.Snapshot{}})
	c.Bank = bank

	s := NewScheduler(c, zap.NewNop().Sugar())
	s.Interval = time.Millisecond
	s.RetryDelay = time.Millisecond

	return s
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func TestSchedulerReady(t *testing.T) {
	s := newTestScheduler(&stubBank{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, closedChan())
	}()

	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never became ready")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSchedulerRetriesUntilCleanCycle(t *testing.T) {
	bank := &stubBank{failures: 2}
	s := newTestScheduler(bank)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Run(ctx, closedChan())

	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never recovered from failures")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt64(&bank.calls), int64(3), "failed cycles should be retried")
}

func TestSchedulerWaitsForHost(t *testing.T) {
	s := newTestScheduler(&stubBank{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, make(chan struct{}))
	}()

	select {
	case <-s.Ready():
		t.Fatal("scheduler ran before the host was ready")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Zero(t, atomic.LoadInt64(&s.collectors.Bank.(*stubBank).calls))

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
