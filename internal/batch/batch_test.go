package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"empty", nil, 10, nil},
		{"single chunk", []int{1, 2}, 10, [][]int{{1, 2}}},
		{"exact multiple", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3}, 2, [][]int{{1, 2}, {3}}},
		{"size below one", []int{1, 2, 3}, 0, [][]int{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunks(tt.items, tt.size))
		})
	}
}

func TestWalk(t *testing.T) {
	var seen []int
	err := Walk(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(chunk []int) error {
		seen = append(seen, chunk...)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestWalkStopsOnError(t *testing.T) {
	boom := errors.New("boom")

	calls := 0
	err := Walk(context.Background(), []int{1, 2, 3, 4}, 2, func(chunk []int) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWalkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, []int{1, 2, 3}, 1, func(chunk []int) error {
		t.Fatal("fn should not run after cancellation")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
