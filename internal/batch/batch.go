// Package batch walks large slices in fixed-size chunks so bulk aggregation
// over tens of thousands of records stays bounded and interruptible.
package batch

import "context"

// Chunks splits a slice into consecutive chunks of at most size elements.
// A size below 1 yields a single chunk.
func Chunks[T any](items []T, size int) [][]T {
	if size < 1 {
		size = len(items)
		if size == 0 {
			return nil
		}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		chunks = append(chunks, items[:size])
		items = items[size:]
	}

	if len(items) > 0 {
		chunks = append(chunks, items)
	}

	return chunks
}

// Walk calls fn for every chunk, stopping early when the context is
// cancelled or fn fails.
func Walk[T any](ctx context.Context, items []T, size int, fn func([]T) error) error {
	for _, chunk := range Chunks(items, size) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(chunk); err != nil {
			return err
		}
	}

	return nil
}
