// Package parallel runs work over a list with a bounded number of goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// MapBounded maps a list of ~[]T to []R using a provided map function f.
// It does this in parallel with a maximum of inflight workers.
// An inflight of less than 1 is treated as 1.
//
// Context cancellation: If the context is canceled, MapBounded will
// immediately stop mapping any new items, wait for workers running to exit,
// then return the context error.
func MapBounded[S ~[]T, T, R any](
	ctx context.Context, list S, f func(int, T) R, inflight int,
) (result []R, err error) {
	if inflight < 1 {
		inflight = 1
	}

	result = make([]R, len(list))
	sema := semaphore.NewWeighted(int64(inflight))

	for i, v := range list {
		// Acquire may succeed on a canceled context if there is room
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sema.Acquire(ctx, 1); err != nil {
			break
		}

		go func(i int, v T) {
			defer sema.Release(1)
			result[i] = f(i, v)
		}(i, v)
	}

	// wait for everyone to exit, even if ctx is done
	_ = sema.Acquire(context.Background(), int64(inflight))

	if err != nil {
		return nil, err
	}
	return result, nil
}
