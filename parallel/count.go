package parallel

import (
	"context"

	"github.com/pkg/errors"

	"go.lepak.sg/multiset/counter"
)

type shardResult[E any, N counter.Number] struct {
	c   *counter.Counter[E, N]
	err error
}

// Count counts each shard into its own counter, with at most inflight
// shards being counted at a time, and then adds all the counters together
// in shard order. Counters are made by fresh, and filled in by count.
//
// If count fails for any shard, Count returns the first such error,
// in shard order.
func Count[S ~[]T, T, E any, N counter.Number](
	ctx context.Context,
	shards S,
	fresh func() *counter.Counter[E, N],
	count func(T, *counter.Counter[E, N]) error,
	inflight int,
) (*counter.Counter[E, N], error) {
	results, err := MapBounded(ctx, shards, func(_ int, shard T) shardResult[E, N] {
		c := fresh()
		return shardResult[E, N]{c: c, err: count(shard, c)}
	}, inflight)
	if err != nil {
		return nil, err
	}

	total := fresh()
	for i, r := range results {
		if r.err != nil {
			return nil, errors.Wrapf(r.err, "shard %d", i)
		}
		total.Add(r.c)
	}

	return total, nil
}
