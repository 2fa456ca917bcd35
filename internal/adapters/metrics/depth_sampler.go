package metrics

import (
	"context"
	"time"
)

// QueueDepthFunc reports the pending transfer count of every manager, keyed by manager id
type QueueDepthFunc func(ctx context.Context) (map[int]int, error)

// SampleQueueDepths refreshes the queue_depth gauge from depths once immediately and then
// every interval until ctx is done. Errors are passed to onError and sampling continues.
func SampleQueueDepths(ctx context.Context, interval time.Duration, depths QueueDepthFunc, onError func(error)) {
	sample := func() {
		values, err := depths(ctx)
		if err != nil {
			if onError != nil && ctx.Err() == nil {
				onError(err)
			}
			return
		}
		for managerID, depth := range values {
			SetQueueDepth(managerID, depth)
		}
	}

	sample()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sample()
		}
	}
}
