package scan

import (
	"context"
	"sync"
)

// runPool executes fn for indexes 0..n-1 across a fixed number of
// workers. The first error cancels the derived context, remaining
// indexes are drained without running, and that error is returned.
//
// Each fn call writes only to its own result slot, so no locking is
// needed around results; the pool publishes nothing until every worker
// has returned.
func runPool(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue // drain after cancellation
				}
				if err := fn(ctx, i); err != nil {
					fail(err)
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
