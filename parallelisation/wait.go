package parallelisation

import (
	"context"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

// IWaiter is anything which can be waited for e.g. an errgroup.Group.
type IWaiter interface {
	Wait() error
}

// WaitWithContext waits for w unless ctx is done first, in which case the context error is returned and w is left running.
func WaitWithContext(ctx context.Context, w IWaiter) error {
	if w == nil {
		return commonerrors.UndefinedVariable("waiter")
	}
	result := make(chan error, 1)
	go func() {
		result <- w.Wait()
	}()
	select {
	case <-ctx.Done():
		return DetermineContextError(ctx)
	case err := <-result:
		return err
	}
}
