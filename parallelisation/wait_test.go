package parallelisation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
)

// chanWaiter returns whatever is sent on its channel.
type chanWaiter chan error

func (w chanWaiter) Wait() error {
	return <-w
}

func TestWaitWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	for _, expected := range []error{nil, commonerrors.ErrUnexpected} {
		w := make(chanWaiter, 1)
		w <- expected
		err := WaitWithContext(context.Background(), w)
		if expected == nil {
			assert.NoError(t, err)
		} else {
			errortest.AssertError(t, err, expected)
		}
	}

	t.Run("returns as soon as the context is done", func(t *testing.T) {
		w := make(chanWaiter)
		defer close(w)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		errortest.AssertError(t, WaitWithContext(ctx, w), commonerrors.ErrTimeout)

		ctx, cancel = context.WithCancel(context.Background())
		cancel()
		errortest.AssertError(t, WaitWithContext(ctx, w), commonerrors.ErrCancelled)
	})

	t.Run("errgroup", func(t *testing.T) {
		var g errgroup.Group
		g.Go(func() error {
			time.Sleep(10 * time.Millisecond)
			return nil
		})
		require.NoError(t, WaitWithContext(context.Background(), &g))
	})

	t.Run("undefined waiter", func(t *testing.T) {
		errortest.AssertError(t, WaitWithContext(context.Background(), nil), commonerrors.ErrUndefined)
	})
}
