package batching_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-batchqueue/batching"
	"github.com/ARM-software/golang-batchqueue/collection/queue"
	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-batchqueue/logs/logstest"
	"github.com/ARM-software/golang-batchqueue/mocks"
	"github.com/ARM-software/golang-batchqueue/retry"
)

func TestBatcherWithMockedHandler(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	item := faker.Sentence()
	done := make(chan struct{})
	handler := mocks.NewMockIBatchHandler[string](ctlr)
	gomock.InOrder(
		handler.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(commonerrors.ErrUnavailable),
		handler.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, batch *batching.Batch[string]) error {
			defer close(done)
			assert.Equal(t, []string{item}, batch.Items)
			assert.False(t, batch.Partial)
			return nil
		}),
	)
	cfg := batching.DefaultConfiguration()
	cfg.Retry = retry.RetryPolicyConfiguration{Enabled: true, RetryMax: 1}
	b, err := batching.NewBatcher[string](queue.NewThresholdQueue[string](), handler, cfg, batching.WithLogger(logstest.NewTestLogger(t)))
	require.NoError(t, err)
	require.NoError(t, b.Start(ctx))
	b.Enqueue(item)
	select {
	case <-done:
	case <-ctx.Done():
		require.FailNow(t, "batch was never delivered")
	}
	require.NoError(t, b.Close())
}

func TestBatcherWithFailingQueue(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	handler := mocks.NewMockIBatchHandler[int](ctlr)
	q := mocks.NewMockIThresholdQueue[int](ctlr)
	q.EXPECT().Dequeue(gomock.Any(), 2, gomock.Any()).Return(nil, commonerrors.ErrUnexpected).Times(1)
	q.EXPECT().Len().Return(0).AnyTimes()
	q.EXPECT().Close().Return(nil).Times(1)

	cfg := batching.DefaultConfiguration()
	cfg.MinBatchSize = 2
	cfg.FlushTimeout = 0
	b, err := batching.NewBatcher[int](q, handler, cfg, batching.WithLogger(logstest.NewTestLogger(t)))
	require.NoError(t, err)
	require.NoError(t, b.Start(ctx))
	errortest.AssertError(t, b.Stop(ctx), commonerrors.ErrUnexpected)
	require.NoError(t, b.Close())
}

func TestBatcherForwardsElementsToQueue(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()

	handler := mocks.NewMockIBatchHandler[string](ctlr)
	q := mocks.NewMockIThresholdQueue[string](ctlr)
	first, second := faker.Word(), faker.Word()
	q.EXPECT().Enqueue(first, second).Times(1)
	q.EXPECT().EnqueueSequence(gomock.Any()).Times(1)
	q.EXPECT().Len().Return(2).AnyTimes()

	b, err := batching.NewBatcher[string](q, handler, batching.DefaultConfiguration())
	require.NoError(t, err)
	b.Enqueue(first, second)
	b.EnqueueSequence(func(yield func(string) bool) {
		yield(first)
	})
	assert.Equal(t, 2, b.Len())
}

func TestBatcherDrainFlushesRemainingElements(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	items := []string{faker.Word(), faker.Word()}
	handler := mocks.NewMockIBatchHandler[string](ctlr)
	q := mocks.NewMockIThresholdQueue[string](ctlr)
	q.EXPECT().IsEmpty().Return(false).Times(1)
	q.EXPECT().Dequeue(gomock.Any(), 1, gomock.Any()).Return(items, nil).Times(1)
	q.EXPECT().Len().Return(0).AnyTimes()
	handler.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, batch *batching.Batch[string]) error {
		assert.Equal(t, items, batch.Items)
		assert.False(t, batch.Partial)
		assert.Equal(t, batching.DrainConsumer, batch.Consumer)
		return nil
	}).Times(1)

	b, err := batching.NewBatcher[string](q, handler, batching.DefaultConfiguration())
	require.NoError(t, err)
	require.NoError(t, b.Drain(ctx))
}
