/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package batching pulls batches out of a threshold queue and hands them over to a handler.
package batching

import (
	"context"
	"iter"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-batchqueue/collection/queue"
	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/idgen"
	"github.com/ARM-software/golang-batchqueue/parallelisation"
	"github.com/ARM-software/golang-batchqueue/retry"
)

const drainPollPeriod = 10 * time.Millisecond

// DrainConsumer is the consumer index of the batch delivered by Drain.
const DrainConsumer = -1

// Batcher runs consumers which repeatedly wait for at least MinBatchSize elements (or for the flush timeout) and
// deliver whatever was flushed to a handler. Failed deliveries are retried according to the retry policy and
// dropped once the policy is exhausted.
type Batcher[T any] struct {
	mu          deadlock.Mutex
	queue       queue.IThresholdQueue[T]
	handler     IBatchHandler[T]
	cfg         Configuration
	logger      logr.Logger
	metrics     *Metrics
	cancelStore *parallelisation.CancelFunctionStore
	group       *errgroup.Group
	running     bool
	closed      bool
}

// NewBatcher returns a Batcher pulling batches from q. It does not start consuming until Start is called.
func NewBatcher[T any](q queue.IThresholdQueue[T], handler IBatchHandler[T], cfg *Configuration, opts ...Option) (*Batcher[T], error) {
	if q == nil {
		return nil, commonerrors.UndefinedVariable("queue")
	}
	if handler == nil {
		return nil, commonerrors.UndefinedVariable("batch handler")
	}
	if cfg == nil {
		return nil, commonerrors.UndefinedVariable("configuration")
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for i := range opts {
		if opts[i] != nil {
			o = opts[i](o)
		}
	}
	return &Batcher[T]{
		queue:   q,
		handler: handler,
		cfg:     *cfg,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// Enqueue submits elements to the underlying queue (see queue.IThresholdQueue).
func (b *Batcher[T]) Enqueue(item T, more ...T) {
	b.queue.Enqueue(item, more...)
	b.metrics.ItemsEnqueued(1 + len(more))
	b.metrics.SetQueueLength(b.queue.Len())
}

// EnqueueSequence submits a sequence of elements to the underlying queue as a single event.
func (b *Batcher[T]) EnqueueSequence(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	count := 0
	b.queue.EnqueueSequence(func(yield func(T) bool) {
		for v := range seq {
			count++
			if !yield(v) {
				return
			}
		}
	})
	b.metrics.ItemsEnqueued(count)
	b.metrics.SetQueueLength(b.queue.Len())
}

// Len returns the number of elements waiting to be batched.
func (b *Batcher[T]) Len() int {
	return b.queue.Len()
}

// Start spawns the consumers. They run until Stop or Close is called or ctx is cancelled.
func (b *Batcher[T]) Start(ctx context.Context) error {
	err := parallelisation.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return commonerrors.New(commonerrors.ErrCancelled, "batcher closed")
	}
	if b.running {
		return commonerrors.New(commonerrors.ErrConflict, "batcher already started")
	}
	consumerCtx, cancel := context.WithCancel(ctx)
	b.cancelStore = parallelisation.NewCancelFunctionsStore()
	b.cancelStore.RegisterCancelFunction(cancel)
	b.group = &errgroup.Group{}
	for i := 0; i < b.cfg.Consumers; i++ {
		consumer := i
		b.group.Go(func() error {
			return b.consume(consumerCtx, consumer)
		})
	}
	if b.metrics != nil {
		parallelisation.Schedule(consumerCtx, b.cfg.MetricsRefreshPeriod, 0, func(time.Time) {
			b.metrics.SetQueueLength(b.queue.Len())
		})
	}
	b.running = true
	b.logger.Info("batcher started", "consumers", b.cfg.Consumers, "minBatchSize", b.cfg.MinBatchSize, "flushTimeout", b.cfg.FlushTimeout)
	return nil
}

// IsRunning states whether consumers are running.
func (b *Batcher[T]) IsRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Stop cancels the consumers and waits for them to return unless ctx is cancelled first.
// Batches already flushed are delivered before it returns. Elements still buffered stay in the queue and the
// Batcher can be started again.
func (b *Batcher[T]) Stop(ctx context.Context) error {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return nil
	}
	b.running = false
	cancelStore := b.cancelStore
	group := b.group
	b.mu.Unlock()

	cancelStore.Cancel()
	err := parallelisation.WaitWithContext(ctx, group)
	b.logger.Info("batcher stopped", "buffered", b.queue.Len())
	return err
}

// Close stops the consumers and closes the queue.
func (b *Batcher[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	closeStore := parallelisation.NewCloseFunctionStore(parallelisation.StopOnFirstError, parallelisation.Sequential)
	closeStore.RegisterCloseFunction(func() error {
		return b.Stop(context.Background())
	})
	closeStore.RegisterCloser(b.queue)
	return closeStore.Close()
}

// Drain waits for the consumers to empty the queue, stops them and delivers whatever is left as a final batch.
// It is meant to be called once producers are done: elements enqueued concurrently may be delivered or left behind.
// Without a flush timeout, elements below the threshold are not waited for. The Batcher can be started again.
func (b *Batcher[T]) Drain(ctx context.Context) error {
	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	parallelisation.RepeatUntilCancelled(pollCtx, drainPollPeriod, 0, func(time.Time) {
		if b.isSettled() {
			stopPolling()
		}
	})
	err := parallelisation.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	err = b.Stop(ctx)
	if err != nil {
		return err
	}
	if b.queue.IsEmpty() {
		return nil
	}
	items, err := b.queue.Dequeue(ctx, 1, queue.WithoutTimeout)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		b.logger.V(1).Info("delivering remaining elements", "count", len(items))
		b.deliver(ctx, &Batch[T]{
			Items:    items,
			Partial:  len(items) < b.cfg.MinBatchSize,
			Consumer: DrainConsumer,
		})
	}
	return nil
}

// isSettled states whether running consumers will not flush anything more on their own.
func (b *Batcher[T]) isSettled() bool {
	if !b.IsRunning() {
		return true
	}
	length := b.queue.Len()
	return length == 0 || (!b.cfg.HasFlushTimeout() && length < b.cfg.MinBatchSize)
}

func (b *Batcher[T]) dequeueOptions() []queue.DequeueOption {
	if !b.cfg.HasFlushTimeout() {
		return []queue.DequeueOption{queue.WithoutTimeout}
	}
	return []queue.DequeueOption{
		queue.WithTimeout(b.cfg.FlushTimeout),
		queue.WithTimeoutCallback(func(count int) {
			b.logger.V(1).Info("flush timeout reached", "count", count, "minBatchSize", b.cfg.MinBatchSize)
		}),
	}
}

func (b *Batcher[T]) consume(ctx context.Context, consumer int) error {
	opts := b.dequeueOptions()
	for {
		items, err := b.queue.Dequeue(ctx, b.cfg.MinBatchSize, opts...)
		if err != nil {
			if commonerrors.Any(err, commonerrors.ErrCancelled, commonerrors.ErrTimeout) {
				return nil
			}
			b.logger.Error(err, "consumer failed", "consumer", consumer)
			return err
		}
		if len(items) == 0 {
			continue
		}
		b.deliver(ctx, &Batch[T]{
			Items:    items,
			Partial:  len(items) < b.cfg.MinBatchSize,
			Consumer: consumer,
		})
	}
}

// deliver hands a batch over to the handler. A flushed batch is no longer in the queue so its delivery is not
// interrupted by consumers being stopped.
func (b *Batcher[T]) deliver(ctx context.Context, batch *Batch[T]) {
	ctx = context.WithoutCancel(ctx)
	id, err := idgen.GenerateTimeOrderedUUID()
	if err != nil {
		b.logger.Error(err, "could not identify batch", "consumer", batch.Consumer)
	}
	batch.ID = id
	err = retry.RetryOnError(ctx, b.logger, &b.cfg.Retry, func() error {
		return b.handler.Handle(ctx, batch)
	}, "batch delivery failed")
	b.metrics.BatchProcessed(batch.Len(), batch.Partial, err)
	b.metrics.SetQueueLength(b.queue.Len())
	if err != nil {
		b.logger.Error(err, "dropping batch", "batch", batch.ID, "size", batch.Len(), "consumer", batch.Consumer)
	}
}
