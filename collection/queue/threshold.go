/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/parallelisation"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

var _ IThresholdQueue[int] = &ThresholdQueue[int]{}

// ThresholdQueue is an unbounded FIFO buffer decoupling producers from consumers which want to process
// elements in batches of at least N without being held indefinitely.
//
// A consumer calling Dequeue on an empty queue first waits for the next enqueue (all such consumers share the same
// gate and are released together). It then either flushes the buffer straight away if its threshold is met or
// waits for the threshold or its timeout, whichever comes first. Every resolution flushes the entire buffer,
// which may hold more elements than requested.
//
// When a single enqueue satisfies several consumers, only the first one resolved receives the elements: the others
// receive an empty batch. Satisfied waiters are resolved in reverse registration order.
//
// All methods are safe for concurrent use.
type ThresholdQueue[T any] struct {
	mu          deadlock.Mutex
	items       IQueue[T]
	waiters     []*waiter[T]
	gate        *emptyGate
	gateWaiters int
	closed      chan struct{}
	isClosed    bool
	logger      logr.Logger
}

// NewThresholdQueue returns an empty queue.
func NewThresholdQueue[T any](opts ...ThresholdQueueOption) *ThresholdQueue[T] {
	options := defaultThresholdQueueOptions()
	for i := range opts {
		if opts[i] != nil {
			options = opts[i](options)
		}
	}
	return &ThresholdQueue[T]{
		items:   NewQueue[T](),
		waiters: make([]*waiter[T], 0),
		closed:  make(chan struct{}),
		logger:  options.logger,
	}
}

// Enqueue appends elements in argument order. A single element is appended as is, even if empty. When more than
// one element is provided, empty elements (see reflection.IsEmpty) are discarded and nothing happens if none is left.
// Enqueue never blocks waiting for consumers. It is a no-op once the queue is closed.
func (q *ThresholdQueue[T]) Enqueue(item T, more ...T) {
	if len(more) == 0 {
		q.push([]T{item})
		return
	}
	q.push(withoutEmptyElements(func(yield func(T) bool) {
		if !yield(item) {
			return
		}
		for i := range more {
			if !yield(more[i]) {
				return
			}
		}
	}))
}

// EnqueueSequence appends all the non-empty elements of a sequence as a single enqueue event.
func (q *ThresholdQueue[T]) EnqueueSequence(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	q.push(withoutEmptyElements(seq))
}

func withoutEmptyElements[T any](seq iter.Seq[T]) (items []T) {
	for v := range seq {
		if !reflection.IsEmpty(v) {
			items = append(items, v)
		}
	}
	return
}

func (q *ThresholdQueue[T]) push(items []T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.isClosed {
		return
	}
	q.items.Enqueue(items...)
	if q.gate != nil {
		q.gate.open(q.items.Len())
		q.gate = nil
	}
	q.wakeWaiters()
}

// wakeWaiters resolves every waiter whose threshold is met by the count reached at this enqueue event.
func (q *ThresholdQueue[T]) wakeWaiters() {
	count := q.items.Len()
	for i := len(q.waiters) - 1; i >= 0; i-- {
		w := q.waiters[i]
		if count < w.minCount {
			continue
		}
		q.waiters = slices.Delete(q.waiters, i, i+1)
		if w.settle(waiterResolvedByThreshold) {
			w.deliver(q.flush(), nil)
		}
	}
}

// Dequeue waits for at least minCount elements and returns everything buffered.
//
// If the queue is empty, it first waits for the next enqueue; that wait is not bounded by WithTimeout, only by ctx.
// If that enqueue met minCount but another consumer released by it drained the buffer first, an empty batch is
// returned.
// Otherwise, if minCount is not yet reached, it waits for the threshold or for the timeout, if any. On timeout, the
// callback set via WithTimeoutCallback is called with the number of buffered elements and whatever is buffered
// (possibly nothing) is returned. A timeout is not an error.
//
// An error is only returned if minCount is less than 1, if ctx is cancelled (buffered elements are then left in
// the queue) or if the queue is closed.
func (q *ThresholdQueue[T]) Dequeue(ctx context.Context, minCount int, opts ...DequeueOption) ([]T, error) {
	if minCount < 1 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "the minimum number of elements to dequeue must be at least 1 [%d]", minCount)
	}
	err := parallelisation.DetermineContextError(ctx)
	if err != nil {
		return nil, err
	}
	options := WithDequeueOptions(opts...)

	q.mu.Lock()
	if q.isClosed {
		q.mu.Unlock()
		return nil, errClosed()
	}
	if q.items.IsEmpty() {
		gate := q.waitForFirstItem()
		q.gateWaiters++
		q.mu.Unlock()
		select {
		case <-gate.Done():
		case <-q.closed:
			err = errClosed()
		case <-ctx.Done():
			err = parallelisation.DetermineContextError(ctx)
		}
		q.mu.Lock()
		q.gateWaiters--
		if err == nil && q.isClosed {
			err = errClosed()
		}
		if err != nil {
			q.mu.Unlock()
			return nil, err
		}
		if q.items.IsEmpty() && gate.count >= minCount {
			// another consumer released by the same enqueue took the elements.
			q.mu.Unlock()
			return make([]T, 0), nil
		}
	}

	if q.items.Len() >= minCount {
		snapshot := q.flush()
		q.mu.Unlock()
		return snapshot, nil
	}

	w := newWaiter[T](minCount)
	if options.HasTimeout() {
		onTimeout := options.OnTimeout
		w.timer = time.AfterFunc(*options.Timeout, func() {
			q.expire(w, onTimeout)
		})
	}
	q.waiters = append(q.waiters, w)
	q.mu.Unlock()

	select {
	case r := <-w.result:
		return r.items, r.err
	case <-ctx.Done():
		q.mu.Lock()
		if w.settle(waiterCancelled) {
			q.removeWaiter(w)
			q.mu.Unlock()
			return nil, parallelisation.DetermineContextError(ctx)
		}
		q.mu.Unlock()
		// resolved concurrently: the flushed elements must not be lost.
		r := <-w.result
		return r.items, r.err
	}
}

// waitForFirstItem returns the gate shared by all consumers waiting on an empty queue. Lock must be held.
func (q *ThresholdQueue[T]) waitForFirstItem() *emptyGate {
	if q.gate == nil {
		q.gate = newEmptyGate()
	}
	return q.gate
}

func (q *ThresholdQueue[T]) expire(w *waiter[T], onTimeout func(int)) {
	q.mu.Lock()
	if !w.settle(waiterResolvedByTimeout) {
		q.mu.Unlock()
		return
	}
	q.removeWaiter(w)
	snapshot := q.flush()
	q.mu.Unlock()
	q.logger.V(1).Info("threshold not reached before timeout", "threshold", w.minCount, "count", len(snapshot))
	if onTimeout != nil {
		onTimeout(len(snapshot))
	}
	w.deliver(snapshot, nil)
}

// removeWaiter is idempotent. Lock must be held.
func (q *ThresholdQueue[T]) removeWaiter(w *waiter[T]) {
	if i := slices.Index(q.waiters, w); i >= 0 {
		q.waiters = slices.Delete(q.waiters, i, i+1)
	}
}

// flush empties the buffer and returns its content in FIFO order. Lock must be held.
func (q *ThresholdQueue[T]) flush() []T {
	return slices.AppendSeq(make([]T, 0, q.items.Len()), q.items.Values())
}

// Len returns the number of buffered elements. Thresholds of waiting consumers are not taken into account.
func (q *ThresholdQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// IsEmpty states whether nothing is buffered.
func (q *ThresholdQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Waiting returns the number of consumers waiting for their threshold (consumers waiting for a first element are not counted).
func (q *ThresholdQueue[T]) Waiting() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiters)
}

// WaitingForFirstElement returns the number of consumers which found the queue empty and wait for the next enqueue.
func (q *ThresholdQueue[T]) WaitingForFirstElement() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.gateWaiters
}

// Close disarms all pending timers and releases every waiting consumer with commonerrors.ErrCancelled.
// Subsequent Dequeue calls fail and subsequent Enqueue calls are ignored. Buffered elements are kept.
func (q *ThresholdQueue[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.isClosed {
		return nil
	}
	q.isClosed = true
	close(q.closed)
	q.gate = nil
	released := 0
	for i := range q.waiters {
		w := q.waiters[i]
		if w.settle(waiterCancelled) {
			w.deliver(nil, errClosed())
			released++
		}
	}
	q.waiters = nil
	q.logger.V(1).Info("queue closed", "released", released, "buffered", q.items.Len())
	return nil
}

func errClosed() error {
	return commonerrors.New(commonerrors.ErrCancelled, "queue closed")
}
