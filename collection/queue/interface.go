/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import (
	"context"
	"iter"
	"time"
)

//go:generate go tool mockgen -destination=../../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-batchqueue/collection/$GOPACKAGE IThresholdQueue

// IQueue specifies the behaviour of a first-in, first-out (FIFO) collection.
// It is inspired by the work of https://github.com/hayageek/threadsafe/ and
// https://github.com/golang-collections/collections.
type IQueue[T any] interface {
	// Enqueue adds elements to the queue.
	Enqueue(value ...T)
	// EnqueueSequence adds a sequence of elements to the queue.
	EnqueueSequence(value iter.Seq[T])
	// Dequeue removes and returns an element from the queue. It returns ok true if the queue is not empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. It returns ok true if the queue is not empty.
	Peek() (element T, ok bool)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Values returns all the elements in the queue. The queue will be empty as a result.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
}

// IThresholdQueue describes an unbounded FIFO buffer whose consumers wait for a minimum number of
// elements or for a timeout, whichever comes first. Any successful dequeue returns the whole content of the buffer.
type IThresholdQueue[T any] interface {
	// Enqueue appends elements to the queue. When more than one element is given, empty elements are discarded.
	Enqueue(item T, more ...T)
	// EnqueueSequence appends a sequence of elements as a single event. Empty elements are discarded.
	EnqueueSequence(seq iter.Seq[T])
	// Dequeue waits until at least minCount elements are buffered (or the timeout elapses) and flushes the buffer.
	Dequeue(ctx context.Context, minCount int, opts ...DequeueOption) ([]T, error)
	// Len returns the number of buffered elements.
	Len() int
	// Waiting returns the number of consumers currently waiting for a threshold to be reached.
	Waiting() int
	// WaitingForFirstElement returns the number of consumers which found the queue empty and wait for the next enqueue.
	WaitingForFirstElement() int
	// IsEmpty states whether nothing is buffered.
	IsEmpty() bool
	// Close releases all pending consumers and disarms their timers.
	Close() error
}

// DequeueOption configures a single Dequeue call.
type DequeueOption func(*DequeueOptions) *DequeueOptions

// DequeueOptions describes how long a consumer is ready to wait for its threshold to be met.
type DequeueOptions struct {
	// Timeout is the maximum time to wait for the threshold once at least one element is buffered. Nil means forever.
	Timeout *time.Duration
	// OnTimeout is called with the number of buffered elements when the timeout fires before the threshold is met.
	OnTimeout func(count int)
}
