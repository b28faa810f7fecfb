/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import "time"

type waiterState int

const (
	waiterPending waiterState = iota
	waiterResolvedByThreshold
	waiterResolvedByTimeout
	waiterCancelled
)

func (s waiterState) String() string {
	switch s {
	case waiterPending:
		return "pending"
	case waiterResolvedByThreshold:
		return "threshold"
	case waiterResolvedByTimeout:
		return "timeout"
	case waiterCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type waiterResult[T any] struct {
	items []T
	err   error
}

// waiter is a consumer waiting for a threshold. Its state only leaves pending once, under the queue lock.
type waiter[T any] struct {
	minCount int
	timer    *time.Timer
	result   chan waiterResult[T]
	state    waiterState
}

func newWaiter[T any](minCount int) *waiter[T] {
	return &waiter[T]{
		minCount: minCount,
		result:   make(chan waiterResult[T], 1),
		state:    waiterPending,
	}
}

// settle moves the waiter out of pending and disarms its timer. It returns false if it was already settled,
// so that whichever of threshold, timeout or cancellation comes second is a no-op.
func (w *waiter[T]) settle(state waiterState) bool {
	if w.state != waiterPending {
		return false
	}
	w.state = state
	if w.timer != nil {
		w.timer.Stop()
	}
	return true
}

// deliver hands over the result. It must only be called once, after a successful settle.
func (w *waiter[T]) deliver(items []T, err error) {
	w.result <- waiterResult[T]{items: items, err: err}
}
