/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parallelisation provides helpers to coordinate goroutines, cancellations and teardown.
package parallelisation

import (
	"context"
	"time"
)

// Schedule calls function `f` with a `period` and an `offset` in the background until the context is cancelled.
func Schedule(ctx context.Context, period time.Duration, offset time.Duration, f func(time.Time)) {
	go RepeatUntilCancelled(ctx, period, offset, f)
}

// RepeatUntilCancelled is similar to Schedule but blocks until the context is cancelled.
func RepeatUntilCancelled(ctx context.Context, period time.Duration, offset time.Duration, f func(time.Time)) {
	if period <= 0 || f == nil {
		<-ctx.Done()
		return
	}
	// Position the first execution
	first := time.Now().Truncate(period).Add(offset)
	if first.Before(time.Now()) {
		first = first.Add(period)
	}
	firstC := time.NewTimer(time.Until(first))
	defer firstC.Stop()

	// Receiving from a nil channel blocks forever
	t := &time.Ticker{C: nil}
	defer func() {
		if t.C != nil {
			t.Stop()
		}
	}()

	for {
		select {
		case v := <-firstC.C:
			// The ticker has to be started before f as it can take some time to finish
			t = time.NewTicker(period)
			f(v)
		case v := <-t.C:
			f(v)
		case <-ctx.Done():
			return
		}
	}
}
