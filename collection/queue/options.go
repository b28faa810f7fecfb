/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-batchqueue/field"
	"github.com/ARM-software/golang-batchqueue/logs/logrimp"
)

// DefaultDequeueOptions returns options waiting forever for the threshold.
func DefaultDequeueOptions() *DequeueOptions {
	return &DequeueOptions{}
}

// WithDequeueOptions applies all the options to the default options.
func WithDequeueOptions(opts ...DequeueOption) *DequeueOptions {
	o := DefaultDequeueOptions()
	for i := range opts {
		if opts[i] != nil {
			o = opts[i](o)
		}
	}
	return o
}

// WithTimeout bounds the time spent waiting for the threshold. A zero timeout fires straight away.
// Note: it does not apply while the queue is empty: the wait for a first element is unbounded.
func WithTimeout(timeout time.Duration) DequeueOption {
	return func(o *DequeueOptions) *DequeueOptions {
		if o == nil {
			o = DefaultDequeueOptions()
		}
		if timeout < 0 {
			timeout = 0
		}
		o.Timeout = field.ToOptionalDuration(timeout)
		return o
	}
}

// WithoutTimeout waits for the threshold forever.
var WithoutTimeout DequeueOption = func(o *DequeueOptions) *DequeueOptions {
	if o == nil {
		o = DefaultDequeueOptions()
	}
	o.Timeout = nil
	return o
}

// WithTimeoutCallback registers a function called with the number of buffered elements if the timeout fires.
// The buffer is flushed before the callback runs, outside the queue lock: elements it enqueues stay in the queue
// for the next consumer.
func WithTimeoutCallback(onTimeout func(count int)) DequeueOption {
	return func(o *DequeueOptions) *DequeueOptions {
		if o == nil {
			o = DefaultDequeueOptions()
		}
		o.OnTimeout = onTimeout
		return o
	}
}

// HasTimeout states whether a deadline applies.
func (o *DequeueOptions) HasTimeout() bool {
	return o != nil && o.Timeout != nil
}

// ThresholdQueueOption configures a ThresholdQueue.
type ThresholdQueueOption func(*thresholdQueueOptions) *thresholdQueueOptions

type thresholdQueueOptions struct {
	logger logr.Logger
}

func defaultThresholdQueueOptions() *thresholdQueueOptions {
	return &thresholdQueueOptions{logger: logrimp.NewNoopLogger()}
}

// WithLogger sets the logger used to report timeouts and teardown (at verbosity 1).
func WithLogger(logger logr.Logger) ThresholdQueueOption {
	return func(o *thresholdQueueOptions) *thresholdQueueOptions {
		if o == nil {
			o = defaultThresholdQueueOptions()
		}
		if logger.GetSink() != nil {
			o.logger = logger
		}
		return o
	}
}
