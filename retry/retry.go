/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package retry performs actions again when they fail, following a retry policy.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/parallelisation"
)

const maxJitter = 25 * time.Millisecond

// RetryIf will retry fn when the value returned from retryConditionFn is true
func RetryIf(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retryConditionFn func(err error) bool) error {
	if retryPolicy == nil {
		return commonerrors.UndefinedVariable("retry policy configuration")
	}
	if fn == nil {
		return commonerrors.UndefinedVariable("function to retry")
	}
	err := parallelisation.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	if !retryPolicy.Enabled {
		return fn()
	}
	if retryConditionFn == nil {
		retryConditionFn = retry.IsRecoverable
	}
	var retryType retry.DelayTypeFunc
	switch {
	case retryPolicy.LinearBackOffEnabled:
		retryType = retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)
	case retryPolicy.BackOffEnabled:
		retryType = retry.BackOffDelay
	default:
		retryType = retry.FixedDelay
	}

	return commonerrors.ConvertContextError(
		retry.Do(
			fn,
			retry.OnRetry(func(n uint, err error) {
				logger.Error(err, fmt.Sprintf("%v (attempt #%v)", msgOnRetry, n+1), "attempt", n+1)
			}),
			retry.Delay(retryPolicy.RetryWaitMin),
			retry.MaxDelay(retryPolicy.RetryWaitMax),
			retry.MaxJitter(maxJitter),
			retry.DelayType(retryType),
			retry.Attempts(attempts(retryPolicy)),
			retry.RetryIf(retryConditionFn),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
		),
	)
}

// RetryOnError allows the caller to retry fn when the error returned by fn is retriable
// as in of the type specified by retriableErr. If no retriable error is specified, any error is retried.
func RetryOnError(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retriableErr ...error) error {
	return RetryIf(ctx, logger, retryPolicy, fn, msgOnRetry, func(err error) bool {
		if len(retriableErr) == 0 {
			return err != nil
		}
		return commonerrors.Any(err, retriableErr...)
	})
}

// attempts never returns 0 as it would mean retrying forever.
func attempts(retryPolicy *RetryPolicyConfiguration) uint {
	if retryPolicy.RetryMax <= 0 {
		return 1
	}
	return uint(retryPolicy.RetryMax) + 1
}
