/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if commonerrors.Any(err, nil) {
		return err
	}
	cause := context.Cause(ctx)
	if commonerrors.Any(cause, context.Canceled, context.DeadlineExceeded) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}
