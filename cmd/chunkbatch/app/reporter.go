/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"context"
	"fmt"

	"go.uber.org/atomic"

	"github.com/ARM-software/golang-batchqueue/batching"
	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/logs"
)

var _ batching.IBatchHandler[[]byte] = &Reporter{}

// Reporter reports every batch of chunks it is handed over and keeps running totals.
type Reporter struct {
	loggers logs.Loggers
	batches atomic.Int64
	chunks  atomic.Int64
	bytes   atomic.Int64
}

func NewReporter(loggers logs.Loggers) (*Reporter, error) {
	if loggers == nil {
		return nil, commonerrors.ErrNoLogger
	}
	return &Reporter{loggers: loggers}, nil
}

func (r *Reporter) Handle(_ context.Context, batch *batching.Batch[[]byte]) error {
	if batch == nil {
		return commonerrors.UndefinedVariable("batch")
	}
	size := 0
	for i := range batch.Items {
		size += len(batch.Items[i])
	}
	r.loggers.Log(fmt.Sprintf("batch %v: %d chunks, %d bytes (partial=%v)", batch.ID, batch.Len(), size, batch.Partial))
	r.batches.Inc()
	r.chunks.Add(int64(batch.Len()))
	r.bytes.Add(int64(size))
	return nil
}

// Summary returns the number of batches, chunks and bytes reported so far.
func (r *Reporter) Summary() (batches, chunks, bytes int64) {
	return r.batches.Load(), r.chunks.Load(), r.bytes.Load()
}
