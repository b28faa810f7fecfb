/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"

	"github.com/ARM-software/golang-batchqueue/batching"
	"github.com/ARM-software/golang-batchqueue/collection/queue"
	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/parallelisation"
)

// Run reads the input in chunks and reports the batches they are grouped into. It returns once the input has been
// fully read and every chunk has been handed over, or as soon as ctx is cancelled.
func Run(ctx context.Context, cfg *Configuration, fs afero.Fs, stdin io.Reader, out io.Writer) (err error) {
	if cfg == nil {
		return commonerrors.UndefinedVariable("configuration")
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	loggers, logger, err := newLoggers(cfg.LogFormat, cfg.Verbose, out)
	if err != nil {
		return
	}
	closers := parallelisation.NewCloseFunctionStore(parallelisation.ExecuteAll, parallelisation.SequentialInReverse)
	closers.RegisterCloser(loggers)
	defer func() {
		closeErr := closers.Close()
		if err == nil {
			err = closeErr
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := batching.NewMetrics(registry)
	if err != nil {
		return
	}
	if cfg.HasMetrics() {
		server, sErr := startMetricsServer(cfg.MetricsAddress, registry, logger)
		if sErr != nil {
			err = sErr
			return
		}
		closers.RegisterCloser(server)
	}

	input, err := openInput(fs, cfg.Input, stdin)
	if err != nil {
		return
	}
	closers.RegisterCloser(input)

	reporter, err := NewReporter(loggers)
	if err != nil {
		return
	}
	batcher, err := batching.NewBatcher[[]byte](queue.NewThresholdQueue[[]byte](queue.WithLogger(logger)), reporter, &cfg.Batching, batching.WithLogger(logger), batching.WithMetrics(metrics))
	if err != nil {
		return
	}
	closers.RegisterCloser(batcher)
	err = batcher.Start(ctx)
	if err != nil {
		return
	}

	chunks, err := enqueueChunks(ctx, input, cfg.ChunkSize, batcher)
	if err != nil {
		return
	}
	logger.V(1).Info("input read", "input", cfg.Input, "chunks", chunks)
	err = batcher.Drain(ctx)
	if err != nil {
		return
	}
	batches, reported, size := reporter.Summary()
	loggers.Log(fmt.Sprintf("done: %d chunks, %d bytes in %d batches", reported, size, batches))
	return
}
