/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/ARM-software/golang-batchqueue/cmd/chunkbatch/app"
	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cmd, err := app.NewChunkBatchCommand(afero.NewOsFs(), os.Stdin, os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	err = cmd.ExecuteContext(ctx)
	// interruptions are not failures
	if err != nil && !commonerrors.Any(err, commonerrors.ErrCancelled) {
		return 1
	}
	return 0
}
