/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-batchqueue/logs"
)

const testTimeout = 10 * time.Second

func testRunConfiguration(input, format string) *Configuration {
	cfg := DefaultConfiguration()
	cfg.Input = input
	cfg.ChunkSize = 8
	cfg.LogFormat = format
	cfg.Batching.MinBatchSize = 3
	cfg.Batching.FlushTimeout = 20 * time.Millisecond
	cfg.Batching.Consumers = 2
	return cfg
}

func expectedChunks(content string, chunkSize int) int {
	return (len(content) + chunkSize - 1) / chunkSize
}

func TestRun(t *testing.T) {
	for _, format := range []string{LogFormatZap, LogFormatLogrus, LogFormatStd} {
		t.Run(format, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()
			fs := afero.NewMemMapFs()
			content := faker.Paragraph()
			require.NoError(t, afero.WriteFile(fs, "input.txt", []byte(content), 0o600))
			cfg := testRunConfiguration("input.txt", format)

			out := &logs.StringWriter{}
			require.NoError(t, Run(ctx, cfg, fs, nil, out))
			logged := out.GetFullContent()
			assert.Contains(t, logged, fmt.Sprintf("done: %d chunks, %d bytes in", expectedChunks(content, cfg.ChunkSize), len(content)))
			assert.Contains(t, logged, "bytes (partial=")
		})
	}
}

func TestRunFromStdin(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	content := strings.Repeat("a", 25)
	cfg := testRunConfiguration(StdinInput, LogFormatStd)
	// chunks which do not make a full batch are delivered once the input is exhausted.
	cfg.Batching.FlushTimeout = 0
	cfg.Batching.Consumers = 1

	out := &logs.StringWriter{}
	require.NoError(t, Run(ctx, cfg, afero.NewMemMapFs(), strings.NewReader(content), out))
	logged := out.GetFullContent()
	assert.Contains(t, logged, "done: 4 chunks, 25 bytes in")
}

func TestRunFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := afero.NewMemMapFs()
	out := &logs.StringWriter{}

	errortest.AssertError(t, Run(context.Background(), nil, fs, nil, out), commonerrors.ErrUndefined)
	cfg := testRunConfiguration("input.txt", LogFormatStd)
	cfg.ChunkSize = 0
	errortest.AssertError(t, Run(context.Background(), cfg, fs, nil, out), commonerrors.ErrInvalid)
	errortest.AssertError(t, Run(context.Background(), testRunConfiguration("missing.txt", LogFormatStd), fs, nil, out), commonerrors.ErrNotFound)
	errortest.AssertError(t, Run(context.Background(), testRunConfiguration("input.txt", LogFormatStd), fs, nil, nil), commonerrors.ErrUndefined)

	require.NoError(t, afero.WriteFile(fs, "input.txt", []byte(faker.Sentence()), 0o600))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	errortest.AssertError(t, Run(ctx, testRunConfiguration("input.txt", LogFormatStd), fs, nil, out), commonerrors.ErrCancelled)
}
