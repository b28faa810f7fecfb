/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
)

type chunkCollector struct {
	chunks [][]byte
}

func (c *chunkCollector) Enqueue(item []byte, more ...[]byte) {
	c.chunks = append(c.chunks, item)
	c.chunks = append(c.chunks, more...)
}

func TestEnqueueChunks(t *testing.T) {
	tests := []struct {
		input     string
		chunkSize int
		expected  []string
	}{
		{input: "", chunkSize: 3},
		{input: "abcdefghij", chunkSize: 4, expected: []string{"abcd", "efgh", "ij"}},
		{input: "abcdefgh", chunkSize: 4, expected: []string{"abcd", "efgh"}},
		{input: "abc", chunkSize: 10, expected: []string{"abc"}},
		{input: "abc", chunkSize: 1, expected: []string{"a", "b", "c"}},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.input, func(t *testing.T) {
			collector := &chunkCollector{}
			chunks, err := enqueueChunks(context.Background(), strings.NewReader(test.input), test.chunkSize, collector)
			require.NoError(t, err)
			assert.Equal(t, len(test.expected), chunks)
			require.Len(t, collector.chunks, len(test.expected))
			for j := range test.expected {
				assert.Equal(t, test.expected[j], string(collector.chunks[j]))
			}
		})
	}
}

func TestEnqueueChunksDoesNotShareBuffers(t *testing.T) {
	collector := &chunkCollector{}
	content := []byte(faker.Paragraph())
	_, err := enqueueChunks(context.Background(), bytes.NewReader(content), 5, collector)
	require.NoError(t, err)
	assert.Equal(t, content, bytes.Join(collector.chunks, nil))
}

func TestEnqueueChunksErrors(t *testing.T) {
	collector := &chunkCollector{}
	_, err := enqueueChunks(context.Background(), strings.NewReader(faker.Word()), 0, collector)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enqueueChunks(ctx, strings.NewReader(faker.Word()), 2, collector)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)

	_, err = enqueueChunks(context.Background(), iotest.ErrReader(commonerrors.ErrUnavailable), 2, collector)
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	assert.Empty(t, collector.chunks)
}

func TestOpenInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := faker.Sentence()
	require.NoError(t, afero.WriteFile(fs, "input.txt", []byte(content), 0o600))

	f, err := openInput(fs, "input.txt", nil)
	require.NoError(t, err)
	read, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, content, string(read))

	_, err = openInput(fs, "missing.txt", nil)
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	_, err = openInput(nil, "input.txt", nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = openInput(fs, StdinInput, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	stdin, err := openInput(nil, StdinInput, strings.NewReader(content))
	require.NoError(t, err)
	read, err = io.ReadAll(stdin)
	require.NoError(t, err)
	assert.Equal(t, content, string(read))
	require.NoError(t, stdin.Close())
}
