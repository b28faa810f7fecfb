/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"context"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/spf13/afero"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/parallelisation"
)

// chunkQueue is where chunks are enqueued.
type chunkQueue interface {
	Enqueue(item []byte, more ...[]byte)
}

// openInput opens the input file on fs or returns stdin if input is StdinInput.
func openInput(fs afero.Fs, input string, stdin io.Reader) (io.ReadCloser, error) {
	if input == StdinInput {
		if stdin == nil {
			return nil, commonerrors.UndefinedVariable("standard input")
		}
		return io.NopCloser(stdin), nil
	}
	if fs == nil {
		return nil, commonerrors.UndefinedVariable("file system")
	}
	f, err := fs.Open(input)
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "could not open input '%v'", input)
	}
	return f, nil
}

// enqueueChunks reads r in chunks of chunkSize bytes until EOF and enqueues each of them. The last chunk may be shorter.
func enqueueChunks(ctx context.Context, r io.Reader, chunkSize int, q chunkQueue) (chunks int, err error) {
	if chunkSize < 1 {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "chunk size must be at least 1 [%d]", chunkSize)
		return
	}
	reader := contextio.NewReader(ctx, r)
	for {
		chunk := make([]byte, chunkSize)
		n, rErr := io.ReadFull(reader, chunk)
		if n > 0 {
			q.Enqueue(chunk[:n])
			chunks++
		}
		switch {
		case rErr == nil:
		case commonerrors.Any(rErr, io.EOF, io.ErrUnexpectedEOF):
			return
		default:
			err = parallelisation.DetermineContextError(ctx)
			if err == nil {
				err = commonerrors.WrapError(commonerrors.ErrUnexpected, rErr, "could not read input")
			}
			return
		}
	}
}
