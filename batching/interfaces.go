/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package batching

import "context"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-batchqueue/$GOPACKAGE IBatchHandler

// IBatchHandler processes batches pulled from a queue.
type IBatchHandler[T any] interface {
	// Handle processes a batch. Returning an error triggers a retry according to the retry policy in place.
	Handle(ctx context.Context, batch *Batch[T]) error
}

// BatchHandlerFunc turns a function into an IBatchHandler.
type BatchHandlerFunc[T any] func(ctx context.Context, batch *Batch[T]) error

func (f BatchHandlerFunc[T]) Handle(ctx context.Context, batch *Batch[T]) error {
	return f(ctx, batch)
}
