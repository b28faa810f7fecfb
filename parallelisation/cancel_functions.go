/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package parallelisation

import (
	"context"
	"slices"

	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

func (s *store[T]) init(executeFunc func(context.Context, T) error, options ...StoreOption) {
	s.functions = make([]T, 0)
	s.executeFunc = executeFunc
	s.options = *WithOptions(options...)
}

type store[T any] struct {
	mu          deadlock.RWMutex
	functions   []T
	executeFunc func(ctx context.Context, element T) error
	options     StoreOptions
}

func (s *store[T]) RegisterFunction(function ...T) {
	defer s.mu.Unlock()
	s.mu.Lock()
	s.functions = append(s.functions, function...)
}

func (s *store[T]) Len() int {
	defer s.mu.RUnlock()
	s.mu.RLock()
	return len(s.functions)
}

func (s *store[T]) Execute(ctx context.Context) (err error) {
	defer s.mu.Unlock()
	s.mu.Lock()
	if reflection.IsEmpty(s.executeFunc) {
		return commonerrors.New(commonerrors.ErrUndefined, "the function store was not initialised correctly")
	}
	if s.options.sequential {
		err = s.executeSequentially(ctx)
	} else {
		err = s.executeConcurrently(ctx)
	}
	if err == nil && s.options.clearOnExecution {
		s.functions = make([]T, 0, len(s.functions))
	}
	return
}

func (s *store[T]) executeConcurrently(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	if !s.options.stopOnFirstError {
		gCtx = ctx
	}
	g.SetLimit(max(len(s.functions), 1))
	for i := range s.functions {
		g.Go(func() error {
			err := DetermineContextError(gCtx)
			if err != nil {
				return err
			}
			return s.executeFunc(gCtx, s.functions[i])
		})
	}
	return g.Wait()
}

func (s *store[T]) executeSequentially(ctx context.Context) (err error) {
	functions := slices.Clone(s.functions)
	if s.options.reverse {
		slices.Reverse(functions)
	}
	for i := range functions {
		subErr := DetermineContextError(ctx)
		if subErr == nil {
			subErr = s.executeFunc(ctx, functions[i])
		}
		if subErr == nil {
			continue
		}
		if s.options.stopOnFirstError {
			return subErr
		}
		if err == nil {
			err = subErr
		}
	}
	return
}

type CancelFunctionStore struct {
	store[context.CancelFunc]
}

func (s *CancelFunctionStore) RegisterCancelFunction(cancel ...context.CancelFunc) {
	s.store.RegisterFunction(cancel...)
}

// RegisterCancelStore registers a store so that it is cancelled at the same time as this one.
func (s *CancelFunctionStore) RegisterCancelStore(cancelStore *CancelFunctionStore) {
	if cancelStore == nil {
		return
	}
	s.store.RegisterFunction(func() {
		cancelStore.Cancel()
	})
}

// Cancel will execute the cancel functions in the store. Any errors will be ignored and Execute() is recommended if you need to know if a cancellation failed
func (s *CancelFunctionStore) Cancel() {
	_ = s.Execute(context.Background())
}

func (s *CancelFunctionStore) Len() int {
	return s.store.Len()
}

// NewCancelFunctionsStore creates a store for cancel functions. By default, functions are executed concurrently and cleared after execution.
func NewCancelFunctionsStore(options ...StoreOption) *CancelFunctionStore {
	s := &CancelFunctionStore{}
	s.init(func(_ context.Context, cancelFunc context.CancelFunc) error {
		cancelFunc()
		return nil
	}, append([]StoreOption{ClearAfterExecution}, options...)...)
	return s
}
