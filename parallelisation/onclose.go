/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"
	"io"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

type CloseFunc func() error

// WrapCloserIntoCloseFunc converts an io.Closer into a CloseFunc.
func WrapCloserIntoCloseFunc(closer io.Closer) CloseFunc {
	return func() error {
		if closer == nil {
			return commonerrors.UndefinedVariable("closer object")
		}
		return closer.Close()
	}
}

type CloseFunctionStore struct {
	store[CloseFunc]
}

func (s *CloseFunctionStore) RegisterCloseFunction(closerObj ...CloseFunc) {
	s.store.RegisterFunction(closerObj...)
}

func (s *CloseFunctionStore) RegisterCloser(closerObj ...io.Closer) {
	for i := range closerObj {
		s.store.RegisterFunction(WrapCloserIntoCloseFunc(closerObj[i]))
	}
}

func (s *CloseFunctionStore) RegisterCancelStore(cancelStore *CancelFunctionStore) {
	if cancelStore == nil {
		return
	}
	s.store.RegisterFunction(func() error {
		cancelStore.Cancel()
		return nil
	})
}

func (s *CloseFunctionStore) RegisterCancelFunction(cancelFunc ...context.CancelFunc) {
	cancelStore := NewCancelFunctionsStore()
	cancelStore.RegisterCancelFunction(cancelFunc...)
	s.RegisterCancelStore(cancelStore)
}

func (s *CloseFunctionStore) Close() error {
	return s.Execute(context.Background())
}

func (s *CloseFunctionStore) Len() int {
	return s.store.Len()
}

// NewCloseFunctionStore returns a store closing functions which will all be called on Close(). The first error received if any will be returned.
func NewCloseFunctionStore(options ...StoreOption) *CloseFunctionStore {
	s := &CloseFunctionStore{}
	s.init(func(_ context.Context, closerObj CloseFunc) error {
		return closerObj()
	}, append(options, RetainAfterExecution)...)
	return s
}

// CloseAll calls concurrently Close on all io.Closer implementations passed as arguments and returns the first error encountered
func CloseAll(cs ...io.Closer) error {
	group := NewCloseFunctionStore(ExecuteAll, Parallel)
	group.RegisterCloser(cs...)
	return group.Close()
}
