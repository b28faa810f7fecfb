/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import (
	"iter"
	"slices"
)

// NewQueue returns a Queue. It is not safe for concurrent use.
func NewQueue[T any]() IQueue[T] {
	return &Queue[T]{}
}

// Queue is a FIFO backed by a slice. Dequeued slots are reclaimed once at least half of the slice is unused.
type Queue[T any] struct {
	buf  []T
	head int
}

func (s *Queue[T]) Len() int {
	return len(s.buf) - s.head
}

func (s *Queue[T]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Queue[T]) Clear() {
	s.buf = nil
	s.head = 0
}

func (s *Queue[T]) Peek() (element T, ok bool) {
	if s.IsEmpty() {
		return
	}
	return s.buf[s.head], true
}

func (s *Queue[T]) Dequeue() (element T, ok bool) {
	element, ok = s.Peek()
	if !ok {
		return
	}
	var zero T
	s.buf[s.head] = zero
	s.head++
	s.compact()
	return
}

func (s *Queue[T]) compact() {
	switch {
	case s.head == len(s.buf):
		s.buf = s.buf[:0]
		s.head = 0
	case s.head >= len(s.buf)/2 && s.head > 16:
		n := copy(s.buf, s.buf[s.head:])
		clear(s.buf[n:])
		s.buf = s.buf[:n]
		s.head = 0
	}
}

// Values dequeues elements as they are iterated over.
func (s *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s *Queue[T]) Enqueue(value ...T) {
	s.buf = append(s.buf, value...)
}

func (s *Queue[T]) EnqueueSequence(seq iter.Seq[T]) {
	s.buf = slices.AppendSeq(s.buf, seq)
}
