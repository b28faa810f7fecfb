/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

// emptyGate is a one-shot broadcast signal: every consumer which found the queue empty waits on the same gate
// and they are all released together by the next enqueue.
type emptyGate struct {
	done chan struct{}
	// count is the number of buffered elements when the gate opened.
	count int
}

func newEmptyGate() *emptyGate {
	return &emptyGate{done: make(chan struct{})}
}

// Done returns a channel closed once the gate is open.
func (g *emptyGate) Done() <-chan struct{} {
	return g.done
}

// open must only be called once, with the queue lock held.
func (g *emptyGate) open(count int) {
	g.count = count
	close(g.done)
}
