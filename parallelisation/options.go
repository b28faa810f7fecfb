/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

// StoreOptions defines how the functions registered in a store are executed.
type StoreOptions struct {
	clearOnExecution bool
	stopOnFirstError bool
	sequential       bool
	reverse          bool
}

// StoreOption modifies store options.
type StoreOption func(*StoreOptions) *StoreOptions

// DefaultOptions returns the default store options: parallel execution of all functions, retained after execution.
func DefaultOptions() *StoreOptions {
	return &StoreOptions{}
}

// WithOptions applies store options to the default options.
func WithOptions(options ...StoreOption) *StoreOptions {
	opts := DefaultOptions()
	for i := range options {
		if options[i] != nil {
			opts = options[i](opts)
		}
	}
	return opts
}

func newStoreOption(set func(*StoreOptions)) StoreOption {
	return func(o *StoreOptions) *StoreOptions {
		if o == nil {
			o = DefaultOptions()
		}
		set(o)
		return o
	}
}

var (
	// StopOnFirstError stops execution on first error.
	StopOnFirstError = newStoreOption(func(o *StoreOptions) { o.stopOnFirstError = true })
	// ExecuteAll executes all functions even if some fail. The first error encountered is returned.
	ExecuteAll = newStoreOption(func(o *StoreOptions) { o.stopOnFirstError = false })
	// ClearAfterExecution empties the store once all functions have been executed successfully.
	ClearAfterExecution = newStoreOption(func(o *StoreOptions) { o.clearOnExecution = true })
	// RetainAfterExecution keeps the functions in the store after execution.
	RetainAfterExecution =newStoreOption(func(o *StoreOptions) { o.clearOnExecution = false })
	// Parallel executes functions concurrently.
	Parallel = newStoreOption(func(o *StoreOptions) { o.sequential, o.reverse = false, false })
	// Sequential executes functions one after the other, in registration order.
	Sequential = newStoreOption(func(o *StoreOptions) { o.sequential, o.reverse = true, false })
	// SequentialInReverse executes functions one after the other, last registered first.
	SequentialInReverse = newStoreOption(func(o *StoreOptions) { o.sequential, o.reverse = true, true })
)
