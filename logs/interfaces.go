/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "io"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-batchqueue/$GOPACKAGE Loggers

// Loggers is the line-oriented logging facade used to report batches and failures to users.
type Loggers interface {
	io.Closer
	// Check checks whether the loggers are correctly defined or not.
	Check() error
	// SetLogSource sets the source of the log messages e.g. the input being batched.
	SetLogSource(source string) error
	// SetLoggerSource sets the source of the logger e.g. the command or the consumer.
	SetLoggerSource(source string) error
	// Log logs to the output logger.
	Log(output ...any)
	// LogError logs to the error logger.
	LogError(err ...any)
}
