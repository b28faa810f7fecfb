/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines loggers for use in projects.
package logs

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

// GenericLoggers logs to standard library loggers.
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger
}

// Check checks whether the loggers are correctly defined or not.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(_ string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(_ string) error {
	return nil
}

// Log logs to the output logger.
func (l *GenericLoggers) Log(output ...any) {
	if l.Output == nil {
		return
	}
	l.Output.Println(output...)
}

// LogError logs to the error logger.
func (l *GenericLoggers) LogError(err ...any) {
	if l.Error == nil {
		return
	}
	l.Error.Println(err...)
}

func (l *GenericLoggers) Close() error {
	return nil
}

// NewStdLogger creates loggers writing to standard output and standard error.
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	return NewWriterLogger(loggerSource, os.Stdout, os.Stderr)
}

// NewWriterLogger creates loggers writing output and errors to the writers provided.
func NewWriterLogger(loggerSource string, output, errOutput io.Writer) (loggers Loggers, err error) {
	if output == nil || errOutput == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	loggers = &GenericLoggers{
		Output: log.New(output, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(errOutput, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	err = loggers.Check()
	return
}
