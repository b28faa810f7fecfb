/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu        deadlock.RWMutex
	root      logr.Logger
	logger    logr.Logger
	source    string
	closeFunc func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

func (l *logrLogger) Check() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.source == "" {
		return commonerrors.ErrNoLoggerSource
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

// SetLoggerSource replaces the name of the logger. Values set via SetLogSource are reset.
func (l *logrLogger) SetLoggerSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	l.logger = l.root.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) current() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Log(output ...any) {
	l.current().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...any) {
	var cause error
	message := make([]any, 0, len(err))
	for i := range err {
		if e, ok := err[i].(error); ok && cause == nil {
			cause = e
			continue
		}
		message = append(message, err[i])
	}
	l.current().Error(cause, strings.TrimSpace(fmt.Sprintln(message...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{root: logrImpl, logger: logrImpl, closeFunc: closeFunc}
	loggers = l
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	err = l.Check()
	return
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger. Every record is written as a single line to the output logger.
func NewLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	return stdr.New(&loggersOutput{loggers: loggers})
}

type loggersOutput struct {
	loggers Loggers
}

func (o *loggersOutput) Output(_ int, s string) error {
	if o.loggers == nil {
		return commonerrors.ErrNoLogger
	}
	o.loggers.Log(s)
	return nil
}

// GetLogrLoggerFromContext returns the logr.Logger stored in the context, if any.
func GetLogrLoggerFromContext(ctx context.Context) (logger logr.Logger, err error) {
	logger, err = logr.FromContext(ctx)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrNoLogger, err, "")
	}
	return
}
