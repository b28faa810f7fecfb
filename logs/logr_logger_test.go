/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-batchqueue/logs/logstest"
)

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
	loggers.LogError(commonerrors.ErrUnexpected, ": no idea what happened")
	loggers.LogError("no idea what happened", nil)
}

func TestLogrLoggerUndefinedSource(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := NewLogrLogger(logstest.NewNullTestLogger(), "  ")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
	loggers, err := NewLogrLogger(logstest.NewNullTestLogger(), faker.Word())
	require.NoError(t, err)
	errortest.AssertError(t, loggers.SetLogSource(""), commonerrors.ErrNoLogSource)
	errortest.AssertError(t, loggers.SetLoggerSource(""), commonerrors.ErrNoLoggerSource)
}

func TestLogrLoggerConversion(t *testing.T) {
	defer goleak.VerifyNone(t)
	strLogger, err := NewStringLogger("Test")
	require.NoError(t, err)
	converted := NewLogrLoggerFromLoggers(strLogger)
	name := "name-" + faker.Word()
	message := faker.Sentence()
	converted.WithName(name).WithValues(faker.Word(), faker.Name()).Error(commonerrors.ErrUnexpected, message)
	content := strLogger.GetLogContent()
	assert.Contains(t, content, name)
	assert.Contains(t, content, message)
	assert.Contains(t, content, commonerrors.ErrUnexpected.Error())
}

func TestLoggersSourcesAreApplied(t *testing.T) {
	defer goleak.VerifyNone(t)
	strLogger, err := NewStringLogger("Test")
	require.NoError(t, err)
	loggerSource := "src-" + faker.Word()
	logger, err := NewLogrLogger(NewLogrLoggerFromLoggers(strLogger), loggerSource)
	require.NoError(t, err)
	logSource := "logsrc-" + faker.Word()
	require.NoError(t, logger.SetLogSource(logSource))
	logger.Log(faker.Sentence())
	content := strLogger.GetLogContent()
	assert.Contains(t, content, loggerSource)
	assert.Contains(t, content, logSource)

	// changing the logger source does not accumulate names
	otherSource := "other-" + faker.Word()
	require.NoError(t, logger.SetLoggerSource(otherSource))
	logger.Log(faker.Sentence())
	lines := strings.Split(strings.TrimSpace(strLogger.GetLogContent()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], otherSource)
	assert.NotContains(t, lines[1], loggerSource)
	assert.NotContains(t, lines[1], logSource)
}

func TestLogrLoggerClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	closed := false
	loggers, err := NewLogrLoggerWithClose(logstest.NewNullTestLogger(), faker.Word(), func() error {
		closed = true
		return nil
	})
	require.NoError(t, err)
	loggers.Log(faker.Sentence())
	require.NoError(t, loggers.Close())
	assert.True(t, closed)
}

func TestGetLogrFromEmptyContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, err := GetLogrLoggerFromContext(context.Background())
	assert.Equal(t, logr.Logger{}, logger)
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
}

func TestGetLogrFromContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := logstest.NewTestLogger(t)
	ctx := logr.NewContext(context.Background(), logger)

	newLogger, err := GetLogrLoggerFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, logger, newLogger)
}
