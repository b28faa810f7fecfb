/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
)

func TestLog(t *testing.T) {
	defer goleak.VerifyNone(t)
	var loggers Loggers = &GenericLoggers{}
	errortest.AssertError(t, loggers.Check(), commonerrors.ErrNoLogger)
	loggers.Log("nothing happens")
	loggers.LogError("nothing happens")
	assert.NoError(t, loggers.Close())
}

func TestStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStdLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	err := loggers.Check()
	require.NoError(t, err)
	defer func() { _ = loggers.Close() }()

	err = loggers.SetLogSource("source1")
	require.NoError(t, err)
	err = loggers.SetLoggerSource("LoggerSource1")
	require.NoError(t, err)

	loggers.Log("batch", 1, "of", 3, "elements")
	loggers.Log("Test output2")
	loggers.Log("\n")
	loggers.LogError("\n")
	err = loggers.SetLogSource("source2")
	require.NoError(t, err)

	loggers.Log("Test output3")
	loggers.LogError("Test err1")
	err = loggers.SetLoggerSource("LoggerSource2")
	require.NoError(t, err)

	loggers.LogError(commonerrors.ErrCancelled)
	loggers.LogError(nil)
	loggers.LogError(commonerrors.ErrUnexpected, "some error")
	loggers.LogError("some error", commonerrors.ErrUnexpected)
	loggers.LogError(nil, "no error")
	err = loggers.Close()
	require.NoError(t, err)
}

func TestWriterLogger(t *testing.T) {
	_, err := NewWriterLogger("Test", nil, nil)
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)

	output, errOutput := &strings.Builder{}, &strings.Builder{}
	loggers, err := NewWriterLogger("Test", output, errOutput)
	require.NoError(t, err)
	loggers.Log("some output")
	loggers.LogError(commonerrors.ErrUnexpected)
	assert.Contains(t, output.String(), "[Test] Output: some output")
	assert.Contains(t, errOutput.String(), "[Test] Error: unexpected")
	assert.NotContains(t, output.String(), "unexpected")
	require.NoError(t, loggers.Close())
}
