/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLogrusLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrusLogger(logrus.StandardLogger(), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrusLoggerEntries(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, hook := logrusTest.NewNullLogger()
	loggers, err := NewLogrusLogger(logger, "Test")
	require.NoError(t, err)
	loggers.Log("batch received")
	loggers.LogError("batch failed")
	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "batch received", entries[0].Message)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, "batch failed", entries[1].Message)
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
}
