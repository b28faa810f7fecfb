// Package logstest provides loggers for tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ARM-software/golang-batchqueue/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing. Records still go through logrus.
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logrimp.NewLogrusLogger(internalLogger)
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}
