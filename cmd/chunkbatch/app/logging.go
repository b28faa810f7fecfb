/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/logs"
	"github.com/ARM-software/golang-batchqueue/logs/logrimp"
)

const loggerSource = "chunkbatch"

// newLoggers returns the loggers used for reporting and the logr.Logger handed over to library components.
// Both write to out.
func newLoggers(format string, verbose bool, out io.Writer) (loggers logs.Loggers, logger logr.Logger, err error) {
	if out == nil {
		err = commonerrors.UndefinedVariable("log output")
		return
	}
	switch format {
	case LogFormatZap:
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		zapL := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(out), level))
		logger = logrimp.NewZapLogger(zapL)
		loggers, err = logs.NewZapLogger(zapL, loggerSource)
	case LogFormatLogrus:
		logrusL := logrus.New()
		logrusL.SetOutput(out)
		if verbose {
			logrusL.SetLevel(logrus.DebugLevel)
		}
		logger = logrimp.NewLogrusLogger(logrusL)
		loggers, err = logs.NewLogrusLogger(logrusL, loggerSource)
	case LogFormatStd:
		loggers, err = logs.NewWriterLogger(loggerSource, out, out)
		if err != nil {
			return
		}
		if verbose {
			stdr.SetVerbosity(1)
		}
		logger = logs.NewLogrLoggerFromLoggers(loggers)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "log format '%v'", format)
	}
	return
}
