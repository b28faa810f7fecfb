package logrimp

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewZapLogger returns a logr.Logger backed by zap.
func NewZapLogger(logger *zap.Logger, opts ...zapr.Option) logr.Logger {
	return zapr.NewLoggerWithOptions(logger, opts...)
}
