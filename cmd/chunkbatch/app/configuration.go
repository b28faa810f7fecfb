/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-batchqueue/batching"
	"github.com/ARM-software/golang-batchqueue/config"
	configValidation "github.com/ARM-software/golang-batchqueue/config/validation"
)

const (
	// EnvVarPrefix is the prefix of the environment variables the command reads its configuration from.
	EnvVarPrefix = "chunkbatch"
	// StdinInput is the input value meaning standard input.
	StdinInput = "-"

	LogFormatZap    = "zap"
	LogFormatLogrus = "logrus"
	LogFormatStd    = "std"
)

type Configuration struct {
	Input          string                 `mapstructure:"input"`
	ChunkSize      int                    `mapstructure:"chunk_size"`
	LogFormat      string                 `mapstructure:"log_format"`
	Verbose        bool                   `mapstructure:"verbose"`
	MetricsAddress string                 `mapstructure:"metrics_address"`
	Batching       batching.Configuration `mapstructure:"batching"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return config.WrapValidationError(nil, validation.ValidateStruct(cfg,
		validation.Field(&cfg.Input, validation.Required),
		validation.Field(&cfg.ChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&cfg.LogFormat, validation.Required, validation.In(LogFormatZap, LogFormatLogrus, LogFormatStd)),
		validation.Field(&cfg.MetricsAddress, configValidation.IsListenAddress()),
	))
}

// HasMetrics states whether metrics should be served.
func (cfg *Configuration) HasMetrics() bool {
	return cfg.MetricsAddress != ""
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Input:     StdinInput,
		ChunkSize: 4096,
		LogFormat: LogFormatZap,
		Batching:  *batching.DefaultConfiguration(),
	}
}
