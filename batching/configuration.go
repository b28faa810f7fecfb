/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package batching

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-batchqueue/config"
	"github.com/ARM-software/golang-batchqueue/retry"
)

var _ config.IServiceConfiguration = &Configuration{}

// Configuration describes how batches are formed and delivered.
type Configuration struct {
	// MinBatchSize is the number of elements a consumer waits for before pulling a batch.
	MinBatchSize int `mapstructure:"min_batch_size"`
	// FlushTimeout bounds the wait for MinBatchSize elements once the queue is not empty. Zero means no bound.
	FlushTimeout time.Duration `mapstructure:"flush_timeout"`
	// Consumers is the number of concurrent consumers pulling batches.
	Consumers int `mapstructure:"consumers"`
	// MetricsRefreshPeriod is how often the queue length gauge is updated.
	MetricsRefreshPeriod time.Duration `mapstructure:"metrics_refresh_period"`
	// Retry is the policy applied when a handler fails.
	Retry retry.RetryPolicyConfiguration `mapstructure:"retry"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return config.WrapValidationError(nil, validation.ValidateStruct(cfg,
		validation.Field(&cfg.MinBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&cfg.FlushTimeout, validation.Min(time.Duration(0))),
		validation.Field(&cfg.Consumers, validation.Required, validation.Min(1)),
		validation.Field(&cfg.MetricsRefreshPeriod, validation.Min(time.Duration(0))),
	))
}

// HasFlushTimeout states whether partial batches are released after some time.
func (cfg *Configuration) HasFlushTimeout() bool {
	return cfg.FlushTimeout > 0
}

// DefaultConfiguration returns a configuration with a single consumer pulling batches of at least one element
// and retrying failed deliveries a few times.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		MinBatchSize:         1,
		FlushTimeout:         time.Second,
		Consumers:            1,
		MetricsRefreshPeriod: time.Second,
		Retry:                *retry.DefaultBasicRetryPolicyConfiguration(),
	}
}
