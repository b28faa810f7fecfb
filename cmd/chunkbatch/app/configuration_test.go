/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-batchqueue/config"
)

func TestConfigurationValidation(t *testing.T) {
	require.NoError(t, DefaultConfiguration().Validate())
	assert.False(t, DefaultConfiguration().HasMetrics())

	tests := []struct {
		name    string
		modify  func(*Configuration)
		path    string
		invalid bool
	}{
		{name: "metrics", modify: func(cfg *Configuration) { cfg.MetricsAddress = "localhost:9090" }},
		{name: "logrus", modify: func(cfg *Configuration) { cfg.LogFormat = LogFormatLogrus }},
		{name: "no input", modify: func(cfg *Configuration) { cfg.Input = "" }, path: "INPUT", invalid: true},
		{name: "chunk size", modify: func(cfg *Configuration) { cfg.ChunkSize = -1 }, path: "CHUNK_SIZE", invalid: true},
		{name: "log format", modify: func(cfg *Configuration) { cfg.LogFormat = faker.Word() + "xml" }, path: "LOG_FORMAT", invalid: true},
		{name: "metrics address", modify: func(cfg *Configuration) { cfg.MetricsAddress = "localhost" }, path: "METRICS_ADDRESS", invalid: true},
		{name: "batching", modify: func(cfg *Configuration) { cfg.Batching.Consumers = 0 }, invalid: true},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			test.modify(cfg)
			err := cfg.Validate()
			if !test.invalid {
				require.NoError(t, err)
				return
			}
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
			if test.path != "" {
				var vErr config.IValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, test.path, vErr.GetMapStructurePath())
			}
		})
	}
}
