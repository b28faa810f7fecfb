/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package app implements chunkbatch, a command which splits its input into chunks and groups them into batches.
package app

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-batchqueue/config"
)

// NewChunkBatchCommand returns the root command. Every flag can also be set via a CHUNKBATCH_ environment variable.
func NewChunkBatchCommand(fs afero.Fs, stdin io.Reader, out io.Writer) (*cobra.Command, error) {
	session := viper.New()
	cmd := &cobra.Command{
		Use:          "chunkbatch",
		Short:        "Split an input into chunks and report the batches they are grouped into",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &Configuration{}
			err := config.LoadFromViper(session, EnvVarPrefix, cfg, DefaultConfiguration())
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cfg, fs, stdin, out)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	defaults := DefaultConfiguration()
	flags := cmd.Flags()
	flags.StringP("input", "i", defaults.Input, "file to read, - for standard input")
	flags.IntP("chunk-size", "c", defaults.ChunkSize, "size in bytes of the chunks the input is split into")
	flags.IntP("min-batch-size", "n", defaults.Batching.MinBatchSize, "number of chunks a batch is expected to hold")
	flags.DurationP("flush-timeout", "t", defaults.Batching.FlushTimeout, "how long to wait for a batch to fill up before releasing it (0 to wait forever)")
	flags.Int("consumers", defaults.Batching.Consumers, "number of concurrent batch consumers")
	flags.String("log-format", defaults.LogFormat, "log format: zap, logrus or std")
	flags.BoolP("verbose", "v", defaults.Verbose, "verbose logging")
	flags.String("metrics-address", defaults.MetricsAddress, "address to serve prometheus metrics on (disabled if empty)")
	err := config.BindFlagsToEnv(session, EnvVarPrefix, map[string]*pflag.Flag{
		"INPUT":                   flags.Lookup("input"),
		"CHUNK_SIZE":              flags.Lookup("chunk-size"),
		"BATCHING_MIN_BATCH_SIZE": flags.Lookup("min-batch-size"),
		"BATCHING_FLUSH_TIMEOUT":  flags.Lookup("flush-timeout"),
		"BATCHING_CONSUMERS":      flags.Lookup("consumers"),
		"LOG_FORMAT":              flags.Lookup("log-format"),
		"VERBOSE":                 flags.Lookup("verbose"),
		"METRICS_ADDRESS":         flags.Lookup("metrics-address"),
	})
	if err != nil {
		return nil, err
	}
	return cmd, nil
}
