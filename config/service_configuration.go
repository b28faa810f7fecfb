/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

const (
	EnvVarSeparator = "_"
	DotEnvFile      = ".env"
	keySeparator    = "."
	// boundKeyRoot is the lower case root under which flags and explicitly bound environment variables are stored
	// before being copied onto the structure keys.
	boundKeyRoot = "zzboundflagandenvkeys"
)

// Load fills configurationToSet from the environment (a `.env` file in the working directory and environment
// variables named `<ENVVARPREFIX>_<KEY>`) on top of the values of defaultConfiguration, then validates it.
// Structure fields are matched using their `mapstructure` tags which should only use `[_0-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is similar to Load but uses an existing viper session, for instance one flags were bound to
// using BindFlagsToEnv.
//
// Viper's order of precedence applies (explicit `Set`, flags, environment, configuration file, key/value store,
// defaults) with one exception: a non-empty value of defaultConfiguration wins over a flag default or a
// `SetDefault` value.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	if viperSession == nil {
		return commonerrors.UndefinedVariable("viper session")
	}
	if configurationToSet == nil {
		return commonerrors.UndefinedVariable("configuration")
	}
	if defaultConfiguration != nil {
		defaults := map[string]any{}
		if err := mapstructure.Decode(defaultConfiguration, &defaults); err != nil {
			return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
		}
		if err := viperSession.MergeConfigMap(defaults); err != nil {
			return commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not set default configuration")
		}
	}

	// a missing .env file is not an error
	_ = godotenv.Load(DotEnvFile)
	readEnvironment(viperSession, envVarPrefix)
	copyBoundValues(viperSession, envVarPrefix)

	if err := viperSession.Unmarshal(configurationToSet); err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration into structure")
	}
	return configurationToSet.Validate()
}

// BindFlagToEnv binds flag and the environment variable envVar (with or without envVarPrefix) to the same entry.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) error {
	readEnvironment(viperSession, envVarPrefix)
	key := newBoundKey(envVarPrefix, envVar)
	if err := viperSession.BindPFlag(key.viperKey(), flag); err != nil {
		return err
	}
	return viperSession.BindEnv(key.viperKey(), key.envVar())
}

// BindFlagsToEnv calls BindFlagToEnv for every environment variable/flag pair of flags.
func BindFlagsToEnv(viperSession *viper.Viper, envVarPrefix string, flags map[string]*pflag.Flag) error {
	for _, envVar := range slices.Sorted(maps.Keys(flags)) {
		flag := flags[envVar]
		if flag == nil {
			return commonerrors.UndefinedVariableWithMessage("flag", envVar)
		}
		if err := BindFlagToEnv(viperSession, envVarPrefix, envVar, flag); err != nil {
			return err
		}
	}
	return nil
}

// boundKey is an environment variable name stripped of its prefix and lower cased e.g. `batching_min_batch_size`.
type boundKey struct {
	prefix string
	name   string
}

func newBoundKey(envVarPrefix, envVar string) boundKey {
	prefix := strings.ToLower(envVarPrefix)
	name := strings.ToLower(envVar)
	if trimmed, found := strings.CutPrefix(name, prefix); found {
		name = strings.TrimPrefix(trimmed, EnvVarSeparator)
	}
	return boundKey{prefix: envVarPrefix, name: name}
}

func (k boundKey) viperKey() string {
	return boundKeyRoot + keySeparator + strings.ReplaceAll(k.name, EnvVarSeparator, keySeparator)
}

func (k boundKey) envVar() string {
	return strings.ToUpper(strings.ReplaceAll(k.prefix+EnvVarSeparator+k.name, keySeparator, EnvVarSeparator))
}

func readEnvironment(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(keySeparator, EnvVarSeparator))
	viperSession.AutomaticEnv()
}

// copyBoundValues copies values of bound flags and environment variables onto the structure keys they
// correspond to, as viper aliases do not support nested keys.
func copyBoundValues(viperSession *viper.Viper, envVarPrefix string) {
	for _, key := range viperSession.AllKeys() {
		if strings.HasPrefix(key, boundKeyRoot) {
			continue
		}
		bound := newBoundKey(envVarPrefix, key).viperKey()
		value := viperSession.Get(bound)
		switch {
		case viperSession.IsSet(bound):
			viperSession.Set(key, value)
		case !reflection.IsEmpty(value):
			viperSession.SetDefault(key, value)
			if reflection.IsEmpty(viperSession.Get(key)) {
				viperSession.Set(key, value)
			}
		}
		viperSession.RegisterAlias(bound, key)
	}
}
