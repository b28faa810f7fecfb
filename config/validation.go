/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

// ValidateEmbedded uses reflection to find struct fields implementing Validator and validates them.
// Any failure is returned as an IValidationError recording the path to the faulty field.
func ValidateEmbedded(cfg Validator) error {
	if cfg == nil {
		return commonerrors.UndefinedVariable("configuration")
	}
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Ptr || r.IsNil() || r.Elem().Kind() != reflect.Struct {
		return commonerrors.Newf(commonerrors.ErrUnsupported, "expected a pointer to a structure but got %T", cfg)
	}
	r = r.Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		err := wrapFieldValidationError(r.Type().Field(i), validator.Validate())
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapFieldValidationError(field reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	var mapStructure *string
	if tag, hasTag := field.Tag.Lookup("mapstructure"); hasTag {
		name := processMapStructureString(tag)
		if name != "" {
			mapStructure = &name
		}
	}
	return WrapFieldValidationError(field.Name, mapStructure, nil, err)
}

// processMapStructureString extracts the key name from a mapstructure tag, discarding options such as omitempty or squash.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
