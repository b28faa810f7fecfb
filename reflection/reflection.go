/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reflection provides helpers relying on runtime reflection.
package reflection

import (
	"math"
	"reflect"
	"strings"
)

// IsEmpty checks whether a value should be considered empty.
// The following are considered empty: nil, zero values of any type, strings made of whitespaces only,
// empty slices, maps, arrays or channels, and pointers (or interfaces) to any of the above.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	return isEmptyValue(reflect.ValueOf(value))
}

func isEmptyValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Array, reflect.Map, reflect.Slice, reflect.Chan:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isEmptyValue(v.Elem())
	case reflect.Func:
		return v.IsNil()
	case reflect.Float32, reflect.Float64:
		// NaN is falsy as well
		f := v.Float()
		return f == 0 || math.IsNaN(f)
	default:
		return v.IsZero()
	}
}
