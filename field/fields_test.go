/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package field

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestOptionalString(t *testing.T) {
	value := faker.Word()
	defaultValue := faker.Sentence()
	assert.Equal(t, value, OptionalString(ToOptionalString(value), defaultValue))
	assert.Equal(t, defaultValue, OptionalString(nil, defaultValue))
}

func TestOptionalDuration(t *testing.T) {
	value := time.Duration(time.Now().Second()+1) * time.Millisecond
	assert.Equal(t, value, OptionalDuration(ToOptionalDuration(value), time.Hour))
	assert.Equal(t, time.Hour, OptionalDuration(nil, time.Hour))
	// a zero duration is a set value, not an absent one
	assert.Equal(t, time.Duration(0), OptionalDuration(ToOptionalDuration(0), time.Hour))
}

func TestOptionalCopy(t *testing.T) {
	i := 5
	ptr := ToOptional(i)
	i = 6
	assert.Equal(t, 5, Optional(ptr, 0))
	assert.Equal(t, 6, Optional[int](nil, i))
}
