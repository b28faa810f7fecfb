/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package idgen generates identifiers.
package idgen

import (
	"github.com/gofrs/uuid/v5"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

// GenerateUUID4 generates a random UUID (version 4).
func GenerateUUID4() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating uuid")
	}
	return id.String(), nil
}

// GenerateTimeOrderedUUID generates a UUID (version 7) starting with its creation time in milliseconds.
func GenerateTimeOrderedUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating uuid")
	}
	return id.String(), nil
}

// IsValidUUID states whether a string is a valid UUID.
func IsValidUUID(u string) bool {
	_, err := uuid.FromString(u)
	return err == nil
}
