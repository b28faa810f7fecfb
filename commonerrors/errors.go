/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines typical errors which can happen.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnavailable    = errors.New("unavailable")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrConflict       = errors.New("conflict")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrEmpty          = errors.New("empty")
	ErrUnexpected     = errors.New("unexpected")
	ErrCondition      = errors.New("failed condition")
	ErrEOF            = errors.New("end of file")
	ErrExhausted      = errors.New("exhausted")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// CorrespondTo states whether the error description contains any of the descriptions provided.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is empty or not.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	if i, ok := err.(interface{ IsEmpty() bool }); ok {
		return i.IsEmpty()
	}
	return strings.TrimSpace(err.Error()) == ""
}

// New creates a new error of type errorType with the reason specified.
func New(errorType error, message string) error {
	if errorType == nil {
		if message == "" {
			return nil
		}
		return errors.New(message)
	}
	if message == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, message)
}

// Newf is similar to New but the message can be formatted.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error has to do with a context
// cancellation or timeout, it is converted into the relevant common error instead.
func WrapError(targetErr, originalErr error, message string) error {
	if originalErr == nil {
		return New(targetErr, message)
	}
	convertedErr := ConvertContextError(originalErr)
	if Any(convertedErr, ErrTimeout, ErrCancelled) {
		targetErr = convertedErr
	}
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	if message == "" {
		return fmt.Errorf("%w: %v", targetErr, originalErr.Error())
	}
	return fmt.Errorf("%w: %v: %v", targetErr, message, originalErr.Error())
}

// WrapErrorf is similar to WrapError but the message can be formatted.
func WrapErrorf(targetErr, originalErr error, format string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(format, args...))
}

// ConvertContextError converts a context error into a common error.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if Any(err, context.Canceled) {
		return ErrCancelled
	}
	return err
}

// ErrFromContext returns the common error corresponding to the state of the context, if any.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}

// Ignore returns nil if the error is of any of the types specified.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// UndefinedVariable returns an undefined error with a message about the variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "undefined variable '%v'", variableName)
}

// UndefinedVariableWithMessage is similar to UndefinedVariable but adds more context.
func UndefinedVariableWithMessage(variableName string, message string) error {
	return Newf(ErrUndefined, "undefined variable '%v': %v", variableName, message)
}
