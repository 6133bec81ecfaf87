// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in the most efficient way possible.
// This package also provides all of the functions in the standard
// library errors package, so it can be used as a drop-in replacement.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
func Ignore1[T any](v T, err error) T {
	return v
}

// Wrapf returns err wrapped with the given context message,
// or nil if err is nil.
func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(a, err)...)
}

// New is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the same as [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is the same as [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
