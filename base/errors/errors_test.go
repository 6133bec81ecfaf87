// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(errTest), errTest)
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("three")) })
}

func TestWrapf(t *testing.T) {
	assert.NoError(t, Wrapf(nil, "context"))
	err := Wrapf(errTest, "reading %q", "a.html")
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, `reading "a.html": test error`, err.Error())
}
