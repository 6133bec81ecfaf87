// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordAt(t *testing.T) {
	txt := []rune("don't stop, 'now'")
	assert.Equal(t, R(0, 5), WordAt(txt, 0))
	assert.Equal(t, R(0, 5), WordAt(txt, 3))
	assert.Equal(t, R(0, 5), WordAt(txt, 5), "word ending at the caret")
	assert.Equal(t, R(6, 10), WordAt(txt, 6))
	assert.Equal(t, R(6, 10), WordAt(txt, 10))
	assert.Equal(t, R(11, 11), WordAt(txt, 11))
	assert.Equal(t, R(13, 16), WordAt(txt, 14))
	assert.Equal(t, R(17, 17), WordAt(txt, 17))
	assert.Equal(t, R(17, 17), WordAt(txt, 99))
	assert.Equal(t, R(0, 0), WordAt(nil, 3))
	assert.True(t, RuneIsWordBreak('\n'))
}
