// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := R(2, 6)
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, R(3, 3).IsEmpty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(6))
	assert.True(t, r.Overlaps(R(5, 9)))
	assert.False(t, r.Overlaps(R(6, 9)))
	assert.True(t, r.Covers(R(3, 6)))
	assert.False(t, r.Covers(R(1, 6)))
	assert.Equal(t, R(5, 6), r.Intersect(R(5, 9)))
	assert.True(t, r.Intersect(R(7, 9)).IsEmpty())
	assert.True(t, r.Valid(6))
	assert.False(t, r.Valid(5))
	assert.False(t, R(4, 2).Valid(10))
	assert.Equal(t, "[2,6)", r.String())
}
