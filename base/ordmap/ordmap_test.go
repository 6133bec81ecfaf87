// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := Make([]KeyValue[string, int]{{"b", 1}, {"a", 2}, {"c", 3}})
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())

	om.Add("a", 20)
	om.Add("d", 4)
	assert.Equal(t, []int{1, 20, 3, 4}, om.Values())

	v, ok := om.ValueByKeyTry("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = om.ValueByKeyTry("z")
	assert.False(t, ok)

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
}
