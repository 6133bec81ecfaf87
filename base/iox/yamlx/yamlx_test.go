// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, Save(&testStruct{Name: "doc", Count: 2}, fn))
	var s testStruct
	require.NoError(t, Open(&s, fn))
	assert.Equal(t, testStruct{Name: "doc", Count: 2}, s)
}

func TestReadEmpty(t *testing.T) {
	s := testStruct{Name: "keep"}
	require.NoError(t, Read(&s, strings.NewReader("")))
	assert.Equal(t, "keep", s.Name)
	require.NoError(t, ReadBytes(&s, []byte("count: 3\n")))
	assert.Equal(t, testStruct{Name: "keep", Count: 3}, s)
}
