// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestReadWrite(t *testing.T) {
	b, err := WriteBytes(&testStruct{Name: "doc", Count: 2})
	require.NoError(t, err)
	var s testStruct
	require.NoError(t, ReadBytes(&s, b))
	assert.Equal(t, testStruct{Name: "doc", Count: 2}, s)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Count: 1}, a))
	require.NoError(t, os.WriteFile(b, []byte("name = \"b\"\n"), 0666))
	var s testStruct
	require.NoError(t, OpenFiles(&s, a, b))
	assert.Equal(t, testStruct{Name: "b", Count: 1}, s)

	assert.Error(t, OpenFiles(&s, filepath.Join(dir, "none.toml")))
}
