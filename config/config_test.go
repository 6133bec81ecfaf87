// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/richdoc/text/htmltext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	c.Verbose = true
	c.Parse.Charset = "windows-1252"
	c.HTML.StrikeTag = "s"
	c.Formatting.SplitPartialLines = false
	for _, fn := range []string{"cfg.toml", "cfg.yaml"} {
		fn = filepath.Join(dir, fn)
		require.NoError(t, c.Save(fn))
		o, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, c, o, fn)
	}
}

func TestOpenDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(fn, []byte("quiet = true\n\n[html]\nxhtml = true\n"), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.True(t, c.HTML.XHTML)
	assert.Equal(t, "del", c.HTML.StrikeTag)
	assert.True(t, c.Formatting.SplitPartialLines)
	assert.Equal(t, slog.LevelError, c.LogLevel())
}

func TestIncludes(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	require.NoError(t, os.WriteFile(base, []byte("verbose: true\nhtml:\n  strike-tag: strike\n"), 0666))
	top := filepath.Join(dir, "top.toml")
	require.NoError(t, os.WriteFile(top, []byte("includes = [\"base.yaml\"]\n\n[html]\nstrike-tag = \"s\"\n"), 0666))
	c, err := Open(top)
	require.NoError(t, err)
	assert.Equal(t, []string{"base.yaml"}, c.Includes)
	assert.True(t, c.Verbose)
	assert.Equal(t, "s", c.HTML.StrikeTag)
	assert.Equal(t, slog.LevelInfo, c.LogLevel())

	loop := filepath.Join(dir, "loop.toml")
	require.NoError(t, os.WriteFile(loop, []byte("includes = [\"loop.toml\"]\n"), 0666))
	_, err = Open(loop)
	assert.ErrorContains(t, err, "include cycle")
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "cfg.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Default().Save(filepath.Join(dir, "cfg.ini")), ErrUnknownFormat)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("verbose = = 1"), 0666))
	_, err = Open(bad)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	c := Default()
	require.NoError(t, c.Merge(&Config{VeryVerbose: true, Parse: htmltext.ParseOptions{Charset: "latin1"}}))
	assert.True(t, c.VeryVerbose)
	assert.Equal(t, "latin1", c.Parse.Charset)
	assert.Equal(t, "del", c.HTML.StrikeTag)
	assert.True(t, c.Formatting.SplitPartialLines)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
}
