// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/richdoc/text/htmltext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the richdoc command with the given standard input and
// arguments, and returns its standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestFmt(t *testing.T) {
	out, err := run(t, `<strong>a</strong><em>b</em>`, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "<b>a</b><i>b</i>\n", out)

	out, err = run(t, `<s>x</s><br/>`, "fmt", "--strike-tag", "strike", "--xhtml")
	require.NoError(t, err)
	assert.Equal(t, "<strike>x</strike><br />\n", out)

	fn := writeFile(t, "doc.html", "<p>a</p>\n<p>b</p>\n")
	out, err = run(t, "", "fmt", "-d", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "-<p>a</p>\n")
	assert.Contains(t, out, "+<p>a</p><p>b</p>\n")

	out, err = run(t, "", "fmt", "-w", fn)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p><p>b</p>\n", string(b))

	out, err = run(t, "", "fmt", "-d", fn)
	require.NoError(t, err)
	assert.Empty(t, out, "already formatted")

	_, err = run(t, `<b>x`, "fmt")
	assert.ErrorIs(t, err, htmltext.ErrMalformedMarkup)
	_, err = run(t, "", "fmt", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestToggle(t *testing.T) {
	out, err := run(t, "somemoretext", "toggle", "--kind", "bold", "--start", "4", "--end", "8")
	require.NoError(t, err)
	assert.Equal(t, "some<b>more</b>text\n", out)

	out, err = run(t, "link", "toggle", "-k", "link", "-s", "0", "-e", "4", "--attr", "href=https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "<a href=\"https://example.com\">link</a>\n", out)

	fn := writeFile(t, "list.html", `<ol><li>Ordered</li></ol>`)
	out, err = run(t, "", "toggle", "-k", "more", "-s", "2", "-e", "4", fn)
	require.NoError(t, err)
	assert.Equal(t, "<ol><li>Or</li></ol><!--more--><ol><li>red</li></ol>\n", out)

	out, err = run(t, `<h1>some text</h1>`, "toggle", "--clear", "-s", "0", "-e", "9")
	require.NoError(t, err)
	assert.Equal(t, "some text\n", out)

	out, err = run(t, "one two", "toggle", "-k", "italic", "-s", "5", "--word")
	require.NoError(t, err)
	assert.Equal(t, "one <i>two</i>\n", out)

	_, err = run(t, "abc", "toggle", "-k", "blink")
	assert.Error(t, err)
	_, err = run(t, "abc", "toggle", "-s", "2", "-e", "9")
	assert.Error(t, err)
}

func TestMd(t *testing.T) {
	out, err := run(t, "# Title\n\nSome **bold**.\n", "md")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1><p>Some <b>bold</b>.</p>\n", out)
}

func TestText(t *testing.T) {
	out, err := run(t, `<b>a</b><br>b`, "text")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, err = run(t, `<b>x`, "text")
	assert.Error(t, err)
	out, err = run(t, `<b>x`, "text", "--loose")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestDump(t *testing.T) {
	out, err := run(t, `<i>it</i>`, "dump")
	require.NoError(t, err)
	assert.Equal(t, "\"it\"\n[italic 0:2]: \"it\"\n", out)
}

func TestConfigFile(t *testing.T) {
	fn := writeFile(t, "richdoc.toml", "[html]\nstrike-tag = \"s\"\n")
	out, err := run(t, `<del>x</del>`, "fmt", "--config", fn)
	require.NoError(t, err)
	assert.Equal(t, "<s>x</s>\n", out)

	out, err = run(t, `<del>x</del>`, "fmt", "--config", fn, "--strike-tag", "strike")
	require.NoError(t, err)
	assert.Equal(t, "<strike>x</strike>\n", out)

	_, err = run(t, "x", "fmt", "--config", filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestUnifiedDiff(t *testing.T) {
	d, err := unifiedDiff("a.html", "x\n", "x\n")
	require.NoError(t, err)
	assert.Empty(t, d)
	d, err = unifiedDiff("a.html", "x\n", "y\n")
	require.NoError(t, err)
	assert.Contains(t, d, "--- a.html\n+++ a.html (formatted)\n")
}

func TestWatchDone(t *testing.T) {
	fn := writeFile(t, "doc.html", "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := &app{}
	assert.NoError(t, a.watch(ctx, []string{fn}, func(string) error { return nil }))
}
