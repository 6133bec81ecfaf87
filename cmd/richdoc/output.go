// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/htmltext"
	"cogentcore.org/richdoc/text/spans"
	"github.com/fsnotify/fsnotify"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

// print prints the HTML of the buffer.
func (a *app) print(cmd *cobra.Command, b *spans.Buffer) error {
	out, err := htmltext.ToHTML(b, &a.cfg.HTML)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// unifiedDiff returns the line diff from a to b in unified format,
// which is empty if they are the same.
func unifiedDiff(name, a, b string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: name,
		ToFile:   name + " (formatted)",
		Context:  3,
	})
}

// watch calls fn for each of the files whenever it is written,
// until ctx is done. The directories of the files are watched, so
// that files replaced by editors are still seen.
func (a *app) watch(ctx context.Context, files []string, fn func(file string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	names := map[string]string{}
	dirs := map[string]bool{}
	for _, f := range files {
		names[filepath.Clean(f)] = f
		d := filepath.Dir(f)
		if dirs[d] {
			continue
		}
		dirs[d] = true
		if err := w.Add(d); err != nil {
			return err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			f, watched := names[filepath.Clean(ev.Name)]
			if watched && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				errors.Log(fn(f))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
