// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formatting applies formatting actions to a [spans.Buffer]:
// toggling inline and block formats over a selection, inserting
// markers, and typing or deleting text. Every operation is pure:
// the given buffer is never modified, and a new normalized buffer
// is returned.
package formatting

import (
	"fmt"
	"log/slog"

	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

var (
	// ErrInvalidRange is returned for a selection outside of the text.
	ErrInvalidRange = spans.ErrInvalidRange

	// ErrUnsupportedKind is returned for a kind not in the catalog,
	// or one that the operation does not apply to.
	ErrUnsupportedKind = format.ErrUnsupportedKind
)

// Options are the options for the formatting operations.
type Options struct {

	// SplitPartialLines is whether a block format applied to a
	// selection that starts or ends in the middle of a line first
	// breaks the line there, so that only the selected text changes.
	SplitPartialLines bool `toml:"split-partial-lines" yaml:"split-partial-lines"`
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{SplitPartialLines: true}
}

// Toggle applies [Options.Toggle] with the default options.
func Toggle(buf *spans.Buffer, r textpos.Range, k format.Kind, attrs map[string]string) (*spans.Buffer, error) {
	return DefaultOptions().Toggle(buf, r, k, attrs)
}

// Toggle returns a new buffer with the format of kind k toggled over
// the selection r.
//
//   - Inline kinds are all-or-nothing: if every character of r (other
//     than line breaks) already has the format, it is removed from r,
//     and otherwise it is added to all of r. For kinds with attributes
//     (link, font), only spans with equal attributes count, unless
//     attrs is empty. A collapsed selection does nothing.
//   - Block kinds apply to every line that the selection touches.
//     Lists and quotes are removed when every such line already has
//     them. Headings, paragraphs and preformatted text are set.
//   - Marker kinds replace the selected text with the marker.
func (o *Options) Toggle(buf *spans.Buffer, r textpos.Range, k format.Kind, attrs map[string]string) (*spans.Buffer, error) {
	if _, err := format.Lookup(k); err != nil {
		return nil, fmt.Errorf("formatting.Toggle: %w", err)
	}
	b, err := begin(buf, r)
	if err != nil {
		return nil, fmt.Errorf("formatting.Toggle: %w", err)
	}
	switch k.Class() {
	case format.Inline:
		toggleInline(b, r, k, attrs)
	case format.Block:
		o.toggleBlock(b, r, k, attrs)
	case format.Marker:
		insertMarker(b, r, k)
	}
	b.Normalize()
	slog.Debug("formatting: toggled", "kind", k, "range", r, "spans", len(b.Spans))
	return b, nil
}

// ClearBlock applies [Options.ClearBlock] with the default options.
func ClearBlock(buf *spans.Buffer, r textpos.Range) (*spans.Buffer, error) {
	return DefaultOptions().ClearBlock(buf, r)
}

// ClearBlock returns a new buffer with the block format removed from
// every line that the selection touches, leaving plain text.
func (o *Options) ClearBlock(buf *spans.Buffer, r textpos.Range) (*spans.Buffer, error) {
	b, err := begin(buf, r)
	if err != nil {
		return nil, fmt.Errorf("formatting.ClearBlock: %w", err)
	}
	r = o.split(b, r)
	b.Normalize()
	units := b.Units()
	drop := map[int]bool{}
	for _, ui := range selected(units, r) {
		drop[units[ui].Block] = true
	}
	removeSpans(b, drop)
	b.Normalize()
	return b, nil
}

// begin checks the selection and returns a normalized clone of buf.
func begin(buf *spans.Buffer, r textpos.Range) (*spans.Buffer, error) {
	if err := buf.CheckRange(r); err != nil {
		return nil, err
	}
	b := buf.Clone()
	b.Normalize()
	return b, nil
}

// removeSpans removes the spans with the given indexes.
func removeSpans(b *spans.Buffer, drop map[int]bool) {
	if len(drop) == 0 {
		return
	}
	out := b.Spans[:0]
	for i, s := range b.Spans {
		if !drop[i] {
			out = append(out, s)
		}
	}
	b.Spans = out
}
