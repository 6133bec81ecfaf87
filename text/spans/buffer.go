// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spans provides the annotated buffer: a rune text plus a flat,
// sorted list of formatting [Span]s over it, which is the document model
// that the HTML reader and writer and the formatting engine work on.
//
// The text is cut into [Unit]s at each newline and each marker. Block
// spans cover exactly one unit including its newline, inline spans cover
// characters, and marker spans are zero width boundaries.
package spans

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/textpos"
	"github.com/jinzhu/copier"
)

// ErrCorruptDocumentModel is returned when the spans of a buffer
// violate the document model invariants.
var ErrCorruptDocumentModel = errors.New("corrupt document model")

// Buffer is a rune text with the spans that annotate it.
// A Buffer exclusively owns its spans. It is not safe
// for concurrent use; callers serialize access per buffer.
type Buffer struct {

	// Text is the character sequence.
	Text []rune

	// Spans are the annotations, sorted by start and creation order.
	Spans []Span

	// NextSeq is the creation order number for the next added span.
	NextSeq int
}

// New returns a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewString returns a new buffer with the given plain text.
func NewString(s string) *Buffer {
	return &Buffer{Text: []rune(s)}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	nb := &Buffer{}
	errors.Must(copier.CopyWithOption(nb, b, copier.Option{DeepCopy: true}))
	return nb
}

// Len returns the number of runes in the text.
func (b *Buffer) Len() int {
	return len(b.Text)
}

// String returns the plain text.
func (b *Buffer) String() string {
	return string(b.Text)
}

// Slice returns the plain text in the given range.
func (b *Buffer) Slice(r textpos.Range) string {
	return string(b.Text[r.Start:r.End])
}

// Add adds a new span of given kind, range and attributes, as the most
// recently created span, and returns its Seq. It does not normalize.
func (b *Buffer) Add(k format.Kind, start, end int, attrs map[string]string) int {
	seq := b.NextSeq
	b.NextSeq++
	b.Spans = append(b.Spans, Span{Kind: k, Start: start, End: end, Attrs: attrs, Seq: seq})
	return seq
}

// Sort sorts the spans into canonical order.
func (b *Buffer) Sort() {
	slices.SortStableFunc(b.Spans, compareSpans)
}

// Select returns the indexes of the spans for which fn returns true.
func (b *Buffer) Select(fn func(s *Span) bool) []int {
	var idx []int
	for i := range b.Spans {
		if fn(&b.Spans[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Of returns copies of the spans of the given class, in order.
func (b *Buffer) Of(c format.Class) []Span {
	var sp []Span
	for _, s := range b.Spans {
		if s.Kind.Class() == c {
			sp = append(sp, s)
		}
	}
	return sp
}

// SpansAt returns copies of the inline spans that cover the
// rune at index i.
func (b *Buffer) SpansAt(i int) []Span {
	var sp []Span
	for _, s := range b.Spans {
		if s.Kind.IsInline() && s.Start <= i && i < s.End {
			sp = append(sp, s)
		}
	}
	return sp
}

// BlockAt returns the block span of the unit containing
// rune index i, or nil if the line has no block format.
func (b *Buffer) BlockAt(i int) *Span {
	for k := range b.Spans {
		s := &b.Spans[k]
		if s.Kind.IsBlock() && s.Start <= i && i < s.End {
			return s
		}
	}
	return nil
}

// Equal returns whether the two buffers have the same text and the same
// spans, ignoring creation order numbers.
func (b *Buffer) Equal(o *Buffer) bool {
	if string(b.Text) != string(o.Text) || len(b.Spans) != len(o.Spans) {
		return false
	}
	for i := range b.Spans {
		s, t := &b.Spans[i], &o.Spans[i]
		if s.Start != t.Start || s.End != t.End || !s.SameFormat(t) {
			return false
		}
	}
	return true
}

// Dump returns a debugging representation of the buffer,
// with one line per span and the text it covers.
func (b *Buffer) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q\n", string(b.Text))
	for _, s := range b.Spans {
		if s.Start < 0 || s.End > len(b.Text) || s.End < s.Start {
			fmt.Fprintf(&sb, "[%s]: <out of range>\n", s.String())
			continue
		}
		fmt.Fprintf(&sb, "[%s]: %q\n", s.String(), string(b.Text[s.Start:s.End]))
	}
	return sb.String()
}
