// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"fmt"
	"slices"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/textpos"
)

// ErrInvalidRange is returned for a position or range outside of the text.
var ErrInvalidRange = errors.New("invalid range")

// CheckRange returns [ErrInvalidRange] if r is not within the text.
func (b *Buffer) CheckRange(r textpos.Range) error {
	if !r.Valid(len(b.Text)) {
		return fmt.Errorf("range %s in text of length %d: %w", r, len(b.Text), ErrInvalidRange)
	}
	return nil
}

// InsertText inserts text at rune index pos, as typing does:
// spans ending at pos grow to include it. Spans starting at or after
// pos shift. Markers at pos stay in front of the new text.
// It does not normalize.
func (b *Buffer) InsertText(pos int, text string) error {
	return b.insert(pos, []rune(text), true)
}

// InsertRaw inserts text at rune index pos without growing any span
// that ends at pos. Markers at pos stay in front of the new text.
// It does not normalize.
func (b *Buffer) InsertRaw(pos int, text string) error {
	return b.insert(pos, []rune(text), false)
}

func (b *Buffer) insert(pos int, rs []rune, grow bool) error {
	if err := b.CheckRange(textpos.R(pos, pos)); err != nil {
		return err
	}
	n := len(rs)
	if n == 0 {
		return nil
	}
	b.Text = slices.Insert(b.Text, pos, rs...)
	for i := range b.Spans {
		s := &b.Spans[i]
		if s.Kind.IsMarker() {
			if s.Start > pos {
				s.Start += n
				s.End += n
			}
			continue
		}
		switch {
		case s.Start >= pos:
			s.Start += n
			s.End += n
		case s.End > pos || (grow && s.End == pos):
			s.End += n
		}
	}
	return nil
}

// InsertMarker adds a marker span of given kind at rune index pos, after
// any markers already there. It does not normalize.
func (b *Buffer) InsertMarker(pos int, k format.Kind) error {
	if err := b.CheckRange(textpos.R(pos, pos)); err != nil {
		return err
	}
	if !k.IsMarker() {
		return fmt.Errorf("spans.InsertMarker: %v is not a marker: %w", k, format.ErrUnsupportedKind)
	}
	b.Add(k, pos, pos, nil)
	return nil
}

// Delete removes the text in range r. Spans shrink, and non-marker spans
// left empty are removed. Markers strictly inside r are removed, and
// markers at its edges end up at r.Start. It does not normalize.
func (b *Buffer) Delete(r textpos.Range) error {
	if err := b.CheckRange(r); err != nil {
		return err
	}
	n := r.Len()
	if n == 0 {
		return nil
	}
	b.Text = slices.Delete(b.Text, r.Start, r.End)
	adjust := func(p int) int {
		switch {
		case p <= r.Start:
			return p
		case p < r.End:
			return r.Start
		}
		return p - n
	}
	b.Spans = slices.DeleteFunc(b.Spans, func(s Span) bool {
		if s.Kind.IsMarker() {
			return s.Start > r.Start && s.Start < r.End
		}
		return adjust(s.Start) >= adjust(s.End)
	})
	for i := range b.Spans {
		s := &b.Spans[i]
		s.Start, s.End = adjust(s.Start), adjust(s.End)
	}
	return nil
}
