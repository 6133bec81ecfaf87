// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formatting

import (
	"fmt"
	"slices"

	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

// InsertText returns a new buffer with text typed at rune index pos,
// formatted with the given inline styles, outermost first. Spans that
// end at pos do not grow, so formatting continues only through the
// given styles, while spans strictly containing pos extend over the
// new text. The line of pos keeps its block format.
func InsertText(buf *spans.Buffer, pos int, text string, styles ...format.Kind) (*spans.Buffer, error) {
	for _, k := range styles {
		if !k.IsInline() {
			return nil, fmt.Errorf("formatting.InsertText: %v is not an inline kind: %w", k, ErrUnsupportedKind)
		}
	}
	b, err := begin(buf, textpos.R(pos, pos))
	if err != nil {
		return nil, fmt.Errorf("formatting.InsertText: %w", err)
	}
	n := len([]rune(text))
	if n == 0 {
		return b, nil
	}
	if err := b.InsertRaw(pos, text); err != nil {
		return nil, err
	}
	for _, k := range styles {
		b.Add(k, pos, pos+n, nil)
	}
	b.Normalize()
	return b, nil
}

// DeleteText returns a new buffer with the text in r removed.
// When r spans lines, the joined line takes the block format of
// the first one.
func DeleteText(buf *spans.Buffer, r textpos.Range) (*spans.Buffer, error) {
	b, err := begin(buf, r)
	if err != nil {
		return nil, fmt.Errorf("formatting.DeleteText: %w", err)
	}
	if err := b.Delete(r); err != nil {
		return nil, err
	}
	b.Normalize()
	return b, nil
}

// RemoveInline returns a new buffer with all inline formatting
// removed from the text in r.
func RemoveInline(buf *spans.Buffer, r textpos.Range) (*spans.Buffer, error) {
	b, err := begin(buf, r)
	if err != nil {
		return nil, fmt.Errorf("formatting.RemoveInline: %w", err)
	}
	cut(b, r, func(s *spans.Span) bool { return s.Kind.IsInline() })
	b.Normalize()
	return b, nil
}

// ActiveFormats returns the kinds that apply uniformly over the
// selection r, in kind order, as for the state of toolbar buttons.
// An inline kind is active if it covers all of r, or for a caret, the
// character before it. A block kind is active if every line that the
// selection touches has it.
func ActiveFormats(buf *spans.Buffer, r textpos.Range) ([]format.Kind, error) {
	b, err := begin(buf, r)
	if err != nil {
		return nil, fmt.Errorf("formatting.ActiveFormats: %w", err)
	}
	var ks []format.Kind
	text := slices.ContainsFunc(b.Text[r.Start:r.End], func(c rune) bool { return c != '\n' })
	for _, k := range format.Catalog.Keys() {
		if !k.IsInline() {
			continue
		}
		switch {
		case r.IsEmpty():
			p := r.Start
			if slices.ContainsFunc(b.Spans, func(s spans.Span) bool { return s.Kind == k && s.Start < p && p <= s.End }) {
				ks = append(ks, k)
			}
		case text && covered(b, r, k, nil):
			ks = append(ks, k)
		}
	}
	units := b.Units()
	sel := selected(units, r)
	if len(sel) > 0 && units[sel[0]].Block >= 0 {
		k := b.Spans[units[sel[0]].Block].Kind
		if !slices.ContainsFunc(sel, func(ui int) bool {
			u := &units[ui]
			return u.Block < 0 || b.Spans[u.Block].Kind != k
		}) {
			ks = append(ks, k)
		}
	}
	slices.Sort(ks)
	return ks, nil
}
