// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"fmt"
	"maps"
	"slices"
)

// Normalize restores the document model invariants after edits:
//   - spans are clipped to the text, and empty non-marker spans removed;
//   - each non-empty line gets exactly the block of the block span
//     covering its first character, resized to the line;
//   - inline spans are split where the element containing them ends,
//     so they never cross a marker or a line with a different block;
//   - overlapping inline spans of the same kind are merged when they
//     have the same attributes, otherwise the newer one wins the overlap;
//   - spans are sorted into canonical order.
func (b *Buffer) Normalize() {
	n := len(b.Text)
	b.Spans = slices.DeleteFunc(b.Spans, func(s Span) bool {
		return !s.Kind.IsValid()
	})
	for i := range b.Spans {
		s := &b.Spans[i]
		s.Start = min(max(s.Start, 0), n)
		s.End = min(max(s.End, s.Start), n)
		if s.Kind.IsMarker() {
			s.End = s.Start
		}
		b.NextSeq = max(b.NextSeq, s.Seq+1)
	}
	b.Spans = slices.DeleteFunc(b.Spans, func(s Span) bool {
		return !s.Kind.IsMarker() && s.Start >= s.End
	})

	units := b.Units()
	contexts := b.Contexts(units)
	var out, inl []Span
	for _, u := range units {
		if u.Block < 0 {
			continue
		}
		bs := b.Spans[u.Block]
		bs.Start, bs.End = u.Start, u.Next
		bs.Attrs = maps.Clone(bs.Attrs)
		out = append(out, bs)
	}
	for k, s := range b.Spans {
		switch {
		case s.Kind.IsMarker():
			out = append(out, s)
		case s.Kind.IsInline():
			first := true
			for _, c := range contexts {
				r := s.Range().Intersect(c.Range)
				if r.IsEmpty() {
					continue
				}
				p := b.Spans[k]
				p.Start, p.End = r.Start, r.End
				if !first {
					p.Attrs = maps.Clone(p.Attrs)
				}
				first = false
				inl = append(inl, p)
			}
		}
	}
	b.Spans = append(out, mergeInline(inl)...)
	b.Sort()
}

// mergeInline resolves overlaps between inline spans of the same kind.
func mergeInline(sp []Span) []Span {
	slices.SortStableFunc(sp, compareSpans)
	for {
		i, j := overlapping(sp)
		if i < 0 {
			return sp
		}
		a, c := sp[i], sp[j]
		if AttrsEqual(a.Attrs, c.Attrs) {
			a.Start, a.End, a.Seq = min(a.Start, c.Start), max(a.End, c.End), min(a.Seq, c.Seq)
			sp[i] = a
			sp = slices.Delete(sp, j, j+1)
			continue
		}
		old, nw, oi := a, c, i
		if c.Seq < a.Seq {
			old, nw, oi = c, a, j
		}
		var pieces []Span
		if old.Start < nw.Start {
			p := old
			p.End = nw.Start
			pieces = append(pieces, p)
		}
		if nw.End < old.End {
			p := old
			p.Start = nw.End
			p.Attrs = maps.Clone(old.Attrs)
			pieces = append(pieces, p)
		}
		sp = slices.Replace(sp, oi, oi+1, pieces...)
	}
}

// overlapping returns the indexes of the first two spans of the
// same kind that overlap, or -1, -1.
func overlapping(sp []Span) (int, int) {
	for i := range sp {
		for j := i + 1; j < len(sp); j++ {
			if sp[i].Kind == sp[j].Kind && sp[i].Range().Overlaps(sp[j].Range()) {
				return i, j
			}
		}
	}
	return -1, -1
}

func corrupt(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrCorruptDocumentModel)...)
}

// Validate checks the document model invariants, returning an error
// wrapping [ErrCorruptDocumentModel] for the first violation found:
// spans must lie within the text, markers be zero width and other spans
// non-empty, each block span must cover exactly one non-empty line
// with at most one block per line, and inline spans of the same kind
// must not overlap.
func (b *Buffer) Validate() error {
	n := len(b.Text)
	for _, s := range b.Spans {
		switch {
		case !s.Kind.IsValid():
			return corrupt("span %v has an unsupported kind", s.Kind)
		case s.Start < 0 || s.End > n || s.Start > s.End:
			return corrupt("span %s is outside of text of length %d", s, n)
		case s.Kind.IsMarker() && s.Start != s.End:
			return corrupt("marker span %s is not zero width", s)
		case !s.Kind.IsMarker() && s.Start == s.End:
			return corrupt("span %s is empty", s)
		}
	}
	units := b.Units()
	lines := map[int]int{}
	for i := range units {
		lines[units[i].Start] = i
	}
	seen := make([]bool, len(units))
	for _, s := range b.Spans {
		if !s.Kind.IsBlock() {
			continue
		}
		ui, ok := lines[s.Start] // last unit starting there, after any markers
		if !ok || units[ui].IsEmpty() || units[ui].Next != s.End {
			return corrupt("block span %s does not cover exactly one line", s)
		}
		if seen[ui] {
			return corrupt("line at %d has more than one block span", s.Start)
		}
		seen[ui] = true
	}
	for i, s := range b.Spans {
		if !s.Kind.IsInline() {
			continue
		}
		for _, t := range b.Spans[i+1:] {
			if t.Kind == s.Kind && s.Range().Overlaps(t.Range()) {
				return corrupt("inline spans %s and %s overlap", s, t)
			}
		}
	}
	return nil
}
