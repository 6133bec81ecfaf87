// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formatting

import (
	"maps"
	"slices"

	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

// matches returns whether s has the requested attributes.
// Empty attrs match any.
func matches(s *spans.Span, attrs map[string]string) bool {
	return len(attrs) == 0 || spans.AttrsEqual(s.Attrs, attrs)
}

// covered returns whether every character in r, other than newlines,
// is in a span of kind k with the given attributes. Newlines do not
// count because inline spans end at block boundaries.
func covered(b *spans.Buffer, r textpos.Range, k format.Kind, attrs map[string]string) bool {
	for i := r.Start; i < r.End; i++ {
		if b.Text[i] == '\n' {
			continue
		}
		in := false
		for si := range b.Spans {
			s := &b.Spans[si]
			if s.Kind == k && s.Range().Contains(i) && matches(s, attrs) {
				in = true
				break
			}
		}
		if !in {
			return false
		}
	}
	return true
}

// cut removes range r from the spans for which match returns true,
// keeping the pieces before and after r with their creation order.
func cut(b *spans.Buffer, r textpos.Range, match func(s *spans.Span) bool) {
	var out []spans.Span
	for _, s := range b.Spans {
		if !match(&s) || s.Range().Intersect(r).IsEmpty() {
			out = append(out, s)
			continue
		}
		if s.Start < r.Start {
			p := s
			p.End = r.Start
			out = append(out, p)
		}
		if s.End > r.End {
			p := s
			p.Start = r.End
			p.Attrs = maps.Clone(s.Attrs)
			out = append(out, p)
		}
	}
	b.Spans = out
}

func toggleInline(b *spans.Buffer, r textpos.Range, k format.Kind, attrs map[string]string) {
	if r.IsEmpty() {
		return
	}
	if covered(b, r, k, attrs) {
		cut(b, r, func(s *spans.Span) bool {
			return s.Kind == k && matches(s, attrs)
		})
		return
	}
	// a new link or font replaces a different one
	cut(b, r, func(s *spans.Span) bool {
		return s.Kind == k && !spans.AttrsEqual(s.Attrs, attrs)
	})
	seq := b.Add(k, r.Start, r.End, maps.Clone(attrs))
	join(b, seq)
}

// join merges the span with the given seq and the spans of the same
// format that touch or overlap it into one span, which keeps the
// oldest seq.
func join(b *spans.Buffer, seq int) {
	i := slices.IndexFunc(b.Spans, func(s spans.Span) bool { return s.Seq == seq })
	nw := b.Spans[i]
	b.Spans = slices.Delete(b.Spans, i, i+1)
	for {
		j := slices.IndexFunc(b.Spans, func(s spans.Span) bool {
			return s.SameFormat(&nw) && s.End >= nw.Start && s.Start <= nw.End
		})
		if j < 0 {
			break
		}
		s := b.Spans[j]
		nw.Start, nw.End, nw.Seq = min(nw.Start, s.Start), max(nw.End, s.End), min(nw.Seq, s.Seq)
		b.Spans = slices.Delete(b.Spans, j, j+1)
	}
	b.Spans = append(b.Spans, nw)
}
