// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/textpos"
)

// Span is a formatting annotation over the rune range [Start, End)
// of a [Buffer]. Marker spans are zero width (Start == End).
type Span struct {

	// Kind is the format kind of the span.
	Kind format.Kind

	// Start is the first rune index covered by the span.
	Start int

	// End is the rune index after the last covered rune.
	End int

	// Attrs has the kind-specific attributes, such as the href of a link.
	Attrs map[string]string

	// Seq is the creation order of the span within its buffer,
	// which breaks ties in nesting order: earlier is outer.
	Seq int
}

// Range returns the range of the span.
func (s *Span) Range() textpos.Range {
	return textpos.Range{Start: s.Start, End: s.End}
}

// Class returns the structural class of the span kind.
func (s *Span) Class() format.Class {
	return s.Kind.Class()
}

// Len returns the number of runes covered by the span.
func (s *Span) Len() int {
	return s.End - s.Start
}

// SameFormat returns whether the two spans have the same kind and
// attributes, and thus read as the same tag.
func (s *Span) SameFormat(o *Span) bool {
	return s.Kind == o.Kind && AttrsEqual(s.Attrs, o.Attrs)
}

// AttrsEqual returns whether two attribute maps are the same,
// treating nil and empty as equal.
func AttrsEqual(a, b map[string]string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return maps.Equal(a, b)
}

// AttrsString returns the attributes as sorted name="value" pairs.
func AttrsString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(attrs))
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%q", k, attrs[k])
	}
	return b.String()
}

func (s Span) String() string {
	str := fmt.Sprintf("%s %d:%d", s.Kind.Kebab(), s.Start, s.End)
	if len(s.Attrs) > 0 {
		str += " " + AttrsString(s.Attrs)
	}
	return str
}

// compareSpans orders spans by start, with markers first,
// then creation order, which is the nesting order of the serializer.
func compareSpans(a, b Span) int {
	am, bm := a.Kind.IsMarker(), b.Kind.IsMarker()
	switch {
	case a.Start != b.Start:
		return a.Start - b.Start
	case am != bm:
		if am {
			return -1
		}
		return 1
	case a.Seq != b.Seq:
		return a.Seq - b.Seq
	case a.Kind != b.Kind:
		return int(a.Kind - b.Kind)
	}
	return a.End - b.End
}
