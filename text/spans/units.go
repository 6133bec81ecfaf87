// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"slices"

	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/textpos"
)

// Unit is a maximal run of text not containing a newline or a marker.
// A unit ends at a newline (which belongs to it), at one or more
// markers, or at the end of the text. Units are the lines that block
// spans apply to.
type Unit struct {

	// Start is the rune index of the first character.
	Start int

	// End is the index after the last character, excluding the newline.
	End int

	// Next is the start of the following unit: End+1 after a newline,
	// End otherwise.
	Next int

	// Block is the index in [Buffer.Spans] of the block span of the unit,
	// or -1 if it has none.
	Block int

	// Markers are the indexes in [Buffer.Spans] of the markers at End
	// that terminate the unit, in order.
	Markers []int
}

// Newline returns whether the unit is terminated by a newline.
func (u *Unit) Newline() bool {
	return u.Next > u.End
}

// Content returns the range of the unit, excluding the newline.
func (u *Unit) Content() textpos.Range {
	return textpos.Range{Start: u.Start, End: u.End}
}

// Extent returns the range of the unit including its newline,
// which is the range of its block span.
func (u *Unit) Extent() textpos.Range {
	return textpos.Range{Start: u.Start, End: u.Next}
}

// IsEmpty returns true if the unit has no characters other than
// its newline. Empty units do not carry a block format.
func (u *Unit) IsEmpty() bool {
	return u.End == u.Start
}

// markerOrder returns the indexes of the marker spans sorted by
// position and creation order.
func (b *Buffer) markerOrder() []int {
	idx := b.Select(func(s *Span) bool { return s.Kind.IsMarker() })
	slices.SortStableFunc(idx, func(i, j int) int {
		return compareSpans(b.Spans[i], b.Spans[j])
	})
	return idx
}

// Units returns the units of the buffer. There is always at least one
// unit, and the last unit ends at the end of the text with no newline.
// The block of each unit is the block span covering its first character,
// preferring the earliest starting one and then the earliest created.
func (b *Buffer) Units() []Unit {
	markers := b.markerOrder()
	n := len(b.Text)
	var units []Unit
	pos, mi := 0, 0
	for {
		nl := pos
		for nl < n && b.Text[nl] != '\n' {
			nl++
		}
		u := Unit{Start: pos, Block: -1}
		if mi < len(markers) && b.Spans[markers[mi]].Start <= nl {
			mp := max(b.Spans[markers[mi]].Start, pos)
			u.End, u.Next = mp, mp
			for mi < len(markers) && b.Spans[markers[mi]].Start <= mp {
				u.Markers = append(u.Markers, markers[mi])
				mi++
			}
			units = append(units, u)
			pos = mp
			continue
		}
		if nl < n {
			u.End, u.Next = nl, nl+1
			units = append(units, u)
			pos = nl + 1
			continue
		}
		u.End, u.Next = n, n
		units = append(units, u)
		break
	}
	for i := range units {
		u := &units[i]
		if u.IsEmpty() {
			continue
		}
		best := -1
		for k := range b.Spans {
			s := &b.Spans[k]
			if !s.Kind.IsBlock() || s.Start > u.Start || s.End <= u.Start {
				continue
			}
			if best < 0 || s.Start < b.Spans[best].Start ||
				(s.Start == b.Spans[best].Start && s.Seq < b.Spans[best].Seq) {
				best = k
			}
		}
		u.Block = best
	}
	return units
}

// UnitAt returns the index within units of the unit containing rune
// index i. A position at the end of a unit terminated by markers
// belongs to the unit after the markers.
func UnitAt(units []Unit, i int) int {
	for k := range units {
		u := &units[k]
		if i < u.Start {
			break
		}
		if i < u.End || (i == u.End && len(u.Markers) == 0) {
			return k
		}
	}
	return len(units) - 1
}

// BlockKind returns the block kind of the unit, and false if it has none.
func (b *Buffer) BlockKind(u *Unit) (format.Kind, bool) {
	if u.Block < 0 {
		return 0, false
	}
	return b.Spans[u.Block].Kind, true
}

// blockAttrs returns the attributes of the block of the unit.
func (b *Buffer) blockAttrs(u *Unit) map[string]string {
	if u.Block < 0 {
		return nil
	}
	return b.Spans[u.Block].Attrs
}

// Joined returns whether the newline ending unit u continues into the
// following unit v within the same element: both have no block,
// or both are in the same grouping block (such as a quote or pre)
// with the same attributes. A unit ending in markers is never joined.
func (b *Buffer) Joined(u, v *Unit) bool {
	if !u.Newline() {
		return false
	}
	uk, uok := b.BlockKind(u)
	vk, vok := b.BlockKind(v)
	if !uok && !vok {
		return true
	}
	if !uok || !vok || uk != vk {
		return false
	}
	info := uk.Info()
	if !info.Groups || info.Container != "" {
		return false
	}
	return AttrsEqual(b.blockAttrs(u), b.blockAttrs(v))
}

// Context is a maximal run of joined units, which is rendered
// as a single element (or as plain text when it has no block).
type Context struct {

	// First and Last are the indexes of the first and last unit.
	First, Last int

	// Range is the content range, from the start of the first unit
	// to the end of the last one, excluding its newline.
	Range textpos.Range
}

// Contexts returns the contexts of the given units. Inline spans
// never cross the boundary between two contexts. Empty lines between
// two lines of the same quote or pre are part of its context.
func (b *Buffer) Contexts(units []Unit) []Context {
	var cs []Context
	for i := 0; i < len(units); {
		j := i
		for j+1 < len(units) {
			if b.Joined(&units[j], &units[j+1]) {
				j++
			} else if k := b.bridge(units, j); k > 0 {
				j = k
			} else {
				break
			}
		}
		cs = append(cs, Context{First: i, Last: j, Range: textpos.Range{Start: units[i].Start, End: units[j].End}})
		i = j + 1
	}
	return cs
}

// bridge returns the index of the unit after the empty lines that
// follow unit j, when that unit is in the same grouping block as j,
// or -1.
func (b *Buffer) bridge(units []Unit, j int) int {
	u := &units[j]
	k, ok := b.BlockKind(u)
	if !ok || !u.Newline() || !k.Info().Groups || k.Info().Container != "" {
		return -1
	}
	i := j + 1
	for i < len(units) && units[i].IsEmpty() && units[i].Newline() {
		i++
	}
	if i == j+1 || i == len(units) {
		return -1
	}
	v := &units[i]
	if vk, ok := b.BlockKind(v); !ok || vk != k || !AttrsEqual(b.blockAttrs(u), b.blockAttrs(v)) {
		return -1
	}
	return i
}
