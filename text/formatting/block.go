// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formatting

import (
	"maps"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

// togglesOff returns whether applying block kind k to lines that all
// have it removes it. Other block kinds are set.
func togglesOff(k format.Kind) bool {
	return k == format.Quote || k.Info().Container != ""
}

func (o *Options) toggleBlock(b *spans.Buffer, r textpos.Range, k format.Kind, attrs map[string]string) {
	r = o.split(b, r)
	b.Normalize()
	units := b.Units()
	sel := selected(units, r)
	if len(sel) == 0 {
		return
	}
	remove := togglesOff(k)
	for _, ui := range sel {
		u := &units[ui]
		if u.Block < 0 || b.Spans[u.Block].Kind != k || !matches(&b.Spans[u.Block], attrs) {
			remove = false
			break
		}
	}
	drop := map[int]bool{}
	for _, ui := range sel {
		u := &units[ui]
		switch {
		case remove:
			drop[u.Block] = true
		case u.Block >= 0:
			s := &b.Spans[u.Block]
			s.Kind = k
			s.Attrs = maps.Clone(attrs)
		default:
			b.Add(k, u.Start, u.Next, maps.Clone(attrs))
		}
	}
	removeSpans(b, drop)
}

// split breaks the lines at the ends of r when they fall inside the
// content of a line, and returns the moved selection.
func (o *Options) split(b *spans.Buffer, r textpos.Range) textpos.Range {
	if !o.SplitPartialLines || r.IsEmpty() {
		return r
	}
	units := b.Units()
	inside := func(p int) bool {
		u := &units[spans.UnitAt(units, p)]
		return u.Start < p && p < u.End
	}
	if inside(r.End) {
		errors.Log(b.InsertRaw(r.End, "\n"))
	}
	if inside(r.Start) {
		errors.Log(b.InsertRaw(r.Start, "\n"))
		r.Start++
		r.End++
	}
	return r
}

// selected returns the indexes of the non-empty units that the
// selection touches: the unit at the caret for a collapsed selection,
// and otherwise every unit whose extent overlaps r.
func selected(units []spans.Unit, r textpos.Range) []int {
	var sel []int
	if r.IsEmpty() {
		ui := spans.UnitAt(units, r.Start)
		if !units[ui].IsEmpty() {
			sel = append(sel, ui)
		}
		return sel
	}
	for ui := range units {
		u := &units[ui]
		if !u.IsEmpty() && u.Extent().Overlaps(r) {
			sel = append(sel, ui)
		}
	}
	return sel
}
