// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Range defines a half-open range [Start, End) of rune indexes
// into a flat text buffer.
type Range struct {
	// Start is the starting index of the range.
	Start int

	// End is the ending index of the range, exclusive.
	End int
}

// R is a convenience constructor for a [Range].
func R(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of runes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has no runes, as for a caret.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if the range contains the given index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Overlaps returns true if the two ranges share at least one rune.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Covers returns true if r contains all of o.
func (r Range) Covers(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Intersect returns the intersection of the two ranges,
// which is empty (End <= Start) if they do not overlap.
func (r Range) Intersect(o Range) Range {
	return Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
}

// Valid returns true if the range is not inverted and
// lies within [0, n].
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= n
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
