// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formatting

import (
	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

// insertMarker replaces the text in r with a marker of kind k.
// A marker inside a line splits it, with the block format of the line
// on both sides. A caret at the end of a line goes after its newline.
// The document always has a line before a marker at its start, and
// a line after a marker at its end.
// It must be normalized after, not before, the marker goes in.
func insertMarker(b *spans.Buffer, r textpos.Range, k format.Kind) {
	errors.Log(b.Delete(r))
	p, n := r.Start, b.Len()
	if p < n && b.Text[p] == '\n' {
		p++
	}
	switch {
	case p == n:
		errors.Log(b.InsertMarker(p, k))
		errors.Log(b.InsertRaw(p, "\n"))
	case p == 0:
		errors.Log(b.InsertRaw(0, "\n"))
		errors.Log(b.InsertMarker(1, k))
	default:
		errors.Log(b.InsertMarker(p, k))
	}
}

// InsertMarker returns a new buffer with the text in r replaced by a
// marker of kind k, which must be a marker kind.
func InsertMarker(buf *spans.Buffer, r textpos.Range, k format.Kind) (*spans.Buffer, error) {
	if !k.IsMarker() {
		return nil, errors.Wrapf(ErrUnsupportedKind, "formatting.InsertMarker: %v is not a marker", k)
	}
	return DefaultOptions().Toggle(buf, r, k, nil)
}
