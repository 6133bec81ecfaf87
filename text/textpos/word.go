// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "unicode"

// RuneIsWordBreak returns true if given rune counts as a word break
// for the purposes of selecting words.
func RuneIsWordBreak(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}

// inWord returns whether the rune at i is part of a word. An apostrophe
// is, when it has word runes on both sides, as in "don't".
func inWord(txt []rune, i int) bool {
	if i < 0 || i >= len(txt) {
		return false
	}
	if txt[i] == '\'' {
		return i > 0 && i+1 < len(txt) && !RuneIsWordBreak(txt[i-1]) && !RuneIsWordBreak(txt[i+1])
	}
	return !RuneIsWordBreak(txt[i])
}

// WordAt returns the range of the word at a caret at index pos: the word
// containing the rune at pos, or else the word that ends at pos.
// If there is no such word, it returns the empty range at pos,
// clamped to the text.
func WordAt(txt []rune, pos int) Range {
	pos = min(max(pos, 0), len(txt))
	start := pos
	if !inWord(txt, start) {
		if !inWord(txt, pos-1) {
			return Range{Start: pos, End: pos}
		}
		start = pos - 1
	}
	end := start + 1
	for start > 0 && inWord(txt, start-1) {
		start--
	}
	for end < len(txt) && inWord(txt, end) {
		end++
	}
	return Range{Start: start, End: end}
}
