// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmltext converts between HTML and the annotated
// [spans.Buffer] rich text model: [ParseHTML] reads the supported tag
// vocabulary into spans, [ToHTML] writes the canonical HTML for a
// buffer, and [ParseMarkdown] imports markdown through HTML.
package htmltext

import (
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"github.com/aymerick/douceur/parser"
)

var (
	// ErrMalformedMarkup is returned for a closing tag that does not match
	// the open element, or elements left open at the end of the input.
	ErrMalformedMarkup = errors.New("malformed markup")

	// ErrConflictingBlockFormat is returned for a block element inside
	// another block element, which would claim two block formats
	// for the same line.
	ErrConflictingBlockFormat = errors.New("conflicting block format")
)

// canonicalStyle returns the given inline CSS style attribute in a
// canonical form: lower case property names, single spaces, and
// semicolons between declarations. An unparsable style is kept as is.
func canonicalStyle(style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		return ""
	}
	// the CSS parser is strict about the final semicolon
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		errors.Log(err)
		return strings.TrimSuffix(style, ";")
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		s := strings.ToLower(d.Property) + ": " + strings.TrimSpace(d.Value)
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
