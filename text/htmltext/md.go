// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"bytes"
	"io"
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/spans"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// WikilinkHandler is a function that converts wikilink text to
// a corresponding URL and label text. If it returns "", "", the
// handler will be skipped in favor of the next possible handlers.
// Wikilinks are of the form [[wikilink text]]. Only the text inside
// of the brackets is passed to the handler.
type WikilinkHandler func(text string) (url string, label string)

// GoDocWikilink returns a [WikilinkHandler] that converts wikilinks of the form
// [[prefix:identifier]] to a pkg.go.dev URL starting at base. For example, with
// base="cogentcore.org/richdoc" and prefix="doc", the wikilink [[doc:spans.Buffer]]
// will result in the URL "https://pkg.go.dev/cogentcore.org/richdoc/spans#Buffer".
func GoDocWikilink(base string, prefix string) WikilinkHandler {
	return func(text string) (url string, label string) {
		if !strings.HasPrefix(text, prefix+":") {
			return "", ""
		}
		text = strings.TrimPrefix(text, prefix+":")
		// pkg.go.dev uses fragments for first dot within package
		t := strings.Replace(text, ".", "#", 1)
		url = "https://pkg.go.dev/" + base + "/" + t
		return url, text
	}
}

// MarkdownToHTML converts markdown to HTML using the common
// extensions, resolving wikilinks with the given handlers.
func MarkdownToHTML(md []byte, wikilinks ...WikilinkHandler) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	if len(wikilinks) > 0 {
		prev := p.RegisterInline('[', nil)
		p.RegisterInline('[', wikilink(wikilinks, prev))
	}
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML(md, p, r)
}

// ParseMarkdown converts markdown to HTML and reads it into a new buffer.
// Markdown constructs that have no format kind, such as tables, keep
// their text only. Nested lists return [ErrConflictingBlockFormat].
func ParseMarkdown(md []byte, opts *ParseOptions, wikilinks ...WikilinkHandler) (*spans.Buffer, error) {
	return ParseHTML(bytes.NewReader(MarkdownToHTML(md, wikilinks...)), opts)
}

// ReadMD reads markdown from r into a new buffer; see [ParseMarkdown].
func ReadMD(r io.Reader, opts *ParseOptions, wikilinks ...WikilinkHandler) (*spans.Buffer, error) {
	md, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "htmltext.ReadMD")
	}
	return ParseMarkdown(md, opts, wikilinks...)
}

// wikilink returns an inline parser function. This indirection is
// required because we want to call the previous definition in case
// this is not a wikilink.
func wikilink(handlers []WikilinkHandler, fn func(p *parser.Parser, data []byte, offset int) (int, ast.Node)) func(p *parser.Parser, data []byte, offset int) (int, ast.Node) {
	return func(p *parser.Parser, original []byte, offset int) (int, ast.Node) {
		data := original[offset:]
		n := len(data)
		// minimum: [[X]]
		if n < 5 || data[1] != '[' {
			return fn(p, original, offset)
		}
		end := bytes.Index(data[2:], []byte("]]"))
		if end < 1 {
			return fn(p, original, offset)
		}
		text := string(data[2 : 2+end])
		url, label := "", ""
		for _, h := range handlers {
			u, l := h(text)
			if u == "" && l == "" {
				continue
			}
			url, label = u, l
			break
		}
		if url == "" && label == "" {
			return fn(p, original, offset)
		}
		link := &ast.Link{
			Destination: []byte(url),
		}
		ast.AppendChild(link, &ast.Text{Leaf: ast.Leaf{Literal: []byte(label)}})
		return end + 4, link
	}
}
