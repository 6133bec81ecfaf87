// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// ParseOptions are the options for reading HTML.
type ParseOptions struct {

	// Charset is the label of the character encoding of the input,
	// such as "windows-1252". The input is decoded from it to UTF-8.
	// Empty means the input is already UTF-8.
	Charset string `toml:"charset" yaml:"charset"`

	// Normalize is whether to convert text to Unicode normalization
	// form C (composed characters).
	Normalize bool `toml:"normalize" yaml:"normalize"`
}

// role is what an open element does to the buffer.
type role int32

const (
	// opaque elements keep their text with no spans.
	opaque role = iota

	// inline elements add an inline span.
	inline

	// block elements add a block span to each of their lines.
	block

	// list elements (ol, ul) hold the list items.
	list

	// transparent elements are paragraphs directly inside a quote
	// or list item, which only break lines.
	transparent
)

// element is an open element on the parse stack.
type element struct {
	tag   string
	role  role
	kind  format.Kind
	attrs map[string]string
	start int
	seq   int
}

// reader converts one HTML document to a [spans.Buffer].
type reader struct {
	opts  ParseOptions
	buf   *spans.Buffer
	stack []*element

	// pending is set at block element boundaries: a line break is
	// needed before any following content.
	pending bool

	// markers are the positions of the markers added so far.
	markers map[int]bool
}

// voids are the elements that never have content or an end tag.
var voids = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ParseHTML reads HTML from r into a new normalized buffer. Only the
// supported tags produce spans; other elements keep their text content.
// Markup errors return [ErrMalformedMarkup] and block elements nested in
// other blocks return [ErrConflictingBlockFormat]. opts may be nil.
func ParseHTML(r io.Reader, opts *ParseOptions) (*spans.Buffer, error) {
	p := &reader{buf: spans.New(), markers: map[int]bool{}}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.Charset != "" {
		cr, err := charset.NewReaderLabel(p.opts.Charset, r)
		if err != nil {
			return nil, errors.Wrapf(err, "htmltext.ParseHTML: charset %q", p.opts.Charset)
		}
		r = cr
	}
	if err := p.parse(html.NewTokenizer(r)); err != nil {
		return nil, err
	}
	p.buf.Normalize()
	slog.Debug("htmltext: parsed HTML", "runes", p.buf.Len(), "spans", len(p.buf.Spans))
	return p.buf, nil
}

// ParseString reads HTML from the given string with default options.
func ParseString(s string) (*spans.Buffer, error) {
	return ParseHTML(strings.NewReader(s), nil)
}

func (p *reader) parse(z *html.Tokenizer) error {
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Wrapf(err, "htmltext.ParseHTML")
			}
			if n := len(p.stack); n > 0 {
				return p.malformed("unclosed <%s> at end of input", p.stack[n-1].tag)
			}
			return nil
		case html.TextToken:
			p.text(string(z.Text()))
		case html.CommentToken:
			if k, ok := format.ByComment(strings.TrimSpace(string(z.Text()))); ok {
				p.marker(k)
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			attrs := map[string]string{}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs[string(key)] = string(val)
			}
			if err := p.start(string(name), attrs, tt == html.SelfClosingTagToken); err != nil {
				return err
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if err := p.end(string(name)); err != nil {
				return err
			}
		}
	}
}

func (p *reader) malformed(msg string, a ...any) error {
	return p.fail(ErrMalformedMarkup, msg, a...)
}

func (p *reader) conflict(msg string, a ...any) error {
	return p.fail(ErrConflictingBlockFormat, msg, a...)
}

// fail returns an error wrapping err, with the message and the
// current write position.
func (p *reader) fail(err error, msg string, a ...any) error {
	return fmt.Errorf("htmltext.ParseHTML: at %d: %s: %w", p.buf.Len(), fmt.Sprintf(msg, a...), err)
}

// atLineStart returns whether the write position starts a line.
func (p *reader) atLineStart() bool {
	n := p.buf.Len()
	return n == 0 || p.buf.Text[n-1] == '\n' || p.markers[n]
}

// breakLine writes a pending line break, unless already at a line start.
// Open elements starting at the break move past it.
func (p *reader) breakLine() {
	if p.pending && !p.atLineStart() {
		n := p.buf.Len()
		p.buf.Text = append(p.buf.Text, '\n')
		for _, el := range p.stack {
			if el.start == n {
				el.start = n + 1
			}
		}
	}
	p.pending = false
}

func (p *reader) text(s string) {
	if p.inPre() {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	} else {
		if strings.TrimSpace(s) == "" && (p.pending || p.inList() || strings.ContainsAny(s, "\n\r")) {
			return
		}
		s = strings.Map(func(r rune) rune {
			switch r {
			case '\n', '\r', '\t':
				return ' '
			}
			return r
		}, s)
	}
	if s == "" {
		return
	}
	if p.opts.Normalize {
		s = norm.NFC.String(s)
	}
	p.breakLine()
	p.buf.Text = append(p.buf.Text, []rune(s)...)
}

func (p *reader) marker(k format.Kind) {
	n := p.buf.Len()
	p.buf.Add(k, n, n, nil)
	p.markers[n] = true
	p.pending = false
}

// inPre returns whether a pre element is open.
func (p *reader) inPre() bool {
	for _, el := range p.stack {
		if el.role == block && el.kind == format.Preformat {
			return true
		}
	}
	return false
}

// inList returns whether the innermost open element is a list.
func (p *reader) inList() bool {
	n := len(p.stack)
	return n > 0 && p.stack[n-1].role == list
}

// blockParent returns the innermost open block or list element, or nil.
func (p *reader) blockParent() *element {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if r := p.stack[i].role; r == block || r == list {
			return p.stack[i]
		}
	}
	return nil
}

func (p *reader) push(el *element) {
	el.start = p.buf.Len()
	el.seq = p.buf.NextSeq
	p.buf.NextSeq++
	p.stack = append(p.stack, el)
}

func (p *reader) start(tag string, attrs map[string]string, selfClosing bool) error {
	switch tag {
	case "br":
		p.breakLine()
		p.buf.Text = append(p.buf.Text, '\n')
		return nil
	case "li":
		par := p.blockParent()
		if par != nil && par.role != list {
			return p.conflict("<li> inside <%s>", par.tag)
		}
		k := format.UnorderedList
		var la map[string]string
		if par != nil {
			k, la = par.kind, par.attrs
		}
		p.pending = true
		p.push(&element{tag: tag, role: block, kind: k, attrs: la})
		return nil
	}
	k, known := format.ByTag(tag)
	if known && k.IsMarker() {
		p.marker(k)
		return nil
	}
	if voids[tag] || selfClosing {
		return nil
	}
	if !known {
		p.push(&element{tag: tag, role: opaque})
		return nil
	}
	info := k.Info()
	el := &element{tag: tag, kind: k, attrs: significant(info, attrs)}
	switch {
	case k.IsInline():
		el.role = inline
	case info.Container == tag:
		if par := p.blockParent(); par != nil {
			return p.conflict("<%s> inside <%s>", tag, par.tag)
		}
		el.role = list
		p.pending = true
	default:
		par := p.blockParent()
		switch {
		case par == nil:
			el.role = block
		case k == format.Paragraph && par.role == block && (par.kind == format.Quote || par.tag == "li"):
			el.role = transparent
		default:
			return p.conflict("%s <%s> inside %s <%s>", info.Family, tag, par.kind.Info().Family, par.tag)
		}
		p.pending = true
	}
	p.push(el)
	return nil
}

func (p *reader) end(tag string) error {
	if voids[tag] {
		return nil
	}
	n := len(p.stack)
	if n == 0 {
		return p.malformed("closing </%s> with no open element", tag)
	}
	el := p.stack[n-1]
	if el.tag != tag {
		return p.malformed("closing </%s> does not match <%s>", tag, el.tag)
	}
	p.stack = p.stack[:n-1]
	pos := p.buf.Len()
	switch el.role {
	case inline, block:
		if el.start < pos {
			p.buf.Spans = append(p.buf.Spans, spans.Span{Kind: el.kind, Start: el.start, End: pos, Attrs: el.attrs, Seq: el.seq})
		}
	}
	if el.role == block || el.role == list || el.role == transparent {
		p.pending = true
	}
	return nil
}

// significant returns the attributes that are significant for the kind,
// with a font style canonicalized.
func significant(info *format.Info, attrs map[string]string) map[string]string {
	var sa map[string]string
	for name, val := range attrs {
		if !info.HasAttr(name) {
			continue
		}
		if name == "style" {
			val = canonicalStyle(val)
		}
		if sa == nil {
			sa = map[string]string{}
		}
		sa[name] = val
	}
	return sa
}
