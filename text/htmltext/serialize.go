// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"fmt"
	"html"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/spans"
	"cogentcore.org/richdoc/text/textpos"
)

// Options are the options for writing HTML.
type Options struct {

	// StrikeTag is the element written for strikethrough:
	// del (the default), strike or s.
	StrikeTag string `toml:"strike-tag" yaml:"strike-tag"`

	// XHTML writes void elements in self-closing form, as <br />.
	XHTML bool `toml:"xhtml" yaml:"xhtml"`
}

// DefaultOptions returns the default writing options.
func DefaultOptions() *Options {
	return &Options{StrikeTag: "del"}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// writer writes the HTML for one buffer.
type writer struct {
	sb   strings.Builder
	opts *Options
	buf  *spans.Buffer

	// open are the inline spans with open tags, outermost first.
	open []spans.Span

	// list is the block span of the open list container, if any.
	list *spans.Span
}

// ToHTML returns the canonical HTML for the given buffer. Identical
// buffers always produce identical output. A buffer that violates the
// document model invariants returns an error wrapping
// [spans.ErrCorruptDocumentModel]. opts may be nil for defaults.
func ToHTML(buf *spans.Buffer, opts *Options) (string, error) {
	if err := buf.Validate(); err != nil {
		return "", fmt.Errorf("htmltext.ToHTML: %w", err)
	}
	w := &writer{opts: DefaultOptions(), buf: buf}
	if opts != nil {
		w.opts = opts
	}
	units := buf.Units()
	contexts := buf.Contexts(units)
	for ci, c := range contexts {
		first, last := &units[c.First], &units[c.Last]
		var next *spans.Unit
		if ci+1 < len(contexts) {
			next = &units[contexts[ci+1].First]
		}
		w.context(first, last, next, c.Range)
	}
	w.closeList()
	slog.Debug("htmltext: wrote HTML", "runes", buf.Len(), "spans", len(buf.Spans), "bytes", w.sb.Len())
	return w.sb.String(), nil
}

// MustHTML returns [ToHTML] with default options, panicking on error.
func MustHTML(buf *spans.Buffer) string {
	return errors.Must1(ToHTML(buf, nil))
}

// context writes one context, followed by the markers that end it.
func (w *writer) context(first, last, next *spans.Unit, r textpos.Range) {
	var bs *spans.Span
	if first.Block >= 0 {
		bs = &w.buf.Spans[first.Block]
	}
	sep := "<br>"
	if w.opts.XHTML {
		sep = "<br />"
	}
	switch {
	case bs == nil:
		w.closeList()
		w.inline(r, sep)
		if last.IsEmpty() && last.Newline() {
			// the next block does not imply this line
			w.sb.WriteString(sep)
		}
	case bs.Kind.Info().Container != "":
		info := bs.Kind.Info()
		if w.list == nil || !w.list.SameFormat(bs) {
			w.closeList()
			w.list = bs
			w.openTag(info.Container, bs.Attrs)
		}
		w.openTag(info.Tag, nil)
		w.inline(r, sep)
		w.closeTag(info.Tag)
		if len(last.Markers) > 0 || !last.Newline() || next == nil || next.Block < 0 || !w.buf.Spans[next.Block].SameFormat(bs) {
			w.closeList()
		}
	default:
		w.closeList()
		tag := bs.Kind.Info().Tag
		if bs.Kind == format.Preformat {
			sep = "\n"
		}
		w.openTag(tag, bs.Attrs)
		w.inline(r, sep)
		w.closeTag(tag)
	}
	if len(last.Markers) > 0 {
		w.closeList()
		for _, mi := range last.Markers {
			w.marker(w.buf.Spans[mi].Kind)
		}
	}
}

func (w *writer) closeList() {
	if w.list == nil {
		return
	}
	w.closeTag(w.list.Kind.Info().Container)
	w.list = nil
}

func (w *writer) marker(k format.Kind) {
	info := k.Info()
	if w.opts.XHTML && info.Comment == "" {
		w.sb.WriteString("<" + info.Tag + " />")
		return
	}
	w.sb.WriteString(info.Token())
}

// inline writes the text in range r with its inline spans, using
// sep for each newline.
func (w *writer) inline(r textpos.Range, sep string) {
	var sp []spans.Span
	cuts := []int{r.Start, r.End}
	for _, s := range w.buf.Spans {
		if !s.Kind.IsInline() {
			continue
		}
		cr := s.Range().Intersect(r)
		if cr.IsEmpty() {
			continue
		}
		sp = append(sp, s)
		cuts = append(cuts, cr.Start, cr.End)
	}
	for i := r.Start; i < r.End; i++ {
		if w.buf.Text[i] == '\n' {
			cuts = append(cuts, i, i+1)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)
	for i := 0; i+1 < len(cuts); i++ {
		run := textpos.R(cuts[i], cuts[i+1])
		var cover []spans.Span
		for _, s := range sp {
			if s.Range().Covers(run) {
				cover = append(cover, s)
			}
		}
		slices.SortStableFunc(cover, func(a, b spans.Span) int {
			if a.Start != b.Start {
				return a.Start - b.Start
			}
			return a.Seq - b.Seq
		})
		w.sync(cover)
		if w.buf.Text[run.Start] == '\n' {
			w.sb.WriteString(sep)
			continue
		}
		w.sb.WriteString(textEscaper.Replace(string(w.buf.Text[run.Start:run.End])))
	}
	w.sync(nil)
}

// sync makes the open inline tags match the given spans, outermost
// first, keeping the longest matching prefix of the open tags so that
// contiguous spans of the same format share one element.
func (w *writer) sync(cover []spans.Span) {
	keep := 0
	for keep < len(w.open) && keep < len(cover) && w.open[keep].SameFormat(&cover[keep]) {
		keep++
	}
	for i := len(w.open) - 1; i >= keep; i-- {
		w.closeTag(w.inlineTag(w.open[i].Kind))
	}
	w.open = w.open[:keep]
	for _, s := range cover[keep:] {
		w.openTag(w.inlineTag(s.Kind), s.Attrs)
		w.open = append(w.open, s)
	}
}

func (w *writer) inlineTag(k format.Kind) string {
	if k == format.Strikethrough && w.opts.StrikeTag != "" {
		return w.opts.StrikeTag
	}
	return k.Info().Tag
}

func (w *writer) openTag(tag string, attrs map[string]string) {
	w.sb.WriteString("<" + tag)
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		w.sb.WriteString(" " + k + `="` + html.EscapeString(attrs[k]) + `"`)
	}
	w.sb.WriteString(">")
}

func (w *writer) closeTag(tag string) {
	w.sb.WriteString("</" + tag + ">")
}
