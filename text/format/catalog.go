// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format is the style catalog: the static registry of the
// format kinds that can be applied to rich text, their structural
// [Class], block [Family], and the HTML tags used to read and write them.
package format

import (
	"fmt"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/base/ordmap"
)

// ErrUnsupportedKind is returned for a [Kind] that is not in the [Catalog].
var ErrUnsupportedKind = errors.New("unsupported format kind")

// Class is the structural class of a format kind.
type Class int32

const (
	// Inline kinds are character level, may overlap other inline
	// spans, and serialize as nested tags.
	Inline Class = iota

	// Block kinds are line level: each line has at most one.
	Block

	// Marker kinds are zero-width atomic tokens that split
	// the block containing them.
	Marker
)

func (c Class) String() string {
	switch c {
	case Inline:
		return "Inline"
	case Block:
		return "Block"
	case Marker:
		return "Marker"
	}
	return fmt.Sprintf("Class(%d)", int32(c))
}

// Family groups block kinds that are mutually exclusive alternatives
// of each other. Since a line only ever has one block, the family
// is used for parse conflict messages and for toggle policy.
type Family int32

const (
	FamilyNone Family = iota
	FamilyList
	FamilyQuote
	FamilyHeading
	FamilyPreformat
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyList:
		return "list"
	case FamilyQuote:
		return "quote"
	case FamilyHeading:
		return "heading"
	case FamilyPreformat:
		return "preformat"
	}
	return fmt.Sprintf("Family(%d)", int32(f))
}

// Info has the catalog entry for a [Kind].
type Info struct {

	// Kind is the format kind this is for.
	Kind Kind

	// Class is the structural class.
	Class Class

	// Family is the block family, [FamilyNone] for non-blocks.
	Family Family

	// Tag is the canonical element written for this kind. For lists
	// it is the item tag, with the list tag in Container.
	Tag string

	// Container is the outer element for two-tag kinds (ol, ul).
	Container string

	// Aliases are other element names read as this kind.
	Aliases []string

	// Comment is the comment text for comment markers (more, nextpage).
	Comment string

	// Groups is whether consecutive lines of this block kind share
	// one container element: list items one list, quote lines one
	// blockquote separated by <br>, pre lines one pre.
	Groups bool

	// Attrs are the element attributes that are significant for
	// this kind; others are dropped on read.
	Attrs []string
}

// Token returns the literal markup for a marker kind.
func (in *Info) Token() string {
	if in.Comment != "" {
		return "<!--" + in.Comment + "-->"
	}
	return "<" + in.Tag + ">"
}

// HasAttr returns whether the given attribute is significant.
func (in *Info) HasAttr(name string) bool {
	for _, a := range in.Attrs {
		if a == name {
			return true
		}
	}
	return false
}

func entry(in *Info) ordmap.KeyValue[Kind, *Info] {
	return ordmap.KeyValue[Kind, *Info]{Key: in.Kind, Value: in}
}

func heading(k Kind, tag string) ordmap.KeyValue[Kind, *Info] {
	return entry(&Info{Kind: k, Class: Block, Family: FamilyHeading, Tag: tag})
}

func inline(k Kind, tag string, aliases ...string) ordmap.KeyValue[Kind, *Info] {
	return entry(&Info{Kind: k, Class: Inline, Tag: tag, Aliases: aliases})
}

// Catalog is the registry of all kinds, in [Kind] order.
// It is not modified after package initialization.
var Catalog = ordmap.Make([]ordmap.KeyValue[Kind, *Info]{
	heading(Heading1, "h1"),
	heading(Heading2, "h2"),
	heading(Heading3, "h3"),
	heading(Heading4, "h4"),
	heading(Heading5, "h5"),
	heading(Heading6, "h6"),
	entry(&Info{Kind: UnorderedList, Class: Block, Family: FamilyList, Tag: "li", Container: "ul", Groups: true}),
	entry(&Info{Kind: OrderedList, Class: Block, Family: FamilyList, Tag: "li", Container: "ol", Groups: true, Attrs: []string{"type", "start", "reversed"}}),
	inline(Bold, "b", "strong"),
	inline(Italic, "i", "em"),
	inline(Underline, "u"),
	inline(Strikethrough, "del", "strike", "s"),
	entry(&Info{Kind: Quote, Class: Block, Family: FamilyQuote, Tag: "blockquote", Groups: true}),
	entry(&Info{Kind: Link, Class: Inline, Tag: "a", Attrs: []string{"href", "target", "rel", "title"}}),
	entry(&Info{Kind: HorizontalRule, Class: Marker, Tag: "hr"}),
	entry(&Info{Kind: More, Class: Marker, Comment: "more"}),
	entry(&Info{Kind: Page, Class: Marker, Comment: "nextpage"}),
	entry(&Info{Kind: Paragraph, Class: Block, Family: FamilyHeading, Tag: "p"}),
	entry(&Info{Kind: Preformat, Class: Block, Family: FamilyPreformat, Tag: "pre", Groups: true}),
	inline(Big, "big"),
	inline(Small, "small"),
	inline(Superscript, "sup"),
	inline(Subscript, "sub"),
	entry(&Info{Kind: Font, Class: Inline, Tag: "font", Attrs: []string{"face", "color", "size", "style"}}),
	inline(Monospace, "tt"),
	inline(Code, "code"),
})

// tags maps every element and alias name that is read as a kind.
// List item tags are not in it, as their kind comes from the
// enclosing list element.
var tags = func() *ordmap.Map[string, Kind] {
	tm := ordmap.New[string, Kind]()
	for _, in := range Catalog.Values() {
		switch {
		case in.Container != "":
			tm.Add(in.Container, in.Kind)
		case in.Tag != "":
			tm.Add(in.Tag, in.Kind)
		}
		for _, a := range in.Aliases {
			tm.Add(a, in.Kind)
		}
	}
	return tm
}()

// Lookup returns the catalog [Info] for the given kind,
// or [ErrUnsupportedKind].
func Lookup(k Kind) (*Info, error) {
	in, ok := Catalog.ValueByKeyTry(k)
	if !ok {
		return nil, fmt.Errorf("format.Lookup: %v: %w", k, ErrUnsupportedKind)
	}
	return in, nil
}

// ByTag returns the kind read for the given lower case element
// name, including aliases and the ul, ol list elements.
func ByTag(tag string) (Kind, bool) {
	return tags.ValueByKeyTry(tag)
}

// ByComment returns the marker kind for the given comment text,
// such as "more" for <!--more-->.
func ByComment(text string) (Kind, bool) {
	switch text {
	case Catalog.Order[More].Value.Comment:
		return More, true
	case Catalog.Order[Page].Value.Comment:
		return Page, true
	}
	return 0, false
}

// Info returns the catalog [Info] for this kind.
// It panics for an invalid kind; use [Lookup] to check.
func (i Kind) Info() *Info {
	return Catalog.Order[i].Value
}

// Class returns the structural class of this kind.
func (i Kind) Class() Class {
	return i.Info().Class
}

// IsInline returns whether this is an [Inline] kind.
func (i Kind) IsInline() bool { return i.IsValid() && i.Class() == Inline }

// IsBlock returns whether this is a [Block] kind.
func (i Kind) IsBlock() bool { return i.IsValid() && i.Class() == Block }

// IsMarker returns whether this is a [Marker] kind.
func (i Kind) IsMarker() bool { return i.IsValid() && i.Class() == Marker }

// IsHeading returns whether this is one of the six heading levels.
func (i Kind) IsHeading() bool {
	return i >= Heading1 && i <= Heading6
}

// HeadingLevel returns the heading kind for level 1-6.
func HeadingLevel(level int) (Kind, error) {
	if level < 1 || level > 6 {
		return 0, fmt.Errorf("format.HeadingLevel: level %d: %w", level, ErrUnsupportedKind)
	}
	return Heading1 + Kind(level-1), nil
}
