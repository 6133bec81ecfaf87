// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/richdoc/base/errors"
)

func TestCatalogComplete(t *testing.T) {
	require.Equal(t, int(KindsN), Catalog.Len())
	for i, k := range Bold.Values() {
		in, err := Lookup(k)
		require.NoError(t, err)
		assert.Equal(t, k, in.Kind, "catalog order must match kind order")
		assert.Equal(t, k, Catalog.Order[i].Key)
		if in.Class == Block {
			assert.NotEqual(t, FamilyNone, in.Family, k.String())
		} else {
			assert.Equal(t, FamilyNone, in.Family, k.String())
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup(KindsN)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
	_, err = Lookup(-1)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestClasses(t *testing.T) {
	for _, k := range []Kind{Heading1, Heading6, UnorderedList, OrderedList, Quote, Paragraph, Preformat} {
		assert.True(t, k.IsBlock(), k.String())
	}
	for _, k := range []Kind{Bold, Italic, Underline, Strikethrough, Link, Big, Small, Superscript, Subscript, Font, Monospace, Code} {
		assert.True(t, k.IsInline(), k.String())
	}
	for _, k := range []Kind{HorizontalRule, More, Page} {
		assert.True(t, k.IsMarker(), k.String())
	}
	assert.False(t, KindsN.IsInline())
	assert.True(t, Heading3.IsHeading())
	assert.False(t, Paragraph.IsHeading())
	assert.Equal(t, FamilyHeading, Paragraph.Info().Family)
}

func TestByTag(t *testing.T) {
	tests := map[string]Kind{
		"b": Bold, "strong": Bold, "i": Italic, "em": Italic,
		"strike": Strikethrough, "del": Strikethrough, "s": Strikethrough,
		"ul": UnorderedList, "ol": OrderedList, "blockquote": Quote,
		"h1": Heading1, "h6": Heading6, "p": Paragraph, "pre": Preformat,
		"a": Link, "hr": HorizontalRule, "tt": Monospace, "code": Code,
		"font": Font, "sup": Superscript, "sub": Subscript,
	}
	for tag, want := range tests {
		k, ok := ByTag(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, want, k, tag)
	}
	_, ok := ByTag("li")
	assert.False(t, ok)
	_, ok = ByTag("span")
	assert.False(t, ok)
}

func TestMarkers(t *testing.T) {
	k, ok := ByComment("more")
	assert.True(t, ok)
	assert.Equal(t, More, k)
	k, ok = ByComment("nextpage")
	assert.True(t, ok)
	assert.Equal(t, Page, k)
	_, ok = ByComment(" a comment ")
	assert.False(t, ok)

	assert.Equal(t, "<!--more-->", More.Info().Token())
	assert.Equal(t, "<!--nextpage-->", Page.Info().Token())
	assert.Equal(t, "<hr>", HorizontalRule.Info().Token())
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "UnorderedList", UnorderedList.String())
	assert.Equal(t, "unordered-list", UnorderedList.Kebab())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	for _, k := range Bold.Values() {
		var got Kind
		require.NoError(t, got.SetString(k.Kebab()))
		assert.Equal(t, k, got)
		require.NoError(t, got.SetString(k.String()))
		assert.Equal(t, k, got)
	}
	k, err := ParseKind("BOLD")
	assert.NoError(t, err)
	assert.Equal(t, Bold, k)
	_, err = ParseKind("blink")
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	b, err := Quote.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "quote", string(b))
}

func TestHeadingLevel(t *testing.T) {
	k, err := HeadingLevel(3)
	assert.NoError(t, err)
	assert.Equal(t, Heading3, k)
	_, err = HeadingLevel(7)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}
