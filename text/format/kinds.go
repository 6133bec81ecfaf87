// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Kind is a format kind that can be applied to text,
// as a closed enumeration. The [Catalog] has the [Info]
// for each of them.
type Kind int32

const (
	Heading1 Kind = iota
	Heading2
	Heading3
	Heading4
	Heading5
	Heading6
	UnorderedList
	OrderedList
	Bold
	Italic
	Underline
	Strikethrough
	Quote
	Link
	HorizontalRule
	More
	Page
	Paragraph
	Preformat
	Big
	Small
	Superscript
	Subscript
	Font
	Monospace
	Code

	// KindsN is the number of format kinds.
	KindsN
)

var _KindNames = [...]string{
	"Heading1", "Heading2", "Heading3", "Heading4", "Heading5", "Heading6",
	"UnorderedList", "OrderedList", "Bold", "Italic", "Underline", "Strikethrough",
	"Quote", "Link", "HorizontalRule", "More", "Page", "Paragraph", "Preformat",
	"Big", "Small", "Superscript", "Subscript", "Font", "Monospace", "Code",
}

var _KindValues = func() []Kind {
	vs := make([]Kind, KindsN)
	for i := range vs {
		vs[i] = Kind(i)
	}
	return vs
}()

// _KindNameToValueMap has the CamelCase, lower case and
// kebab-case names of each kind.
var _KindNameToValueMap = func() map[string]Kind {
	m := make(map[string]Kind, 3*len(_KindNames))
	for i, nm := range _KindNames {
		m[nm] = Kind(i)
		m[strings.ToLower(nm)] = Kind(i)
		m[strcase.ToKebab(nm)] = Kind(i)
	}
	return m
}()

// String returns the string representation of this Kind value.
func (i Kind) String() string {
	if i.IsValid() {
		return _KindNames[i]
	}
	return "Kind(" + strconv.FormatInt(int64(i), 10) + ")"
}

// Kebab returns the kebab-case name of this Kind, as used
// on the command line, for example "unordered-list".
func (i Kind) Kebab() string {
	return strcase.ToKebab(i.String())
}

// SetString sets the Kind value from its string representation,
// in CamelCase, lower case or kebab-case, and returns an
// error if the string is invalid.
func (i *Kind) SetString(s string) error {
	if val, ok := _KindNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _KindNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q does not belong to Kind values: %w", s, ErrUnsupportedKind)
}

// ParseKind returns the Kind with the given name; see [Kind.SetString].
func ParseKind(s string) (Kind, error) {
	var k Kind
	err := k.SetString(s)
	return k, err
}

// Values returns all possible values for the type Kind.
func (i Kind) Values() []Kind {
	return _KindValues
}

// IsValid returns whether the value is a valid option for type Kind.
func (i Kind) IsValid() bool {
	return i >= 0 && i < KindsN
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kind) MarshalText() ([]byte, error) {
	return []byte(i.Kebab()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kind) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
