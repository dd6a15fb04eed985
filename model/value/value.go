// Package value holds the typed containers for the values a product component
// stores for its properties: single and multi value holders, plain and
// multilingual string values, the datatypes values are parsed with, and the
// converters used to reshape holders when an attribute definition changes.
package value

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Value is the content of a single value holder. A nil Value is the null value.
//
// The set of implementations is closed: StringValue and InternationalStringValue.
type Value interface {
	// IsEmpty reports whether the value carries no content.
	IsEmpty() bool
	// Equal reports whether both values have the same content.
	Equal(Value) bool
	// String returns a human readable representation of the value.
	String() string
	// Copy returns an independent copy.
	Copy() Value

	isValue()
}

// StringValue is a plain (non multilingual) value.
type StringValue string

// String returns s as a plain string.
func String(s string) Value { return StringValue(s) }

// IsEmpty reports whether s is the empty string.
func (s StringValue) IsEmpty() bool { return s == "" }

// Equal reports whether v is a StringValue with the same content.
func (s StringValue) Equal(v Value) bool {
	o, ok := v.(StringValue)
	return ok && o == s
}

func (s StringValue) String() string { return string(s) }

// Copy returns s.
func (s StringValue) Copy() Value { return s }

func (StringValue) isValue() {}

// InternationalStringValue holds one text per language. Keys are canonical
// BCP 47 language tags.
type InternationalStringValue struct {
	Texts map[string]string
}

// International returns an international string with one text for the given locale.
func International(locale language.Tag, text string) *InternationalStringValue {
	v := &InternationalStringValue{Texts: map[string]string{}}
	v.Set(locale, text)
	return v
}

// Set stores the text for the given locale.
func (v *InternationalStringValue) Set(locale language.Tag, text string) {
	if v.Texts == nil {
		v.Texts = map[string]string{}
	}
	v.Texts[locale.String()] = text
}

// Text returns the text for the given locale, falling back to the base
// language ("de" for "de-CH").
func (v *InternationalStringValue) Text(locale language.Tag) (string, bool) {
	if t, ok := v.Texts[locale.String()]; ok {
		return t, true
	}
	base, _ := locale.Base()
	t, ok := v.Texts[base.String()]
	return t, ok
}

// Locales returns the languages with a text, sorted.
func (v *InternationalStringValue) Locales() []string {
	return slices.Sorted(maps.Keys(v.Texts))
}

// IsEmpty reports whether no locale has a non-empty text.
func (v *InternationalStringValue) IsEmpty() bool {
	for _, t := range v.Texts {
		if t != "" {
			return false
		}
	}
	return true
}

// Equal reports whether o is an international string with the same texts.
func (v *InternationalStringValue) Equal(o Value) bool {
	other, ok := o.(*InternationalStringValue)
	if !ok {
		return false
	}
	return maps.Equal(v.nonEmpty(), other.nonEmpty())
}

func (v *InternationalStringValue) nonEmpty() map[string]string {
	m := make(map[string]string, len(v.Texts))
	for k, t := range v.Texts {
		if t != "" {
			m[k] = t
		}
	}
	return m
}

func (v *InternationalStringValue) String() string {
	var b strings.Builder
	for i, l := range v.Locales() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l)
		b.WriteString("=")
		b.WriteString(v.Texts[l])
	}
	return b.String()
}

// Copy returns a deep copy.
func (v *InternationalStringValue) Copy() Value {
	return &InternationalStringValue{Texts: maps.Clone(v.Texts)}
}

func (*InternationalStringValue) isValue() {}

// IsNullOrEmpty reports whether v is null or carries no content.
func IsNullOrEmpty(v Value) bool {
	return v == nil || v.IsEmpty()
}

// Equal compares two possibly null values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Copy copies a possibly null value.
func Copy(v Value) Value {
	if v == nil {
		return nil
	}
	return v.Copy()
}
