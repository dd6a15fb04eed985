package value

import (
	"fmt"

	"golang.org/x/text/language"
)

// Converter reshapes a holder so it matches an attribute definition.
type Converter uint8

// The converters. Adding one requires an entry in converters.
const (
	// ToSingle turns a multi value holder into a single value holder keeping
	// the first element.
	ToSingle Converter = iota
	// ToMulti wraps a single value into a one element multi value holder.
	// A null or empty value yields an empty list.
	ToMulti
	// ToString replaces international strings by the text of the default locale.
	ToString
	// ToInternationalString turns plain strings into international strings
	// stored under the default locale.
	ToInternationalString
)

var converters = [...]struct {
	name    string
	convert func(Holder, language.Tag) Holder
}{
	ToSingle:              {"toSingle", toSingle},
	ToMulti:               {"toMulti", toMulti},
	ToString:              {"toString", mapValues(toPlain)},
	ToInternationalString: {"toInternationalString", mapValues(toInternational)},
}

// Convert applies c to a copy of h. The given holder is not modified.
// The locale is only consulted by the multilingual converters.
func (c Converter) Convert(h Holder, locale language.Tag) Holder {
	if int(c) >= len(converters) {
		panic(fmt.Sprintf("value: unknown converter %d", c))
	}
	return converters[c].convert(h, locale)
}

func (c Converter) String() string {
	if int(c) < len(converters) {
		return converters[c].name
	}
	return fmt.Sprintf("Converter(%d)", c)
}

func toSingle(h Holder, _ language.Tag) Holder {
	switch h := h.(type) {
	case *SingleValueHolder:
		return h.Copy()
	case *MultiValueHolder:
		if len(h.Values) == 0 {
			return NewSingle(nil)
		}
		return h.Values[0].Copy()
	default:
		return NewSingle(nil)
	}
}

func toMulti(h Holder, _ language.Tag) Holder {
	switch h := h.(type) {
	case *MultiValueHolder:
		return h.Copy()
	case *SingleValueHolder:
		if IsNullOrEmpty(h.Value) {
			return NewMulti()
		}
		return NewMulti(h.Copy().(*SingleValueHolder))
	default:
		return NewMulti()
	}
}

// mapValues lifts a per value conversion to holders of either shape.
func mapValues(fn func(Value, language.Tag) Value) func(Holder, language.Tag) Holder {
	return func(h Holder, locale language.Tag) Holder {
		switch h := h.(type) {
		case *SingleValueHolder:
			return NewSingle(fn(h.Value, locale))
		case *MultiValueHolder:
			out := make([]*SingleValueHolder, len(h.Values))
			for i, v := range h.Values {
				out[i] = NewSingle(fn(v.Value, locale))
			}
			return NewMulti(out...)
		default:
			return NewSingle(nil)
		}
	}
}

func toPlain(v Value, locale language.Tag) Value {
	switch v := v.(type) {
	case *InternationalStringValue:
		if t, ok := v.Text(locale); ok {
			return StringValue(t)
		}
		if l := v.Locales(); len(l) > 0 {
			return StringValue(v.Texts[l[0]])
		}
		return StringValue("")
	default:
		return Copy(v)
	}
}

func toInternational(v Value, locale language.Tag) Value {
	switch v := v.(type) {
	case StringValue:
		return International(locale, string(v))
	default:
		return Copy(v)
	}
}

// HasPlainStrings reports whether h holds at least one plain string value.
func HasPlainStrings(h Holder) bool {
	for _, v := range Values(h) {
		if _, ok := v.(StringValue); ok {
			return true
		}
	}
	return false
}

// HasInternationalStrings reports whether h holds at least one international string value.
func HasInternationalStrings(h Holder) bool {
	for _, v := range Values(h) {
		if _, ok := v.(*InternationalStringValue); ok {
			return true
		}
	}
	return false
}
