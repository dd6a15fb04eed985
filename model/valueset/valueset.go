// Package valueset defines the sets of allowed values an attribute declares
// and a product component may restrict further.
package valueset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the shape of a value set.
type Kind uint8

// Value set kinds.
const (
	KindUnrestricted Kind = iota
	KindEnum
	KindRange
	KindStringLength
)

var kindLabels = [...]string{
	KindUnrestricted: "unrestricted",
	KindEnum:         "enum",
	KindRange:        "range",
	KindStringLength: "stringLength",
}

// String returns the label of the kind.
func (k Kind) String() string {
	if int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind with the given label.
func ParseKind(s string) (Kind, error) {
	for i, l := range kindLabels {
		if l == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("valueset: unknown kind %q", s)
}

// ValueSet is a closed sum over *Unrestricted, *Enum, *Range and *StringLength.
type ValueSet interface {
	Kind() Kind
	// ContainsNull reports whether null is an allowed value.
	ContainsNull() bool
	// Copy returns an independent copy.
	Copy() ValueSet
	// Equal reports whether o has the same kind and content.
	Equal(o ValueSet) bool
	String() string

	isValueSet()
}

// Unrestricted allows every value of the datatype.
type Unrestricted struct {
	Null bool
}

// Kind returns KindUnrestricted.
func (*Unrestricted) Kind() Kind { return KindUnrestricted }

// ContainsNull reports whether null is allowed.
func (s *Unrestricted) ContainsNull() bool { return s.Null }

// Copy returns a copy of s.
func (s *Unrestricted) Copy() ValueSet { c := *s; return &c }

// Equal reports whether o is an equal unrestricted set.
func (s *Unrestricted) Equal(o ValueSet) bool {
	other, ok := o.(*Unrestricted)
	return ok && *other == *s
}

func (s *Unrestricted) String() string { return withNull("unrestricted", s.Null) }

func (*Unrestricted) isValueSet() {}

// Enum allows an explicit list of values.
type Enum struct {
	Values []string
	Null   bool
}

// Kind returns KindEnum.
func (*Enum) Kind() Kind { return KindEnum }

// ContainsNull reports whether null is allowed.
func (s *Enum) ContainsNull() bool { return s.Null }

// Contains reports whether v is one of the listed values.
func (s *Enum) Contains(v string) bool { return slices.Contains(s.Values, v) }

// Copy returns a deep copy of s.
func (s *Enum) Copy() ValueSet {
	return &Enum{Values: slices.Clone(s.Values), Null: s.Null}
}

// Equal reports whether o is an enum with the same values in the same order.
func (s *Enum) Equal(o ValueSet) bool {
	other, ok := o.(*Enum)
	return ok && other.Null == s.Null && slices.Equal(other.Values, s.Values)
}

func (s *Enum) String() string {
	return withNull("enum["+strings.Join(s.Values, ", ")+"]", s.Null)
}

func (*Enum) isValueSet() {}

// Range allows values between two bounds. Empty bounds are open.
type Range struct {
	Lower string
	Upper string
	Step  string
	Null  bool
}

// Kind returns KindRange.
func (*Range) Kind() Kind { return KindRange }

// ContainsNull reports whether null is allowed.
func (s *Range) ContainsNull() bool { return s.Null }

// Copy returns a copy of s.
func (s *Range) Copy() ValueSet { c := *s; return &c }

// Equal reports whether o is an equal range.
func (s *Range) Equal(o ValueSet) bool {
	other, ok := o.(*Range)
	return ok && *other == *s
}

func (s *Range) String() string {
	str := "range[" + s.Lower + ".." + s.Upper
	if s.Step != "" {
		str += " step " + s.Step
	}
	return withNull(str+"]", s.Null)
}

func (*Range) isValueSet() {}

// StringLength limits the length of string values. A MaxLength of zero means
// no limit.
type StringLength struct {
	MaxLength int
	Null      bool
}

// Kind returns KindStringLength.
func (*StringLength) Kind() Kind { return KindStringLength }

// ContainsNull reports whether null is allowed.
func (s *StringLength) ContainsNull() bool { return s.Null }

// Copy returns a copy of s.
func (s *StringLength) Copy() ValueSet { c := *s; return &c }

// Equal reports whether o is an equal string length set.
func (s *StringLength) Equal(o ValueSet) bool {
	other, ok := o.(*StringLength)
	return ok && *other == *s
}

func (s *StringLength) String() string {
	return withNull("stringLength["+strconv.Itoa(s.MaxLength)+"]", s.Null)
}

func (*StringLength) isValueSet() {}

func withNull(s string, null bool) string {
	if null {
		return s + " (incl. null)"
	}
	return s
}

// KindOf returns the kind of a possibly nil value set. A nil set is unrestricted.
func KindOf(s ValueSet) Kind {
	if s == nil {
		return KindUnrestricted
	}
	return s.Kind()
}

// Copy copies a possibly nil value set. A nil set copies to an unrestricted set
// that allows null.
func Copy(s ValueSet) ValueSet {
	if s == nil {
		return &Unrestricted{Null: true}
	}
	return s.Copy()
}
