package delta

import "fmt"

// Type identifies one category of mismatch between a product component and
// its type. The catalog is closed.
type Type uint8

// Delta types.
const (
	MissingType Type = iota
	InvalidGenerations
	MissingPropertyValue
	ValueWithoutProperty
	PropertyTypeMismatch
	ValueSetMismatch
	ValueHolderMismatch
	MultilingualMismatch
	DatatypeMismatch
	HiddenAttributeMismatch
	LinkWithoutAssociation
	LinkChangingOverTimeMismatch
	MissingTemplateLink
	RemovedTemplateLink

	numTypes
)

// Kind groups delta types by the change a fix applies.
type Kind uint8

// Kinds.
const (
	KindAdded Kind = iota
	KindRemoved
	KindChanged
)

func (k Kind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	case KindChanged:
		return "changed"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

var types = [numTypes]struct {
	name string
	kind Kind
}{
	MissingType:                  {"MISSING_TYPE", KindChanged},
	InvalidGenerations:           {"INVALID_GENERATIONS", KindRemoved},
	MissingPropertyValue:         {"MISSING_PROPERTY_VALUE", KindAdded},
	ValueWithoutProperty:         {"VALUE_WITHOUT_PROPERTY", KindRemoved},
	PropertyTypeMismatch:         {"PROPERTY_TYPE_MISMATCH", KindChanged},
	ValueSetMismatch:             {"VALUE_SET_MISMATCH", KindChanged},
	ValueHolderMismatch:          {"VALUE_HOLDER_MISMATCH", KindChanged},
	MultilingualMismatch:         {"MULTILINGUAL_MISMATCH", KindChanged},
	DatatypeMismatch:             {"DATATYPE_MISMATCH", KindChanged},
	HiddenAttributeMismatch:      {"HIDDEN_ATTRIBUTE_MISMATCH", KindChanged},
	LinkWithoutAssociation:       {"LINK_WITHOUT_ASSOCIATION", KindRemoved},
	LinkChangingOverTimeMismatch: {"LINK_CHANGING_OVER_TIME_MISMATCH", KindChanged},
	MissingTemplateLink:          {"MISSING_TEMPLATE_LINK", KindAdded},
	RemovedTemplateLink:          {"REMOVED_TEMPLATE_LINK", KindRemoved},
}

// String returns the catalog name, e.g. VALUE_SET_MISMATCH.
func (t Type) String() string {
	if t < numTypes {
		return types[t].name
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Kind returns the kind of change fixing an entry of type t applies.
func (t Type) Kind() Kind {
	if t < numTypes {
		return types[t].kind
	}
	return KindChanged
}

// Types returns the catalog in declaration order.
func Types() []Type {
	all := make([]Type, numTypes)
	for i := range all {
		all[i] = Type(i)
	}
	return all
}

// ParseType returns the type with the given catalog name.
func ParseType(s string) (Type, error) {
	for i, t := range types {
		if t.name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("delta: unknown type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t >= numTypes {
		return nil, fmt.Errorf("delta: invalid type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
