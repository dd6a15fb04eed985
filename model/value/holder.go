package value

import "strings"

// Holder wraps the value(s) stored for one attribute value. The set of
// implementations is closed: *SingleValueHolder and *MultiValueHolder.
type Holder interface {
	// IsMultiValue reports whether the holder stores an ordered list of values.
	IsMultiValue() bool
	// Equal reports whether both holders have the same shape and content.
	Equal(Holder) bool
	// Copy returns a deep copy.
	Copy() Holder
	// String returns a human readable representation.
	String() string

	isHolder()
}

// SingleValueHolder stores exactly one, possibly null, value.
type SingleValueHolder struct {
	Value Value
}

// NewSingle returns a holder for v. A nil v is the null value.
func NewSingle(v Value) *SingleValueHolder {
	return &SingleValueHolder{Value: v}
}

// NewSingleString returns a holder for a plain string value.
func NewSingleString(s string) *SingleValueHolder {
	return &SingleValueHolder{Value: StringValue(s)}
}

// IsMultiValue returns false.
func (*SingleValueHolder) IsMultiValue() bool { return false }

// IsNull reports whether the holder stores the null value.
func (h *SingleValueHolder) IsNull() bool { return h.Value == nil }

// Equal reports whether o is a single holder with an equal value.
func (h *SingleValueHolder) Equal(o Holder) bool {
	other, ok := o.(*SingleValueHolder)
	return ok && Equal(h.Value, other.Value)
}

// Copy returns a deep copy.
func (h *SingleValueHolder) Copy() Holder {
	return &SingleValueHolder{Value: Copy(h.Value)}
}

func (h *SingleValueHolder) String() string {
	if h.Value == nil {
		return "<null>"
	}
	return h.Value.String()
}

func (*SingleValueHolder) isHolder() {}

// MultiValueHolder stores an ordered list of single value holders.
type MultiValueHolder struct {
	Values []*SingleValueHolder
}

// NewMulti returns a multi value holder for the given elements.
func NewMulti(values ...*SingleValueHolder) *MultiValueHolder {
	return &MultiValueHolder{Values: values}
}

// IsMultiValue returns true.
func (*MultiValueHolder) IsMultiValue() bool { return true }

// Equal reports whether o is a multi holder with equal elements in equal order.
func (h *MultiValueHolder) Equal(o Holder) bool {
	other, ok := o.(*MultiValueHolder)
	if !ok || len(h.Values) != len(other.Values) {
		return false
	}
	for i := range h.Values {
		if !h.Values[i].Equal(other.Values[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy.
func (h *MultiValueHolder) Copy() Holder {
	values := make([]*SingleValueHolder, len(h.Values))
	for i, v := range h.Values {
		values[i] = v.Copy().(*SingleValueHolder)
	}
	return &MultiValueHolder{Values: values}
}

func (h *MultiValueHolder) String() string {
	parts := make([]string, len(h.Values))
	for i, v := range h.Values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " | ") + "]"
}

func (*MultiValueHolder) isHolder() {}

// Values returns the flat list of values held by h. Null elements are kept.
func Values(h Holder) []Value {
	switch h := h.(type) {
	case *SingleValueHolder:
		return []Value{h.Value}
	case *MultiValueHolder:
		values := make([]Value, len(h.Values))
		for i, v := range h.Values {
			values[i] = v.Value
		}
		return values
	default:
		return nil
	}
}
