package delta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/syssam/faktorgen/model"
)

// MissingPropertyValueEntry reports a property without a value of one of its
// value types in the container the property belongs to.
type MissingPropertyValueEntry struct {
	container *model.Container
	property  model.Property
	valueType model.PropertyValueType
	locale    language.Tag

	// predecessor is a copy of the value found elsewhere at scan time, so
	// fixing another entry that deletes the original does not lose it.
	predecessor     *model.PropertyValue
	predecessorFrom string
}

// Type returns MissingPropertyValue.
func (*MissingPropertyValueEntry) Type() Type { return MissingPropertyValue }

// Location returns the owner of the container missing the value.
func (e *MissingPropertyValueEntry) Location() string { return e.container.Owner() }

// Property returns the property missing a value.
func (e *MissingPropertyValueEntry) Property() model.Property { return e.property }

// ValueType returns the missing value type.
func (e *MissingPropertyValueEntry) ValueType() model.PropertyValueType { return e.valueType }

// Description describes the entry.
func (e *MissingPropertyValueEntry) Description(p *message.Printer) string {
	if e.predecessor != nil {
		return p.Sprintf(msgMissingPropertyValueFrom, e.container.Owner(), e.valueType, e.property.PropertyName(), e.predecessorFrom)
	}
	return p.Sprintf(msgMissingPropertyValue, e.container.Owner(), e.valueType, e.property.PropertyName())
}

// Fix adds the value, taken over from the predecessor or created with the
// property's default.
func (e *MissingPropertyValueEntry) Fix() {
	name := e.property.PropertyName()
	if e.container.Value(name, e.valueType) != nil {
		return
	}
	var pv *model.PropertyValue
	if e.predecessor != nil {
		pv = e.predecessor.Copy(newID())
	} else {
		pv = e.property.NewValue(e.valueType, newID(), e.locale)
	}
	e.container.AddValue(pv)
}

// ValueWithoutPropertyEntry reports a value that no property of the type
// declares for its container.
type ValueWithoutPropertyEntry struct {
	container *model.Container
	value     *model.PropertyValue
}

// Type returns ValueWithoutProperty.
func (*ValueWithoutPropertyEntry) Type() Type { return ValueWithoutProperty }

// Location returns the owner of the container holding the value.
func (e *ValueWithoutPropertyEntry) Location() string { return e.container.Owner() }

// Value returns the value without property.
func (e *ValueWithoutPropertyEntry) Value() *model.PropertyValue { return e.value }

// Description describes the entry.
func (e *ValueWithoutPropertyEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgValueWithoutProperty, e.container.Owner(), e.value.Type, e.value.Property)
}

// Fix deletes the value.
func (e *ValueWithoutPropertyEntry) Fix() {
	e.container.RemoveValue(e.value)
}

// PropertyTypeMismatchEntry reports values stored for a property with value
// types the property does not produce, e.g. after a product attribute was
// replaced by a table usage of the same name.
type PropertyTypeMismatchEntry struct {
	container *model.Container
	property  model.Property
	values    []*model.PropertyValue
	locale    language.Tag
}

// Type returns PropertyTypeMismatch.
func (*PropertyTypeMismatchEntry) Type() Type { return PropertyTypeMismatch }

// Location returns the owner of the container holding the values.
func (e *PropertyTypeMismatchEntry) Location() string { return e.container.Owner() }

// Description describes the entry.
func (e *PropertyTypeMismatchEntry) Description(p *message.Printer) string {
	stored := make([]string, len(e.values))
	for i, v := range e.values {
		stored[i] = v.Type.String()
	}
	expected := make([]string, 0, 2)
	for _, t := range e.property.ValueTypes() {
		expected = append(expected, t.String())
	}
	return p.Sprintf(msgPropertyTypeMismatch, e.container.Owner(), e.property.PropertyName(),
		strings.Join(stored, ", "), strings.Join(expected, ", "))
}

// Fix deletes the wrongly typed values and adds the expected ones that are
// missing.
func (e *PropertyTypeMismatchEntry) Fix() {
	for _, v := range e.values {
		e.container.RemoveValue(v)
	}
	name := e.property.PropertyName()
	for _, t := range e.property.ValueTypes() {
		if e.container.Value(name, t) == nil {
			e.container.AddValue(e.property.NewValue(t, newID(), e.locale))
		}
	}
}
