package delta

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

// attributeValue is the part shared by entries about one stored value.
type attributeValue struct {
	container *model.Container
	value     *model.PropertyValue
}

// Location returns the owner of the container holding the value.
func (a attributeValue) Location() string { return a.container.Owner() }

// Value returns the affected property value.
func (a attributeValue) Value() *model.PropertyValue { return a.value }

func (a attributeValue) present() bool { return a.container.ContainsValue(a.value) }

// ValueSetMismatchEntry reports a configured value set whose kind differs from
// the restricted value set the policy attribute declares.
type ValueSetMismatchEntry struct {
	attributeValue
	attribute *model.PolicyAttribute
}

// Type returns ValueSetMismatch.
func (*ValueSetMismatchEntry) Type() Type { return ValueSetMismatch }

// Description names both value set kinds.
func (e *ValueSetMismatchEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgValueSetMismatch, e.container.Owner(), e.attribute.Name,
		valueset.KindOf(e.value.ValueSet), valueset.KindOf(e.attribute.ValueSet))
}

// Fix overwrites the configured value set with a copy of the attribute's one.
func (e *ValueSetMismatchEntry) Fix() {
	if !e.present() || !valueSetMismatch(e.value, e.attribute) {
		return
	}
	e.value.ValueSet = valueset.Copy(e.attribute.ValueSet)
}

func valueSetMismatch(pv *model.PropertyValue, attr *model.PolicyAttribute) bool {
	declared := valueset.KindOf(attr.ValueSet)
	return declared != valueset.KindUnrestricted && valueset.KindOf(pv.ValueSet) != declared
}

// ValueHolderMismatchEntry reports a holder whose shape disagrees with the
// multiplicity of the product attribute.
type ValueHolderMismatchEntry struct {
	attributeValue
	attribute *model.ProductAttribute
	locale    language.Tag
}

// Type returns ValueHolderMismatch.
func (*ValueHolderMismatchEntry) Type() Type { return ValueHolderMismatch }

// Description describes the entry.
func (e *ValueHolderMismatchEntry) Description(p *message.Printer) string {
	if e.attribute.MultiValue {
		return p.Sprintf(msgValueHolderToMulti, e.container.Owner(), e.attribute.Name)
	}
	return p.Sprintf(msgValueHolderToSingle, e.container.Owner(), e.attribute.Name)
}

// Fix converts the holder. Growing wraps the single value into a list,
// shrinking keeps the first element.
func (e *ValueHolderMismatchEntry) Fix() {
	if !e.present() || !holderMismatch(e.value, e.attribute) {
		return
	}
	conv := value.ToSingle
	if e.attribute.MultiValue {
		conv = value.ToMulti
	}
	e.value.Holder = conv.Convert(e.value.Holder, e.locale)
}

func holderMismatch(pv *model.PropertyValue, attr *model.ProductAttribute) bool {
	return pv.Holder == nil || pv.Holder.IsMultiValue() != attr.MultiValue
}

// MultilingualMismatchEntry reports plain text stored for a multilingual
// attribute or multilingual text stored for a plain one.
type MultilingualMismatchEntry struct {
	attributeValue
	attribute *model.ProductAttribute
	locale    language.Tag
}

// Type returns MultilingualMismatch.
func (*MultilingualMismatchEntry) Type() Type { return MultilingualMismatch }

// Description describes the entry.
func (e *MultilingualMismatchEntry) Description(p *message.Printer) string {
	if e.attribute.Multilingual {
		return p.Sprintf(msgMultilingualToInternational, e.container.Owner(), e.attribute.Name)
	}
	return p.Sprintf(msgMultilingualToPlain, e.container.Owner(), e.attribute.Name)
}

// Fix converts every value of the holder. Plain text becomes the text of the
// project locale; multilingual text keeps the text of that locale.
func (e *MultilingualMismatchEntry) Fix() {
	if !e.present() || !multilingualMismatch(e.value, e.attribute) {
		return
	}
	conv := value.ToString
	if e.attribute.Multilingual {
		conv = value.ToInternationalString
	}
	e.value.Holder = conv.Convert(e.value.Holder, e.locale)
}

func multilingualMismatch(pv *model.PropertyValue, attr *model.ProductAttribute) bool {
	if attr.Multilingual {
		return value.HasPlainStrings(pv.Holder)
	}
	return value.HasInternationalStrings(pv.Holder)
}

// DatatypeMismatchEntry reports plain values that are not valid literals of
// the attribute datatype. Multilingual text is left to
// MultilingualMismatchEntry.
type DatatypeMismatchEntry struct {
	attributeValue
	attribute *model.ProductAttribute
}

// Type returns DatatypeMismatch.
func (*DatatypeMismatchEntry) Type() Type { return DatatypeMismatch }

// Description lists the invalid values.
func (e *DatatypeMismatchEntry) Description(p *message.Printer) string {
	var invalid []string
	for _, v := range value.Values(e.value.Holder) {
		if !validLiteral(v, e.attribute.Datatype) {
			invalid = append(invalid, v.String())
		}
	}
	return p.Sprintf(msgDatatypeMismatch, e.container.Owner(), strings.Join(invalid, ", "),
		e.attribute.Name, e.attribute.Datatype)
}

// Fix sets an invalid single value to null and drops invalid elements of a
// multi-value holder.
func (e *DatatypeMismatchEntry) Fix() {
	if !e.present() {
		return
	}
	switch h := e.value.Holder.(type) {
	case *value.SingleValueHolder:
		if !validLiteral(h.Value, e.attribute.Datatype) {
			e.value.Holder = value.NewSingle(nil)
		}
	case *value.MultiValueHolder:
		if !slices.ContainsFunc(h.Values, func(s *value.SingleValueHolder) bool {
			return !validLiteral(s.Value, e.attribute.Datatype)
		}) {
			return
		}
		kept := value.NewMulti()
		for _, s := range h.Values {
			if validLiteral(s.Value, e.attribute.Datatype) {
				kept.Values = append(kept.Values, s.Copy().(*value.SingleValueHolder))
			}
		}
		e.value.Holder = kept
	}
}

func validLiteral(v value.Value, dt value.Datatype) bool {
	s, ok := v.(value.StringValue)
	return !ok || dt.IsParsable(string(s))
}

func datatypeMismatch(pv *model.PropertyValue, attr *model.ProductAttribute) bool {
	return slices.ContainsFunc(value.Values(pv.Holder), func(v value.Value) bool {
		return !validLiteral(v, attr.Datatype)
	})
}

// HiddenAttributeMismatchEntry reports a hidden attribute whose value differs
// from the attribute default. Hidden attributes cannot be edited, so their
// value has to follow the default.
type HiddenAttributeMismatchEntry struct {
	attributeValue
	attribute *model.ProductAttribute
	locale    language.Tag
}

// Type returns HiddenAttributeMismatch.
func (*HiddenAttributeMismatchEntry) Type() Type { return HiddenAttributeMismatch }

// Description describes the entry.
func (e *HiddenAttributeMismatchEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgHiddenAttributeMismatch, e.container.Owner(), e.attribute.Name,
		holderString(e.value.Holder), holderString(e.attribute.DefaultHolder(e.locale)))
}

// Fix sets the value to the attribute default.
func (e *HiddenAttributeMismatchEntry) Fix() {
	if !e.present() || !hiddenMismatch(e.value, e.attribute, e.locale) {
		return
	}
	e.value.Holder = e.attribute.DefaultHolder(e.locale)
}

func hiddenMismatch(pv *model.PropertyValue, attr *model.ProductAttribute, locale language.Tag) bool {
	if !attr.Hidden {
		return false
	}
	return pv.Holder == nil || !attr.DefaultHolder(locale).Equal(pv.Holder)
}

func holderString(h value.Holder) string {
	if h == nil {
		return "<null>"
	}
	return h.String()
}
