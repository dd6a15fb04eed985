package model

import (
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

// PropertyValueType identifies which kind of value a property produces in a
// product component.
type PropertyValueType uint8

// Property value types.
const (
	AttributeValue PropertyValueType = iota
	ConfiguredDefault
	ConfiguredValueSet
	TableContentUsage
	Formula
	ValidationRuleConfig
)

var propertyValueTypeNames = [...]string{
	AttributeValue:       "AttributeValue",
	ConfiguredDefault:    "ConfiguredDefault",
	ConfiguredValueSet:   "ConfiguredValueSet",
	TableContentUsage:    "TableContentUsage",
	Formula:              "Formula",
	ValidationRuleConfig: "ValidationRuleConfig",
}

func (t PropertyValueType) String() string {
	if int(t) < len(propertyValueTypeNames) {
		return propertyValueTypeNames[t]
	}
	return "UNKNOWN"
}

// ParsePropertyValueType returns the value type with the given name.
func ParsePropertyValueType(s string) (PropertyValueType, bool) {
	return parseName(propertyValueTypeNames[:], s, func(i int) PropertyValueType { return PropertyValueType(i) })
}

// TemplateStatus tells whether a part is defined locally or inherited from
// the template of its product component.
type TemplateStatus uint8

// Template states.
const (
	TemplateDefined TemplateStatus = iota
	TemplateInherited
	TemplateUndefined
)

var templateStatusNames = [...]string{
	TemplateDefined:   "DEFINED",
	TemplateInherited: "INHERITED",
	TemplateUndefined: "UNDEFINED",
}

func (s TemplateStatus) String() string {
	if int(s) < len(templateStatusNames) {
		return templateStatusNames[s]
	}
	return "UNKNOWN"
}

// ParseTemplateStatus returns the status with the given name.
func ParseTemplateStatus(s string) (TemplateStatus, bool) {
	return parseName(templateStatusNames[:], s, func(i int) TemplateStatus { return TemplateStatus(i) })
}

// Property is a type part that is configured by values in product components.
type Property interface {
	PropertyName() string
	// ValueTypes lists the value types a product component stores for the
	// property, one value per type.
	ValueTypes() []PropertyValueType
	IsChangingOverTime() bool
	// NewValue returns a value of type t initialised with the property's
	// default.
	NewValue(t PropertyValueType, id string, locale language.Tag) *PropertyValue
}

var (
	_ Property = (*ProductAttribute)(nil)
	_ Property = (*PolicyAttribute)(nil)
	_ Property = (*TableStructureUsage)(nil)
	_ Property = (*Method)(nil)
	_ Property = (*ValidationRule)(nil)
)

// PropertyName returns the attribute name.
func (a *ProductAttribute) PropertyName() string { return a.Name }

// ValueTypes returns AttributeValue.
func (a *ProductAttribute) ValueTypes() []PropertyValueType { return []PropertyValueType{AttributeValue} }

// IsChangingOverTime reports whether values live in generations.
func (a *ProductAttribute) IsChangingOverTime() bool { return a.ChangingOverTime }

// NewValue returns an attribute value holding the attribute default.
func (a *ProductAttribute) NewValue(_ PropertyValueType, id string, locale language.Tag) *PropertyValue {
	return &PropertyValue{ID: id, Property: a.Name, Type: AttributeValue, Holder: a.DefaultHolder(locale)}
}

// DefaultHolder returns a holder with the default value, shaped to match the
// attribute's multiplicity and multilingual flag.
func (a *ProductAttribute) DefaultHolder(locale language.Tag) value.Holder {
	var v value.Value
	if a.DefaultValue != nil && *a.DefaultValue != "" {
		if a.Multilingual {
			v = value.International(locale, *a.DefaultValue)
		} else {
			v = value.String(*a.DefaultValue)
		}
	}
	if a.MultiValue {
		if v == nil {
			return value.NewMulti()
		}
		return value.NewMulti(value.NewSingle(v))
	}
	return value.NewSingle(v)
}

// PropertyName returns the attribute name.
func (a *PolicyAttribute) PropertyName() string { return a.Name }

// ValueTypes returns ConfiguredDefault and ConfiguredValueSet.
func (a *PolicyAttribute) ValueTypes() []PropertyValueType {
	return []PropertyValueType{ConfiguredDefault, ConfiguredValueSet}
}

// IsChangingOverTime reports whether the configuration lives in generations.
func (a *PolicyAttribute) IsChangingOverTime() bool { return a.ChangingOverTime }

// NewValue returns a configured default or value set copied from the attribute.
func (a *PolicyAttribute) NewValue(t PropertyValueType, id string, _ language.Tag) *PropertyValue {
	pv := &PropertyValue{ID: id, Property: a.Name, Type: t}
	switch t {
	case ConfiguredValueSet:
		pv.ValueSet = valueset.Copy(a.ValueSet)
	default:
		pv.Type = ConfiguredDefault
		var v value.Value
		if a.DefaultValue != nil {
			v = value.String(*a.DefaultValue)
		}
		pv.Holder = value.NewSingle(v)
	}
	return pv
}

// IsProductRelevant reports whether product components configure a.
func (a *PolicyAttribute) IsProductRelevant() bool {
	return a.ValueSetConfiguredByProduct && (a.Kind == AttributeChangeable || a.Kind == AttributeConstant)
}

// PropertyName returns the role name.
func (u *TableStructureUsage) PropertyName() string { return u.RoleName }

// ValueTypes returns TableContentUsage.
func (u *TableStructureUsage) ValueTypes() []PropertyValueType {
	return []PropertyValueType{TableContentUsage}
}

// IsChangingOverTime reports whether the usage lives in generations.
func (u *TableStructureUsage) IsChangingOverTime() bool { return u.ChangingOverTime }

// NewValue returns an empty table content usage.
func (u *TableStructureUsage) NewValue(_ PropertyValueType, id string, _ language.Tag) *PropertyValue {
	return &PropertyValue{ID: id, Property: u.RoleName, Type: TableContentUsage}
}

// PropertyName returns the formula name.
func (m *Method) PropertyName() string { return m.FormulaName }

// ValueTypes returns Formula.
func (m *Method) ValueTypes() []PropertyValueType { return []PropertyValueType{Formula} }

// IsChangingOverTime reports whether formulas live in generations.
func (m *Method) IsChangingOverTime() bool { return m.ChangingOverTime }

// NewValue returns an empty formula.
func (m *Method) NewValue(_ PropertyValueType, id string, _ language.Tag) *PropertyValue {
	return &PropertyValue{ID: id, Property: m.FormulaName, Type: Formula}
}

// PropertyName returns the rule name.
func (r *ValidationRule) PropertyName() string { return r.Name }

// ValueTypes returns ValidationRuleConfig.
func (r *ValidationRule) ValueTypes() []PropertyValueType {
	return []PropertyValueType{ValidationRuleConfig}
}

// IsChangingOverTime reports whether the rule configuration lives in generations.
func (r *ValidationRule) IsChangingOverTime() bool { return r.ChangingOverTime }

// NewValue returns a rule configuration activated as the rule declares.
func (r *ValidationRule) NewValue(_ PropertyValueType, id string, _ language.Tag) *PropertyValue {
	return &PropertyValue{ID: id, Property: r.Name, Type: ValidationRuleConfig, Active: r.ActivatedByDefault}
}

// PropertyValue is the value a product component stores for one property and
// value type. Only the payload field matching Type is meaningful.
type PropertyValue struct {
	ID       string
	Property string
	Type     PropertyValueType

	Holder       value.Holder      // AttributeValue, ConfiguredDefault
	ValueSet     valueset.ValueSet // ConfiguredValueSet
	TableContent string            // TableContentUsage
	Expression   string            // Formula
	Active       bool              // ValidationRuleConfig

	TemplateStatus TemplateStatus
}

// Copy returns a deep copy of v with the given id.
func (v *PropertyValue) Copy(id string) *PropertyValue {
	c := *v
	c.ID = id
	if v.Holder != nil {
		c.Holder = v.Holder.Copy()
	}
	if v.ValueSet != nil {
		c.ValueSet = v.ValueSet.Copy()
	}
	return &c
}
