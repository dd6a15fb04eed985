package model

import (
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

// AttributeKind describes how the value of a policy attribute comes about.
type AttributeKind uint8

// Attribute kinds.
const (
	AttributeChangeable AttributeKind = iota
	AttributeConstant
	AttributeDerivedOnTheFly
	AttributeDerivedByExplicitMethodCall
)

var attributeKindNames = [...]string{
	AttributeChangeable:                 "CHANGEABLE",
	AttributeConstant:                   "CONSTANT",
	AttributeDerivedOnTheFly:            "DERIVED_ON_THE_FLY",
	AttributeDerivedByExplicitMethodCall: "DERIVED_BY_EXPLICIT_METHOD_CALL",
}

func (k AttributeKind) String() string {
	if int(k) < len(attributeKindNames) {
		return attributeKindNames[k]
	}
	return "UNKNOWN"
}

// ParseAttributeKind returns the kind with the given name.
func ParseAttributeKind(s string) (AttributeKind, bool) {
	return parseName(attributeKindNames[:], s, func(i int) AttributeKind { return AttributeKind(i) })
}

// AssociationKind classifies a policy association.
type AssociationKind uint8

// Association kinds.
const (
	Association AssociationKind = iota
	CompositionMasterToDetail
	CompositionDetailToMaster
)

var associationKindNames = [...]string{
	Association:               "Association",
	CompositionMasterToDetail: "Composition",
	CompositionDetailToMaster: "CompositionToMaster",
}

func (k AssociationKind) String() string {
	if int(k) < len(associationKindNames) {
		return associationKindNames[k]
	}
	return "UNKNOWN"
}

// ParseAssociationKind returns the kind with the given name.
func ParseAssociationKind(s string) (AssociationKind, bool) {
	return parseName(associationKindNames[:], s, func(i int) AssociationKind { return AssociationKind(i) })
}

// CardinalityMany is the upper bound of a to-many association.
const CardinalityMany = -1

// Deprecation marks a type part as deprecated.
type Deprecation struct {
	Since         string
	ForRemoval    bool
	Documentation string
}

// PolicyCmptType describes the structure of contracts and coverages.
type PolicyCmptType struct {
	QName     string
	Supertype string
	Abstract  bool
	// ConfigurableByProduct marks policy types configured by a product type.
	ConfigurableByProduct bool
	ProductCmptType       string

	Attributes   []*PolicyAttribute
	Associations []*PolicyAssociation
	Rules        []*ValidationRule
	Persistence  *PersistentTypeInfo
	Description  string
}

// QualifiedName returns the qualified name of the type.
func (t *PolicyCmptType) QualifiedName() string { return t.QName }

// SupertypeName returns the qualified name of the supertype, or "".
func (t *PolicyCmptType) SupertypeName() string { return t.Supertype }

// Attribute returns the attribute declared by t (not its supertypes).
func (t *PolicyCmptType) Attribute(name string) *PolicyAttribute {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Association returns the association declared by t with the given name.
func (t *PolicyCmptType) Association(name string) *PolicyAssociation {
	for _, a := range t.Associations {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// IsPersistent reports whether t takes part in the persistence mapping.
func (t *PolicyCmptType) IsPersistent() bool {
	return t.Persistence != nil && t.Persistence.Enabled && t.Persistence.Type != PersistentTypeNone
}

// PolicyAttribute is an attribute of a policy component type.
type PolicyAttribute struct {
	Name     string
	Datatype value.Datatype
	Kind     AttributeKind
	// ValueSetConfiguredByProduct marks attributes whose default value and
	// value set are configured in product components.
	ValueSetConfiguredByProduct bool
	ChangingOverTime            bool
	DefaultValue                *string
	ValueSet                    valueset.ValueSet
	Persistence                 *PersistentAttributeInfo
	Deprecation                 *Deprecation
	Description                 string
}

// PolicyAssociation connects two policy component types.
type PolicyAssociation struct {
	Name             string // target role singular
	TargetRolePlural string
	Target           string
	Kind             AssociationKind
	Min, Max         int
	Inverse          string
	// MatchingAssociation names the product association this one is
	// configured by, if any.
	MatchingAssociation string
	Persistence         *PersistentAssociationInfo
	Deprecation         *Deprecation
}

// IsToMany reports whether the association allows more than one target.
func (a *PolicyAssociation) IsToMany() bool {
	return a.Max == CardinalityMany || a.Max > 1
}

// ValidationRule is a rule of a policy type; configurable rules can be
// activated or deactivated per product component.
type ValidationRule struct {
	Name                  string
	MessageCode           string
	ConfigurableByProduct bool
	ActivatedByDefault    bool
	ChangingOverTime      bool
}

// ProductCmptType describes the structure of product components.
type ProductCmptType struct {
	QName     string
	Supertype string
	Abstract  bool
	// Policy is the qualified name of the configured policy type, if any.
	Policy           string
	ChangingOverTime bool

	Attributes   []*ProductAttribute
	Associations []*ProductAssociation
	TableUsages  []*TableStructureUsage
	Methods      []*Method
	Description  string
}

// QualifiedName returns the qualified name of the type.
func (t *ProductCmptType) QualifiedName() string { return t.QName }

// SupertypeName returns the qualified name of the supertype, or "".
func (t *ProductCmptType) SupertypeName() string { return t.Supertype }

// Attribute returns the attribute declared by t (not its supertypes).
func (t *ProductCmptType) Attribute(name string) *ProductAttribute {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Association returns the association declared by t with the given name.
func (t *ProductCmptType) Association(name string) *ProductAssociation {
	for _, a := range t.Associations {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Formulas returns the formula signatures declared by t.
func (t *ProductCmptType) Formulas() []*Method {
	var formulas []*Method
	for _, m := range t.Methods {
		if m.Formula {
			formulas = append(formulas, m)
		}
	}
	return formulas
}

// ProductAttribute is an attribute of a product component type.
type ProductAttribute struct {
	Name             string
	Datatype         value.Datatype
	MultiValue       bool
	Multilingual     bool
	Hidden           bool
	ChangingOverTime bool
	DefaultValue     *string
	ValueSet         valueset.ValueSet
	Deprecation      *Deprecation
	Description      string
}

// ProductAssociation connects two product component types.
type ProductAssociation struct {
	Name             string // target role singular
	TargetRolePlural string
	Target           string
	Min, Max         int
	ChangingOverTime bool
	// MatchingAssociation names the policy association configured by this one.
	MatchingAssociation string
	Deprecation         *Deprecation
}

// IsToMany reports whether the association allows more than one target.
func (a *ProductAssociation) IsToMany() bool {
	return a.Max == CardinalityMany || a.Max > 1
}

// TableStructureUsage declares that product components reference table
// contents of the given structures under a role name.
type TableStructureUsage struct {
	RoleName         string
	TableStructures  []string
	Mandatory        bool
	ChangingOverTime bool
}

// Parameter is a method parameter.
type Parameter struct {
	Name     string
	Datatype string
}

// Method is a method of a product component type. Formula signatures are
// implemented per product component by a formula expression.
type Method struct {
	Name             string
	Datatype         string
	Parameters       []Parameter
	Formula          bool
	FormulaName      string
	FormulaMandatory bool
	ChangingOverTime bool
	Deprecation      *Deprecation
}
