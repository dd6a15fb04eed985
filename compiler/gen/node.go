package gen

import (
	"fmt"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
)

// Node is a generator projection of a model object. The set of nodes is
// closed: every implementation is declared in this file, and Visit
// dispatches over all of them.
type Node interface {
	// Name returns the model name of the projected object.
	Name() string
	// Context returns the build context the node belongs to.
	Context() *Context

	node()
}

type base struct{ ctx *Context }

func (b base) Context() *Context { return b.ctx }
func (base) node()               {}

// XPolicyCmptClass projects a policy component type to its Java class.
type XPolicyCmptClass struct {
	base
	Type *model.PolicyCmptType
}

// XProductCmptClass projects a product component type to its Java class.
type XProductCmptClass struct {
	base
	Type *model.ProductCmptType
}

// XPolicyAttribute projects a policy attribute to its field and getter.
type XPolicyAttribute struct {
	base
	Owner     *XPolicyCmptClass
	Attribute *model.PolicyAttribute
}

// XProductAttribute projects a product attribute to its field and getter.
type XProductAttribute struct {
	base
	Owner     *XProductCmptClass
	Attribute *model.ProductAttribute
}

// XPolicyAssociation projects a policy association to its field and getter.
type XPolicyAssociation struct {
	base
	Owner       *XPolicyCmptClass
	Association *model.PolicyAssociation
}

// XProductAssociation projects a product association to its getter.
type XProductAssociation struct {
	base
	Owner       *XProductCmptClass
	Association *model.ProductAssociation
}

// XMethod projects a formula signature to its computation method.
type XMethod struct {
	base
	Owner  *XProductCmptClass
	Method *model.Method
}

// XTableUsage projects a table structure usage to its getter.
type XTableUsage struct {
	base
	Owner *XProductCmptClass
	Usage *model.TableStructureUsage
}

var (
	_ Node = (*XPolicyCmptClass)(nil)
	_ Node = (*XProductCmptClass)(nil)
	_ Node = (*XPolicyAttribute)(nil)
	_ Node = (*XProductAttribute)(nil)
	_ Node = (*XPolicyAssociation)(nil)
	_ Node = (*XProductAssociation)(nil)
	_ Node = (*XMethod)(nil)
	_ Node = (*XTableUsage)(nil)
)

// Visitor handles every node kind.
type Visitor[R any] interface {
	VisitPolicyCmptClass(*XPolicyCmptClass) R
	VisitProductCmptClass(*XProductCmptClass) R
	VisitPolicyAttribute(*XPolicyAttribute) R
	VisitProductAttribute(*XProductAttribute) R
	VisitPolicyAssociation(*XPolicyAssociation) R
	VisitProductAssociation(*XProductAssociation) R
	VisitMethod(*XMethod) R
	VisitTableUsage(*XTableUsage) R
}

// Visit calls the method of v matching the kind of n.
func Visit[R any](n Node, v Visitor[R]) R {
	switch n := n.(type) {
	case *XPolicyCmptClass:
		return v.VisitPolicyCmptClass(n)
	case *XProductCmptClass:
		return v.VisitProductCmptClass(n)
	case *XPolicyAttribute:
		return v.VisitPolicyAttribute(n)
	case *XProductAttribute:
		return v.VisitProductAttribute(n)
	case *XPolicyAssociation:
		return v.VisitPolicyAssociation(n)
	case *XProductAssociation:
		return v.VisitProductAssociation(n)
	case *XMethod:
		return v.VisitMethod(n)
	case *XTableUsage:
		return v.VisitTableUsage(n)
	}
	panic(fmt.Sprintf("gen: unexpected node %T", n))
}

func (n *XPolicyCmptClass) Name() string { return n.Type.QName }

// ClassName returns the qualified Java class name.
func (n *XPolicyCmptClass) ClassName() string {
	return javaClassName(n.ctx.config.BasePackage, n.Type.QName)
}

// Supertype returns the class of the supertype, or nil if there is none or
// it cannot be resolved.
func (n *XPolicyCmptClass) Supertype() *XPolicyCmptClass {
	if n.Type.Supertype == "" {
		return nil
	}
	t := n.ctx.resolver.FindPolicyCmptType(n.Type.Supertype)
	if t == nil {
		return nil
	}
	return n.ctx.PolicyCmptClass(t)
}

// ProductCmptClass returns the class of the configuring product type, or
// nil if the type is not configured by a product or it cannot be resolved.
func (n *XPolicyCmptClass) ProductCmptClass() *XProductCmptClass {
	if !n.Type.ConfigurableByProduct || n.Type.ProductCmptType == "" {
		return nil
	}
	t := n.ctx.resolver.FindProductCmptType(n.Type.ProductCmptType)
	if t == nil {
		return nil
	}
	return n.ctx.ProductCmptClass(t)
}

// Attributes returns the attributes declared by the type.
func (n *XPolicyCmptClass) Attributes() []*XPolicyAttribute {
	attrs := make([]*XPolicyAttribute, len(n.Type.Attributes))
	for i, a := range n.Type.Attributes {
		attrs[i] = cached(n.ctx, a, func() *XPolicyAttribute {
			return &XPolicyAttribute{base: n.base, Owner: n, Attribute: a}
		})
	}
	return attrs
}

// Associations returns the associations declared by the type.
func (n *XPolicyCmptClass) Associations() []*XPolicyAssociation {
	assocs := make([]*XPolicyAssociation, len(n.Type.Associations))
	for i, a := range n.Type.Associations {
		assocs[i] = cached(n.ctx, a, func() *XPolicyAssociation {
			return &XPolicyAssociation{base: n.base, Owner: n, Association: a}
		})
	}
	return assocs
}

// IsPersistent reports whether JPA annotations apply to the class.
func (n *XPolicyCmptClass) IsPersistent() bool { return n.Type.IsPersistent() }

func (n *XProductCmptClass) Name() string { return n.Type.QName }

// ClassName returns the qualified Java class name.
func (n *XProductCmptClass) ClassName() string {
	return javaClassName(n.ctx.config.BasePackage, n.Type.QName)
}

// GenerationClassName returns the qualified name of the generation class,
// or "" if the type does not change over time.
func (n *XProductCmptClass) GenerationClassName() string {
	if !n.Type.ChangingOverTime {
		return ""
	}
	return n.ClassName() + "Gen"
}

// Supertype returns the class of the supertype, or nil.
func (n *XProductCmptClass) Supertype() *XProductCmptClass {
	if n.Type.Supertype == "" {
		return nil
	}
	t := n.ctx.resolver.FindProductCmptType(n.Type.Supertype)
	if t == nil {
		return nil
	}
	return n.ctx.ProductCmptClass(t)
}

// PolicyCmptClass returns the class of the configured policy type, or nil.
func (n *XProductCmptClass) PolicyCmptClass() *XPolicyCmptClass {
	if n.Type.Policy == "" {
		return nil
	}
	t := n.ctx.resolver.FindPolicyCmptType(n.Type.Policy)
	if t == nil {
		return nil
	}
	return n.ctx.PolicyCmptClass(t)
}

// Attributes returns the attributes declared by the type.
func (n *XProductCmptClass) Attributes() []*XProductAttribute {
	attrs := make([]*XProductAttribute, len(n.Type.Attributes))
	for i, a := range n.Type.Attributes {
		attrs[i] = cached(n.ctx, a, func() *XProductAttribute {
			return &XProductAttribute{base: n.base, Owner: n, Attribute: a}
		})
	}
	return attrs
}

// Associations returns the associations declared by the type.
func (n *XProductCmptClass) Associations() []*XProductAssociation {
	assocs := make([]*XProductAssociation, len(n.Type.Associations))
	for i, a := range n.Type.Associations {
		assocs[i] = cached(n.ctx, a, func() *XProductAssociation {
			return &XProductAssociation{base: n.base, Owner: n, Association: a}
		})
	}
	return assocs
}

// TableUsages returns the table structure usages declared by the type.
func (n *XProductCmptClass) TableUsages() []*XTableUsage {
	usages := make([]*XTableUsage, len(n.Type.TableUsages))
	for i, u := range n.Type.TableUsages {
		usages[i] = cached(n.ctx, u, func() *XTableUsage {
			return &XTableUsage{base: n.base, Owner: n, Usage: u}
		})
	}
	return usages
}

// Formulas returns the formula signatures declared by the type.
func (n *XProductCmptClass) Formulas() []*XMethod {
	formulas := n.Type.Formulas()
	methods := make([]*XMethod, len(formulas))
	for i, m := range formulas {
		methods[i] = cached(n.ctx, m, func() *XMethod {
			return &XMethod{base: n.base, Owner: n, Method: m}
		})
	}
	return methods
}

func (n *XPolicyAttribute) Name() string { return n.Attribute.Name }

// GetterName returns the name of the getter method.
func (n *XPolicyAttribute) GetterName() string {
	return getterName(n.Attribute.Name, n.Attribute.Datatype)
}

// JavaType returns the qualified Java class of the attribute value.
func (n *XPolicyAttribute) JavaType() string { return n.Attribute.Datatype.JavaClass() }

// HasField reports whether the attribute is stored in an instance field.
func (n *XPolicyAttribute) HasField() bool {
	switch n.Attribute.Kind {
	case model.AttributeChangeable, model.AttributeDerivedByExplicitMethodCall:
		return true
	}
	return false
}

func (n *XProductAttribute) Name() string { return n.Attribute.Name }

// GetterName returns the name of the getter method.
func (n *XProductAttribute) GetterName() string {
	if n.Attribute.MultiValue {
		return "get" + capitalize(n.Attribute.Name)
	}
	return getterName(n.Attribute.Name, n.Attribute.Datatype)
}

// JavaType returns the qualified Java class of a single attribute value.
// Multilingual values are international strings.
func (n *XProductAttribute) JavaType() string {
	if n.Attribute.Multilingual && n.Attribute.Datatype == value.DatatypeString {
		return "org.faktorips.values.InternationalString"
	}
	return n.Attribute.Datatype.JavaClass()
}

func (n *XPolicyAssociation) Name() string { return n.Association.Name }

// PluralName returns the plural target role.
func (n *XPolicyAssociation) PluralName() string {
	return pluralize(n.Association.Name, n.Association.TargetRolePlural)
}

// FieldName returns the name of the field holding the targets.
func (n *XPolicyAssociation) FieldName() string {
	if n.Association.IsToMany() {
		return n.PluralName()
	}
	return n.Association.Name
}

// GetterName returns the name of the getter method.
func (n *XPolicyAssociation) GetterName() string { return "get" + capitalize(n.FieldName()) }

// Target returns the class of the target type, or nil.
func (n *XPolicyAssociation) Target() *XPolicyCmptClass {
	t := n.ctx.resolver.FindPolicyCmptType(n.Association.Target)
	if t == nil {
		return nil
	}
	return n.ctx.PolicyCmptClass(t)
}

// Inverse returns the inverse association declared by the target, or nil.
func (n *XPolicyAssociation) Inverse() *model.PolicyAssociation {
	if n.Association.Inverse == "" {
		return nil
	}
	t := n.ctx.resolver.FindPolicyCmptType(n.Association.Target)
	if t == nil {
		return nil
	}
	return t.Association(n.Association.Inverse)
}

func (n *XProductAssociation) Name() string { return n.Association.Name }

// PluralName returns the plural target role.
func (n *XProductAssociation) PluralName() string {
	return pluralize(n.Association.Name, n.Association.TargetRolePlural)
}

// GetterName returns the name of the getter method.
func (n *XProductAssociation) GetterName() string {
	if n.Association.IsToMany() {
		return "get" + capitalize(n.PluralName())
	}
	return "get" + capitalize(n.Association.Name)
}

// Target returns the class of the target type, or nil.
func (n *XProductAssociation) Target() *XProductCmptClass {
	t := n.ctx.resolver.FindProductCmptType(n.Association.Target)
	if t == nil {
		return nil
	}
	return n.ctx.ProductCmptClass(t)
}

func (n *XMethod) Name() string { return n.Method.FormulaName }

// MethodName returns the name of the computation method.
func (n *XMethod) MethodName() string { return "compute" + capitalize(n.Method.FormulaName) }

// JavaType returns the qualified Java class of the formula result.
func (n *XMethod) JavaType() string { return javaType(n.Method.Datatype) }

func (n *XTableUsage) Name() string { return n.Usage.RoleName }

// GetterName returns the name of the getter method.
func (n *XTableUsage) GetterName() string { return "get" + capitalize(n.Usage.RoleName) }

// TableClassName returns the qualified Java class of the table contents.
// Usages allowing several structures use the common table base class.
func (n *XTableUsage) TableClassName() string {
	if len(n.Usage.TableStructures) != 1 {
		return "org.faktorips.runtime.ITable"
	}
	return javaClassName(n.ctx.config.BasePackage, n.Usage.TableStructures[0])
}
