package gen

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/valueset"
)

const (
	annotationPackage = "org.faktorips.runtime.model.annotation."
	typePackage       = "org.faktorips.runtime.model.type."
)

// modelFactory creates the generators of the runtime model annotations.
// They are written for every build.
type modelFactory struct{}

func (modelFactory) IsRequiredFor(*Context) bool { return true }

func (modelFactory) CreateAnnotationGenerators(t ElementType) []AnnotationGenerator {
	switch t {
	case ProductCmptDeclClass:
		return []AnnotationGenerator{For(nil, compose(
			productCmptTypeAnnotation,
			configuresAnnotation,
			changingOverTimeAnnotation,
			productAttributesAnnotation,
			productAssociationsAnnotation,
			tableUsagesAnnotation,
			formulasAnnotation,
			documented[*XProductCmptClass],
		))}
	case PolicyCmptDeclClass:
		return []AnnotationGenerator{For(nil, compose(
			policyCmptTypeAnnotation,
			policyAttributesAnnotation,
			policyAssociationsAnnotation,
			configuredByAnnotation,
			validationRulesAnnotation,
			documented[*XPolicyCmptClass],
		))}
	case PolicyCmptDeclAttributeGetter:
		return []AnnotationGenerator{For(nil, policyAttributeAnnotation)}
	case ProductCmptDeclAttributeGetter:
		return []AnnotationGenerator{For(nil, productAttributeAnnotation)}
	case PolicyCmptDeclAssociationGetter:
		return []AnnotationGenerator{For(nil, policyAssociationAnnotation)}
	case ProductCmptDeclAssociationGetter:
		return []AnnotationGenerator{For(nil, productAssociationAnnotation)}
	case TableUsageGetter:
		return []AnnotationGenerator{For(nil, func(n *XTableUsage) (java.Fragment, error) {
			return annotation(annotationPackage+"IpsTableUsage", "name = "+java.Quote(n.Usage.RoleName)), nil
		})}
	case FormulaComputationMethod:
		return []AnnotationGenerator{For(nil, func(n *XMethod) (java.Fragment, error) {
			return annotation(annotationPackage+"IpsFormula", "name = "+java.Quote(n.Method.FormulaName)), nil
		})}
	case DeprecatedElement:
		return []AnnotationGenerator{deprecationGenerator{}}
	}
	return nil
}

func productCmptTypeAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	return annotation(annotationPackage+"IpsProductCmptType", "name = "+java.Quote(n.Type.QName)), nil
}

func configuresAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	policy := n.PolicyCmptClass()
	if policy == nil {
		return java.Fragment{}, nil
	}
	return classAnnotation(annotationPackage+"IpsConfigures", policy.ClassName()), nil
}

func changingOverTimeAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	gen := n.GenerationClassName()
	if gen == "" {
		return java.Fragment{}, nil
	}
	return classAnnotation(annotationPackage+"IpsChangingOverTime", gen), nil
}

func productAttributesAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsAttributes", n.Attributes()), nil
}

func productAssociationsAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsAssociations", n.Associations()), nil
}

func tableUsagesAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsTableUsages", n.TableUsages()), nil
}

func formulasAnnotation(n *XProductCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsFormulas", n.Formulas()), nil
}

func policyCmptTypeAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	return annotation(annotationPackage+"IpsPolicyCmptType", "name = "+java.Quote(n.Type.QName)), nil
}

func policyAttributesAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsAttributes", n.Attributes()), nil
}

func policyAssociationsAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	return namesAnnotation("IpsAssociations", n.Associations()), nil
}

func configuredByAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	product := n.ProductCmptClass()
	if product == nil {
		return java.Fragment{}, nil
	}
	return classAnnotation(annotationPackage+"IpsConfiguredBy", product.ClassName()), nil
}

func validationRulesAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	names := make([]string, len(n.Type.Rules))
	for i, r := range n.Type.Rules {
		names[i] = r.Name
	}
	return stringsAnnotation("IpsValidationRules", names), nil
}

// documented references the documentation bundle. It contributes nothing
// unless the documentation feature is enabled.
func documented[N Node](n N) (java.Fragment, error) {
	c := n.Context().config
	if !c.FeatureEnabled(FeatureDocumentation.Name) || c.DocumentationBundle == "" {
		return java.Fragment{}, nil
	}
	params := []string{"bundleName = " + java.Quote(bundleName(c))}
	if c.DefaultLocale != "" {
		params = append(params, "defaultLocale = "+java.Quote(c.DefaultLocale))
	}
	return annotation(annotationPackage+"IpsDocumented", params...), nil
}

func policyAttributeAnnotation(n *XPolicyAttribute) (java.Fragment, error) {
	a := n.Attribute
	b := java.NewBuilder()
	b.AnnotationLn(annotationPackage+"IpsAttribute",
		"name = "+java.Quote(a.Name),
		"kind = "+b.ClassName(typePackage+"AttributeKind")+"."+a.Kind.String(),
		"valueSetKind = "+b.ClassName(typePackage+"ValueSetKind")+"."+valueSetKindName(a.ValueSet))
	if a.IsProductRelevant() {
		b.AnnotationLn(annotationPackage+"IpsConfiguredAttribute",
			"changingOverTime = "+strconv.FormatBool(a.ChangingOverTime))
	}
	return b.Fragment(), nil
}

func productAttributeAnnotation(n *XProductAttribute) (java.Fragment, error) {
	a := n.Attribute
	b := java.NewBuilder()
	b.AnnotationLn(annotationPackage+"IpsAttribute",
		"name = "+java.Quote(a.Name),
		"kind = "+b.ClassName(typePackage+"AttributeKind")+"."+model.AttributeConstant.String(),
		"valueSetKind = "+b.ClassName(typePackage+"ValueSetKind")+"."+valueSetKindName(a.ValueSet))
	return b.Fragment(), nil
}

func policyAssociationAnnotation(n *XPolicyAssociation) (java.Fragment, error) {
	a := n.Association
	c := n.Context().config
	b := java.NewBuilder()
	params := []string{"name = " + java.Quote(a.Name)}
	if a.IsToMany() {
		params = append(params, "pluralName = "+java.Quote(n.PluralName()))
	}
	params = append(params,
		"kind = "+b.ClassName(typePackage+"AssociationKind")+"."+a.Kind.String(),
		"targetClass = "+b.ClassName(javaClassName(c.BasePackage, a.Target))+".class",
		"min = "+strconv.Itoa(a.Min),
		"max = "+maxCardinality(a.Max))
	b.AnnotationLn(annotationPackage+"IpsAssociation", params...)
	if a.Inverse != "" {
		b.AnnotationLn(annotationPackage+"IpsInverseAssociation", java.Quote(a.Inverse))
	}
	if a.MatchingAssociation != "" {
		if product := n.Owner.ProductCmptClass(); product != nil {
			b.AnnotationLn(annotationPackage+"IpsMatchingAssociation",
				"source = "+b.ClassName(product.ClassName())+".class",
				"name = "+java.Quote(a.MatchingAssociation))
		}
	}
	return b.Fragment(), nil
}

func productAssociationAnnotation(n *XProductAssociation) (java.Fragment, error) {
	a := n.Association
	c := n.Context().config
	b := java.NewBuilder()
	params := []string{"name = " + java.Quote(a.Name)}
	if a.IsToMany() {
		params = append(params, "pluralName = "+java.Quote(n.PluralName()))
	}
	params = append(params,
		"kind = "+b.ClassName(typePackage+"AssociationKind")+"."+model.Association.String(),
		"targetClass = "+b.ClassName(javaClassName(c.BasePackage, a.Target))+".class",
		"min = "+strconv.Itoa(a.Min),
		"max = "+maxCardinality(a.Max))
	b.AnnotationLn(annotationPackage+"IpsAssociation", params...)
	if a.MatchingAssociation != "" {
		if policy := n.Owner.PolicyCmptClass(); policy != nil {
			b.AnnotationLn(annotationPackage+"IpsMatchingAssociation",
				"source = "+b.ClassName(policy.ClassName())+".class",
				"name = "+java.Quote(a.MatchingAssociation))
		}
	}
	return b.Fragment(), nil
}

// deprecationGenerator writes @Deprecated on every node carrying a
// deprecation.
type deprecationGenerator struct{}

func (deprecationGenerator) IsGenerateAnnotationFor(n Node) bool {
	return n.Context().config.FeatureEnabled(FeatureDeprecation.Name) &&
		Visit[*model.Deprecation](n, deprecationOf{}) != nil
}

func (deprecationGenerator) CreateAnnotation(n Node) (java.Fragment, error) {
	d := Visit[*model.Deprecation](n, deprecationOf{})
	if d == nil {
		return java.Fragment{}, nil
	}
	var params []string
	if d.Since != "" {
		params = append(params, "since = "+java.Quote(d.Since))
	}
	if d.ForRemoval {
		params = append(params, "forRemoval = true")
	}
	return annotation("java.lang.Deprecated", params...), nil
}

// deprecationOf returns the deprecation of a node, nil for node kinds that
// cannot be deprecated.
type deprecationOf struct{}

func (deprecationOf) VisitPolicyCmptClass(*XPolicyCmptClass) *model.Deprecation   { return nil }
func (deprecationOf) VisitProductCmptClass(*XProductCmptClass) *model.Deprecation { return nil }
func (deprecationOf) VisitTableUsage(*XTableUsage) *model.Deprecation             { return nil }

func (deprecationOf) VisitPolicyAttribute(n *XPolicyAttribute) *model.Deprecation {
	return n.Attribute.Deprecation
}

func (deprecationOf) VisitProductAttribute(n *XProductAttribute) *model.Deprecation {
	return n.Attribute.Deprecation
}

func (deprecationOf) VisitPolicyAssociation(n *XPolicyAssociation) *model.Deprecation {
	return n.Association.Deprecation
}

func (deprecationOf) VisitProductAssociation(n *XProductAssociation) *model.Deprecation {
	return n.Association.Deprecation
}

func (deprecationOf) VisitMethod(n *XMethod) *model.Deprecation { return n.Method.Deprecation }

// classAnnotation returns @Name(Class.class).
func classAnnotation(qname, class string) java.Fragment {
	b := java.NewBuilder()
	b.AnnotationLn(qname, b.ClassName(class)+".class")
	return b.Fragment()
}

// namesAnnotation lists the names of nodes, nothing if there are none.
func namesAnnotation[N Node](simpleName string, nodes []N) java.Fragment {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}
	return stringsAnnotation(simpleName, names)
}

func stringsAnnotation(simpleName string, names []string) java.Fragment {
	if len(names) == 0 {
		return java.Fragment{}
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = java.Quote(n)
	}
	return annotation(annotationPackage+simpleName, "{"+strings.Join(quoted, ", ")+"}")
}

var valueSetKindNames = map[valueset.Kind]string{
	valueset.KindUnrestricted: "AllValues",
	valueset.KindEnum:         "Enum",
	valueset.KindRange:        "Range",
	valueset.KindStringLength: "StringLength",
}

func valueSetKindName(s valueset.ValueSet) string {
	return valueSetKindNames[valueset.KindOf(s)]
}

func maxCardinality(n int) string {
	if n == model.CardinalityMany {
		return "Integer.MAX_VALUE"
	}
	return strconv.Itoa(n)
}

// bundleName returns the qualified name of the documentation bundle.
func bundleName(c *Config) string {
	if c.BasePackage == "" {
		return c.DocumentationBundle
	}
	return c.BasePackage + "." + c.DocumentationBundle
}

// bundlePath returns the file the documentation bundle is written to.
func bundlePath(target, basePackage, bundle string) string {
	return filepath.Join(target, filepath.FromSlash(strings.ReplaceAll(basePackage, ".", "/")), bundle+".properties")
}
