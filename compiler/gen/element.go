package gen

import "fmt"

// ElementType identifies the place in a generated class an annotation is
// written to. Generator factories register their generators per element type.
type ElementType uint8

// Annotated Java element types.
const (
	ProductCmptDeclClass ElementType = iota
	PolicyCmptDeclClass
	PolicyCmptImplClass
	ProductCmptDeclAttributeGetter
	PolicyCmptDeclAttributeGetter
	ProductCmptDeclAssociationGetter
	PolicyCmptDeclAssociationGetter
	TableUsageGetter
	FormulaComputationMethod
	DeprecatedElement
	PolicyCmptImplAttributeField
	PolicyCmptImplAssociationField

	numElementTypes
)

var elementTypeNames = [numElementTypes]string{
	ProductCmptDeclClass:             "PRODUCT_CMPT_DECL_CLASS",
	PolicyCmptDeclClass:              "POLICY_CMPT_DECL_CLASS",
	PolicyCmptImplClass:              "POLICY_CMPT_IMPL_CLASS",
	ProductCmptDeclAttributeGetter:   "PRODUCT_CMPT_DECL_CLASS_ATTRIBUTE_GETTER",
	PolicyCmptDeclAttributeGetter:    "POLICY_CMPT_DECL_CLASS_ATTRIBUTE_GETTER",
	ProductCmptDeclAssociationGetter: "PRODUCT_CMPT_DECL_CLASS_ASSOCIATION_GETTER",
	PolicyCmptDeclAssociationGetter:  "POLICY_CMPT_DECL_CLASS_ASSOCIATION_GETTER",
	TableUsageGetter:                 "TABLE_USAGE_GETTER",
	FormulaComputationMethod:         "FORMULA_COMPUTATION_METHOD",
	DeprecatedElement:                "DEPRECATED_ELEMENT",
	PolicyCmptImplAttributeField:     "POLICY_CMPT_IMPL_CLASS_ATTRIBUTE_FIELD",
	PolicyCmptImplAssociationField:   "POLICY_CMPT_IMPL_CLASS_ASSOCIATION_FIELD",
}

func (t ElementType) String() string {
	if t < numElementTypes {
		return elementTypeNames[t]
	}
	return fmt.Sprintf("ElementType(%d)", t)
}

// ElementTypes returns all element types in declaration order.
func ElementTypes() []ElementType {
	types := make([]ElementType, numElementTypes)
	for i := range types {
		types[i] = ElementType(i)
	}
	return types
}
