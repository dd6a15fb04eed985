package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
	"github.com/syssam/faktorgen/persistence"
)

type fixture struct {
	project  *model.Project
	sp       *model.SearchPath
	policy   *model.PolicyCmptType
	home     *model.PolicyCmptType
	coverage *model.PolicyCmptType
	claim    *model.PolicyCmptType
	product  *model.ProductCmptType
	covType  *model.ProductCmptType
}

// newFixture returns a home insurance model: the persistent policy types
// home.Policy, home.HomePolicy and home.Coverage, the transient home.Claim
// and the product types home.Product and home.CoverageType.
func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{project: model.NewProject("home", language.English)}
	f.policy = &model.PolicyCmptType{
		QName:                 "home.Policy",
		ConfigurableByProduct: true,
		ProductCmptType:       "home.Product",
		Description:           "A home insurance policy",
		Persistence: &model.PersistentTypeInfo{
			Enabled:                    true,
			Type:                       model.PersistentTypeEntity,
			TableName:                  "POLICY",
			InheritanceStrategy:        model.InheritanceSingleTable,
			DefinesDiscriminatorColumn: true,
			DiscriminatorColumnName:    "DTYPE",
			DiscriminatorColumnLength:  30,
			DiscriminatorDatatype:      model.DiscriminatorString,
			DiscriminatorValue:         "POLICY",
		},
		Attributes: []*model.PolicyAttribute{
			{
				Name:        "premium",
				Datatype:    value.DatatypeMoney,
				Kind:        model.AttributeChangeable,
				Persistence: &model.PersistentAttributeInfo{ColumnName: "PREMIUM", Nullable: true},
			},
			{
				Name:                        "zone",
				Datatype:                    value.DatatypeString,
				Kind:                        model.AttributeChangeable,
				ValueSetConfiguredByProduct: true,
				ChangingOverTime:            true,
				ValueSet:                    &valueset.Enum{Values: []string{"I", "II"}},
				Description:                 "Tariff zone = risk class",
				Persistence: &model.PersistentAttributeInfo{
					ColumnName:     "ZONE",
					Size:           10,
					ConverterClass: "com.acme.ZoneConverter",
					IndexName:      "IDX_ZONE",
				},
			},
			{
				Name:        "effectiveFrom",
				Datatype:    value.DatatypeGregorianCalendar,
				Kind:        model.AttributeChangeable,
				Persistence: &model.PersistentAttributeInfo{ColumnName: "EFFECTIVE_FROM", Nullable: true},
			},
			{
				Name:     "age",
				Datatype: value.DatatypeInteger,
				Kind:     model.AttributeDerivedOnTheFly,
			},
			{
				Name:        "legacyCode",
				Datatype:    value.DatatypeString,
				Kind:        model.AttributeChangeable,
				Deprecation: &model.Deprecation{Since: "2.0", ForRemoval: true},
				Persistence: &model.PersistentAttributeInfo{Transient: true},
			},
		},
		Associations: []*model.PolicyAssociation{{
			Name:                "coverage",
			TargetRolePlural:    "coverages",
			Target:              "home.Coverage",
			Kind:                model.CompositionMasterToDetail,
			Min:                 0,
			Max:                 model.CardinalityMany,
			Inverse:             "policy",
			MatchingAssociation: "coverageType",
			Persistence: &model.PersistentAssociationInfo{
				Cascade:       []model.CascadeType{model.CascadeAll},
				OrphanRemoval: true,
			},
		}},
		Rules: []*model.ValidationRule{{Name: "checkAge", ConfigurableByProduct: true}},
	}
	f.home = &model.PolicyCmptType{
		QName:     "home.HomePolicy",
		Supertype: "home.Policy",
		Persistence: &model.PersistentTypeInfo{
			Enabled:                    true,
			Type:                       model.PersistentTypeEntity,
			UseTableDefinedInSupertype: true,
			DiscriminatorValue:         "HOME",
		},
	}
	f.coverage = &model.PolicyCmptType{
		QName: "home.Coverage",
		Persistence: &model.PersistentTypeInfo{
			Enabled:   true,
			Type:      model.PersistentTypeEntity,
			TableName: "COVERAGE",
		},
		Associations: []*model.PolicyAssociation{{
			Name:        "policy",
			Target:      "home.Policy",
			Kind:        model.CompositionDetailToMaster,
			Min:         1,
			Max:         1,
			Inverse:     "coverage",
			Persistence: &model.PersistentAssociationInfo{JoinColumnName: "POLICY_ID"},
		}},
	}
	f.claim = &model.PolicyCmptType{
		QName: "home.Claim",
		Attributes: []*model.PolicyAttribute{
			{Name: "amount", Datatype: value.DatatypeMoney, Kind: model.AttributeChangeable},
		},
	}
	f.product = &model.ProductCmptType{
		QName:            "home.Product",
		Policy:           "home.Policy",
		ChangingOverTime: true,
		Attributes: []*model.ProductAttribute{
			{Name: "name", Datatype: value.DatatypeString},
			{Name: "tariffZones", Datatype: value.DatatypeString, MultiValue: true, ChangingOverTime: true},
		},
		Associations: []*model.ProductAssociation{{
			Name:                "coverageType",
			TargetRolePlural:    "coverageTypes",
			Target:              "home.CoverageType",
			Max:                 model.CardinalityMany,
			MatchingAssociation: "coverage",
		}},
		TableUsages: []*model.TableStructureUsage{{
			RoleName:         "rates",
			TableStructures:  []string{"home.RateTable"},
			ChangingOverTime: true,
		}},
		Methods: []*model.Method{{
			Name:             "computePremium",
			Datatype:         "Money",
			Parameters:       []model.Parameter{{Name: "age", Datatype: "Integer"}},
			Formula:          true,
			FormulaName:      "premium",
			ChangingOverTime: true,
		}},
	}
	f.covType = &model.ProductCmptType{QName: "home.CoverageType"}

	for _, pt := range []*model.PolicyCmptType{f.policy, f.home, f.coverage, f.claim} {
		require.NoError(t, f.project.AddPolicyCmptType(pt))
	}
	for _, pt := range []*model.ProductCmptType{f.product, f.covType} {
		require.NoError(t, f.project.AddProductCmptType(pt))
	}
	f.sp = model.NewSearchPath(f.project)
	return f
}

// context returns a build context with base package org.acme and the
// given provider.
func (f *fixture) context(t testing.TB, provider persistence.ID, opts ...Option) *Context {
	t.Helper()
	opts = append([]Option{WithBasePackage("org.acme"), WithProvider(provider)}, opts...)
	ctx, err := NewContext(f.sp, MustNewConfig(opts...))
	require.NoError(t, err)
	return ctx
}

func policyAttr(ctx *Context, t *model.PolicyCmptType, name string) *XPolicyAttribute {
	for _, a := range ctx.PolicyCmptClass(t).Attributes() {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

func policyAssoc(ctx *Context, t *model.PolicyCmptType, name string) *XPolicyAssociation {
	for _, a := range ctx.PolicyCmptClass(t).Associations() {
		if a.Name() == name {
			return a
		}
	}
	return nil
}
