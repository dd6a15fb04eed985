package delta

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

func ptr(s string) *string { return &s }

var (
	jan2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2025 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	project *model.Project
	sp      *model.SearchPath
	policy  *model.PolicyCmptType
	product *model.ProductCmptType
	cmpt    *model.ProductCmpt
	gen     *model.Generation
}

// newFixture returns a project holding home.Basic, a component that matches
// its type home.Product.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{project: model.NewProject("home", language.English)}
	f.policy = &model.PolicyCmptType{
		QName:                 "home.Policy",
		ConfigurableByProduct: true,
		ProductCmptType:       "home.Product",
		Attributes: []*model.PolicyAttribute{{
			Name:                        "sumInsured",
			Datatype:                    value.DatatypeDecimal,
			Kind:                        model.AttributeChangeable,
			ValueSetConfiguredByProduct: true,
			ChangingOverTime:            true,
			ValueSet:                    &valueset.Enum{Values: []string{"1000", "2000"}},
		}},
	}
	f.product = &model.ProductCmptType{
		QName:            "home.Product",
		Policy:           "home.Policy",
		ChangingOverTime: true,
		Attributes: []*model.ProductAttribute{
			{Name: "name", Datatype: value.DatatypeString},
			{Name: "tariffZones", Datatype: value.DatatypeString, MultiValue: true, ChangingOverTime: true},
			{Name: "minAge", Datatype: value.DatatypeInteger, ChangingOverTime: true},
		},
		Associations: []*model.ProductAssociation{
			{Name: "coverage", TargetRolePlural: "coverages", Target: "home.Coverage", Max: model.CardinalityMany, ChangingOverTime: true},
			{Name: "provider", Target: "home.Provider", Max: 1},
		},
	}
	require.NoError(t, f.project.AddPolicyCmptType(f.policy))
	require.NoError(t, f.project.AddProductCmptType(f.product))

	f.cmpt = model.NewProductCmpt("home.Basic", "home.Product")
	f.cmpt.AddValue(&model.PropertyValue{ID: "v1", Property: "name", Type: model.AttributeValue, Holder: value.NewSingleString("Basic")})
	f.cmpt.AddLink(&model.Link{ID: "l1", Association: "provider", Target: "home.Acme"})

	f.gen = f.cmpt.AddGeneration(jan2024)
	fillGeneration(f.gen)
	require.NoError(t, f.project.AddProductCmpt(f.cmpt))
	f.sp = model.NewSearchPath(f.project)
	return f
}

func fillGeneration(g *model.Generation) {
	g.AddValue(&model.PropertyValue{ID: "g1", Property: "tariffZones", Type: model.AttributeValue, Holder: value.NewMulti(value.NewSingleString("Z1"))})
	g.AddValue(&model.PropertyValue{ID: "g2", Property: "minAge", Type: model.AttributeValue, Holder: value.NewSingleString("18")})
	g.AddValue(&model.PropertyValue{ID: "g3", Property: "sumInsured", Type: model.ConfiguredDefault, Holder: value.NewSingleString("1000")})
	g.AddValue(&model.PropertyValue{ID: "g4", Property: "sumInsured", Type: model.ConfiguredValueSet, ValueSet: &valueset.Enum{Values: []string{"1000"}}})
	g.AddLink(&model.Link{ID: "g5", Association: "coverage", Target: "home.Fire"})
}

func (f *fixture) compute() *Delta { return Compute(f.cmpt, f.sp) }

func entryTypes(d *Delta) []Type {
	var ts []Type
	for _, e := range d.Entries() {
		ts = append(ts, e.Type())
	}
	return ts
}

func TestMatchingComponentHasNoEntries(t *testing.T) {
	f := newFixture(t)
	d := f.compute()
	assert.True(t, d.IsEmpty(), "unexpected entries: %v", entryTypes(d))
	assert.Same(t, f.cmpt, d.ProductCmpt())
}

func TestMissingType(t *testing.T) {
	f := newFixture(t)
	f.cmpt.Type = "home.Unknown"
	f.cmpt.AddValue(&model.PropertyValue{ID: "x", Property: "orphan", Type: model.AttributeValue})

	d := f.compute()
	require.Len(t, d.Entries(), 1)
	e := d.Entries()[0]
	assert.Equal(t, MissingType, e.Type())
	assert.Equal(t, "home.Unknown", e.(*MissingTypeEntry).TypeName())
	assert.Contains(t, Describe(e), "home.Unknown")
	e.Fix()
	assert.Len(t, f.cmpt.Values(), 2)
}

func TestUnresolvedSupertypeSuppressesOrphans(t *testing.T) {
	f := newFixture(t)
	f.product.Supertype = "home.Gone"
	f.gen.AddValue(&model.PropertyValue{ID: "x", Property: "inheritedMaybe", Type: model.AttributeValue})

	d := f.compute()
	assert.Equal(t, []Type{MissingType}, entryTypes(d))
	assert.Equal(t, "home.Gone", d.Entries()[0].(*MissingTypeEntry).TypeName())
}

func TestUnresolvedPolicyType(t *testing.T) {
	f := newFixture(t)
	f.product.Policy = "home.GonePolicy"
	d := f.compute()
	types := entryTypes(d)
	require.NotEmpty(t, types)
	assert.Equal(t, MissingType, types[0])
	assert.NotContains(t, types, ValueWithoutProperty)
}

func TestValueHolderMismatchGrowsToMulti(t *testing.T) {
	f := newFixture(t)
	pv := f.gen.Value("tariffZones", model.AttributeValue)
	pv.Holder = value.NewSingleString("10000")

	d := f.compute()
	require.Equal(t, []Type{ValueHolderMismatch}, entryTypes(d))
	e := d.Entries()[0]

	e.Fix()
	want := value.NewMulti(value.NewSingleString("10000"))
	assert.True(t, want.Equal(pv.Holder), "got %s", pv.Holder)

	e.Fix()
	assert.True(t, want.Equal(pv.Holder), "second fix changed %s", pv.Holder)
	assert.True(t, f.compute().IsEmpty())
}

func TestValueHolderMismatchNullBecomesEmpty(t *testing.T) {
	f := newFixture(t)
	pv := f.gen.Value("tariffZones", model.AttributeValue)
	pv.Holder = value.NewSingle(nil)

	f.compute().FixAll()
	assert.True(t, value.NewMulti().Equal(pv.Holder))
}

func TestValueHolderMismatchShrinksToFirst(t *testing.T) {
	f := newFixture(t)
	pv := f.gen.Value("minAge", model.AttributeValue)
	pv.Holder = value.NewMulti(value.NewSingleString("18"), value.NewSingleString("21"))

	d := f.compute()
	require.Equal(t, []Type{ValueHolderMismatch}, entryTypes(d))
	d.FixAll()
	assert.True(t, value.NewSingleString("18").Equal(pv.Holder))
}

func TestValueSetMismatch(t *testing.T) {
	f := newFixture(t)
	pv := f.gen.Value("sumInsured", model.ConfiguredValueSet)
	pv.ValueSet = &valueset.Range{Lower: "0", Upper: "5000"}

	d := f.compute()
	require.Equal(t, []Type{ValueSetMismatch}, entryTypes(d))
	e := d.Entries()[0]

	desc := Describe(e)
	assert.Contains(t, desc, "enum")
	assert.Contains(t, desc, "range")
	assert.Contains(t, desc, "sumInsured")

	e.Fix()
	assert.True(t, f.policy.Attributes[0].ValueSet.Equal(pv.ValueSet))
	assert.NotSame(t, f.policy.Attributes[0].ValueSet, pv.ValueSet)

	// A later narrowing of the copy must survive a repeated fix.
	pv.ValueSet.(*valueset.Enum).Values = []string{"1000"}
	e.Fix()
	assert.Equal(t, []string{"1000"}, pv.ValueSet.(*valueset.Enum).Values)
}

func TestValueSetUnrestrictedAttributeAcceptsAnyKind(t *testing.T) {
	f := newFixture(t)
	f.policy.Attributes[0].ValueSet = &valueset.Unrestricted{Null: true}
	f.gen.Value("sumInsured", model.ConfiguredValueSet).ValueSet = &valueset.Range{Lower: "0"}
	assert.True(t, f.compute().IsEmpty())
}

func TestValueWithoutProperty(t *testing.T) {
	f := newFixture(t)
	orphan := &model.PropertyValue{ID: "x", Property: "discontinued", Type: model.AttributeValue}
	f.gen.AddValue(orphan)

	d := f.compute()
	require.Equal(t, []Type{ValueWithoutProperty}, entryTypes(d))
	e := d.Entries()[0]
	assert.Equal(t, "home.Basic@2024-01-01", e.Location())
	assert.Contains(t, Describe(e), "discontinued")

	e.Fix()
	assert.False(t, f.gen.ContainsValue(orphan))
	n := len(f.gen.Values())
	e.Fix()
	assert.Len(t, f.gen.Values(), n)
}

func TestMissingPropertyValueUsesDefault(t *testing.T) {
	f := newFixture(t)
	f.product.Attributes[2].DefaultValue = ptr("21")
	f.gen.RemoveValue(f.gen.Value("minAge", model.AttributeValue))

	d := f.compute()
	require.Equal(t, []Type{MissingPropertyValue}, entryTypes(d))
	d.FixAll()
	d.FixAll()

	require.Len(t, f.gen.ValuesFor("minAge"), 1)
	assert.True(t, value.NewSingleString("21").Equal(f.gen.Value("minAge", model.AttributeValue).Holder))
}

func TestPropertyBecomesChangingOverTime(t *testing.T) {
	f := newFixture(t)
	f.product.Attributes[0].ChangingOverTime = true
	original := f.cmpt.Value("name", model.AttributeValue)

	d := f.compute()
	assert.ElementsMatch(t, []Type{ValueWithoutProperty, MissingPropertyValue}, entryTypes(d))

	// Applying the deletion first must not lose the value taken over.
	entries := d.Entries()
	slices.SortFunc(entries, func(a, b Entry) int { return int(b.Type()) - int(a.Type()) })
	for _, e := range entries {
		e.Fix()
	}

	assert.Nil(t, f.cmpt.Value("name", model.AttributeValue))
	moved := f.gen.Value("name", model.AttributeValue)
	require.NotNil(t, moved)
	assert.NotEqual(t, original.ID, moved.ID)
	assert.True(t, value.NewSingleString("Basic").Equal(moved.Holder))
	assert.True(t, f.compute().IsEmpty())
}

func TestPropertyTypeMismatch(t *testing.T) {
	f := newFixture(t)
	f.gen.RemoveValue(f.gen.Value("minAge", model.AttributeValue))
	formula := &model.PropertyValue{ID: "f", Property: "minAge", Type: model.Formula, Expression: "18"}
	f.gen.AddValue(formula)

	d := f.compute()
	require.Equal(t, []Type{PropertyTypeMismatch}, entryTypes(d))
	assert.Contains(t, Describe(d.Entries()[0]), "Formula")

	d.FixAll()
	assert.False(t, f.gen.ContainsValue(formula))
	assert.NotNil(t, f.gen.Value("minAge", model.AttributeValue))
	assert.True(t, f.compute().IsEmpty())
}

func TestMultilingualMismatch(t *testing.T) {
	f := newFixture(t)
	f.product.Attributes[0].Multilingual = true

	d := f.compute()
	require.Equal(t, []Type{MultilingualMismatch}, entryTypes(d))
	d.FixAll()

	holder := f.cmpt.Value("name", model.AttributeValue).Holder.(*value.SingleValueHolder)
	intl, ok := holder.Value.(*value.InternationalStringValue)
	require.True(t, ok)
	text, ok := intl.Text(language.English)
	assert.True(t, ok)
	assert.Equal(t, "Basic", text)
	assert.True(t, f.compute().IsEmpty())
}

func TestDatatypeMismatch(t *testing.T) {
	f := newFixture(t)
	f.gen.Value("minAge", model.AttributeValue).Holder = value.NewSingleString("eighteen")
	f.gen.Value("tariffZones", model.AttributeValue).Holder = value.NewMulti(value.NewSingleString("1"), value.NewSingleString("x"))
	f.product.Attributes[1].Datatype = value.DatatypeInteger

	d := f.compute()
	require.Equal(t, []Type{DatatypeMismatch, DatatypeMismatch}, entryTypes(d))
	assert.Contains(t, Describe(d.Entries()[0]), "tariffZones")
	assert.Contains(t, Describe(d.Entries()[1]), "eighteen")

	d.FixAll()
	assert.True(t, value.NewSingle(nil).Equal(f.gen.Value("minAge", model.AttributeValue).Holder))
	assert.True(t, value.NewMulti(value.NewSingleString("1")).Equal(f.gen.Value("tariffZones", model.AttributeValue).Holder))
}

func TestHiddenAttributeMismatch(t *testing.T) {
	f := newFixture(t)
	f.product.Attributes[0].Hidden = true
	f.product.Attributes[0].DefaultValue = ptr("Standard")

	d := f.compute()
	require.Equal(t, []Type{HiddenAttributeMismatch}, entryTypes(d))
	assert.Contains(t, Describe(d.Entries()[0]), "Standard")
	d.FixAll()
	assert.True(t, value.NewSingleString("Standard").Equal(f.cmpt.Value("name", model.AttributeValue).Holder))
}

func TestLinkWithoutAssociation(t *testing.T) {
	f := newFixture(t)
	l := &model.Link{ID: "x", Association: "broker", Target: "home.Broker"}
	f.cmpt.AddLink(l)

	d := f.compute()
	require.Equal(t, []Type{LinkWithoutAssociation}, entryTypes(d))
	e := d.Entries()[0]
	assert.Same(t, l, e.(*LinkWithoutAssociationEntry).Link())

	e.Fix()
	e.Fix()
	assert.False(t, f.cmpt.ContainsLink(l))
	assert.Len(t, f.cmpt.Links(), 1)
}

func TestLinkChangingOverTimeMismatch(t *testing.T) {
	t.Run("component links move into generations", func(t *testing.T) {
		f := newFixture(t)
		g2 := f.cmpt.AddGeneration(jan2025)
		fillGeneration(g2)
		f.cmpt.AddLink(&model.Link{ID: "x", Association: "coverage", Target: "home.Theft"})

		d := f.compute()
		require.Equal(t, []Type{LinkChangingOverTimeMismatch}, entryTypes(d))
		d.FixAll()
		d.FixAll()

		assert.Empty(t, f.cmpt.LinksFor("coverage"))
		for _, g := range f.cmpt.Generations() {
			assert.NotNil(t, g.Link("coverage", "home.Theft"), g.Owner())
			assert.Len(t, g.LinksFor("coverage"), 2)
		}
		assert.True(t, f.compute().IsEmpty())
	})

	t.Run("generation links move to the component", func(t *testing.T) {
		f := newFixture(t)
		f.product.Associations[0].ChangingOverTime = false

		d := f.compute()
		require.Equal(t, []Type{LinkChangingOverTimeMismatch}, entryTypes(d))
		d.FixAll()

		assert.NotNil(t, f.cmpt.Link("coverage", "home.Fire"))
		assert.Empty(t, f.gen.LinksFor("coverage"))
		assert.True(t, f.compute().IsEmpty())
	})
}

func TestInvalidGenerations(t *testing.T) {
	f := newFixture(t)
	fillGeneration(f.cmpt.AddGeneration(jan2025))
	f.product.ChangingOverTime = false

	d := f.compute()
	group := d.ByType()[InvalidGenerations]
	require.Len(t, group, 1)
	assert.Equal(t, InvalidGenerations, d.Entries()[0].Type())

	group[0].Fix()
	group[0].Fix()
	assert.Equal(t, 1, f.cmpt.NumGenerations())
	assert.Same(t, f.gen, f.cmpt.FirstGeneration())

	// Generation values are taken over onto the component.
	f.compute().FixAll()
	assert.True(t, f.compute().IsEmpty())
	assert.NotNil(t, f.cmpt.Value("minAge", model.AttributeValue))
	assert.Empty(t, f.gen.Values())
}

func TestFixOrderDoesNotMatter(t *testing.T) {
	type result struct {
		generations int
		minAge      string
		coverage    []string
	}
	run := func(t *testing.T, reverse bool) result {
		f := newFixture(t)
		f.product.ChangingOverTime = false
		g2 := f.cmpt.AddGeneration(jan2025)
		fillGeneration(g2)
		g2.Value("minAge", model.AttributeValue).Holder = value.NewSingleString("30")
		g2.RemoveLink(g2.Link("coverage", "home.Fire"))
		g2.AddLink(&model.Link{ID: "g6", Association: "coverage", Target: "home.Theft"})

		entries := f.compute().Entries()
		var types []Type
		for _, e := range entries {
			types = append(types, e.Type())
		}
		require.Contains(t, types, LinkChangingOverTimeMismatch)
		require.Contains(t, types, InvalidGenerations)
		if reverse {
			slices.Reverse(entries)
		}
		for _, e := range entries {
			e.Fix()
		}

		r := result{generations: f.cmpt.NumGenerations()}
		if pv := f.cmpt.Value("minAge", model.AttributeValue); pv != nil {
			r.minAge = holderString(pv.Holder)
		}
		for _, l := range f.cmpt.LinksFor("coverage") {
			r.coverage = append(r.coverage, l.Target)
		}
		slices.Sort(r.coverage)
		return r
	}

	inOrder := run(t, false)
	reversed := run(t, true)
	assert.Equal(t, inOrder, reversed)
	assert.Equal(t, 1, inOrder.generations)
	assert.Equal(t, holderString(value.NewSingleString("30")), inOrder.minAge)
	assert.Equal(t, []string{"home.Theft"}, inOrder.coverage)
}

func TestTemplateLinks(t *testing.T) {
	f := newFixture(t)
	tmpl := model.NewProductCmpt("home.Template", "home.Product")
	tmpl.IsTemplate = true
	tg := tmpl.AddGeneration(jan2024)
	tg.AddLink(&model.Link{ID: "t1", Association: "coverage", Target: "home.Glass", MaxCardinality: 1})
	tg.AddLink(&model.Link{ID: "t2", Association: "coverage", Target: "home.Hidden", TemplateStatus: model.TemplateUndefined})
	require.NoError(t, f.project.AddProductCmpt(tmpl))

	f.cmpt.Template = "home.Template"
	stale := &model.Link{ID: "s", Association: "coverage", Target: "home.Old", TemplateStatus: model.TemplateInherited}
	f.gen.AddLink(stale)

	d := f.compute()
	require.Equal(t, []Type{MissingTemplateLink, RemovedTemplateLink}, entryTypes(d))
	assert.Contains(t, Describe(d.Entries()[0]), "home.Template")

	d.FixAll()
	d.FixAll()
	added := f.gen.Link("coverage", "home.Glass")
	require.NotNil(t, added)
	assert.Equal(t, model.TemplateInherited, added.TemplateStatus)
	assert.Equal(t, 1, added.MaxCardinality)
	assert.False(t, f.gen.ContainsLink(stale))
	assert.Nil(t, f.gen.Link("coverage", "home.Hidden"))
	assert.True(t, f.compute().IsEmpty())
}

func TestMissingTemplateIsSkipped(t *testing.T) {
	f := newFixture(t)
	f.cmpt.Template = "home.NoSuchTemplate"
	f.gen.AddLink(&model.Link{ID: "s", Association: "coverage", Target: "home.Old", TemplateStatus: model.TemplateInherited})
	assert.True(t, f.compute().IsEmpty())
}

func TestNoDuplicatesAcrossGenerations(t *testing.T) {
	f := newFixture(t)
	fillGeneration(f.cmpt.AddGeneration(jan2025))
	assert.True(t, f.compute().IsEmpty())

	// The static name value lives once on the component, so a mismatch there
	// is reported once however many generations exist.
	f.product.Attributes[0].MultiValue = true
	for _, g := range f.cmpt.Generations() {
		g.Value("minAge", model.AttributeValue).Holder = value.NewSingleString("x")
	}

	d := f.compute()
	assert.Len(t, d.ByType()[ValueHolderMismatch], 1)
	datatype := d.ByType()[DatatypeMismatch]
	require.Len(t, datatype, 2)
	assert.NotEqual(t, datatype[0].Location(), datatype[1].Location())

	type key struct {
		t  Type
		pv *model.PropertyValue
	}
	seen := make(map[key]bool)
	for _, e := range d.Entries() {
		if v, ok := e.(interface{ Value() *model.PropertyValue }); ok {
			k := key{e.Type(), v.Value()}
			assert.False(t, seen[k], "duplicate %s", e.Type())
			seen[k] = true
		}
	}
}

func TestFixAllConverges(t *testing.T) {
	f := newFixture(t)
	f.gen.Value("tariffZones", model.AttributeValue).Holder = value.NewSingleString("Z9")
	f.gen.Value("sumInsured", model.ConfiguredValueSet).ValueSet = &valueset.StringLength{MaxLength: 4}
	f.gen.RemoveValue(f.gen.Value("minAge", model.AttributeValue))
	f.gen.AddValue(&model.PropertyValue{ID: "o", Property: "legacy", Type: model.AttributeValue})
	f.cmpt.AddLink(&model.Link{ID: "x", Association: "agent", Target: "home.Agent"})

	d := f.compute()
	assert.Equal(t, []Type{
		LinkWithoutAssociation,
		ValueHolderMismatch,
		MissingPropertyValue,
		ValueSetMismatch,
		ValueWithoutProperty,
	}, entryTypes(d))

	d.FixAll()
	assert.True(t, f.compute().IsEmpty(), "remaining: %v", entryTypes(f.compute()))
}

func TestComputeDoesNotModify(t *testing.T) {
	f := newFixture(t)
	pv := f.gen.Value("tariffZones", model.AttributeValue)
	pv.Holder = value.NewSingleString("Z1")
	f.gen.AddValue(&model.PropertyValue{ID: "o", Property: "legacy", Type: model.AttributeValue})

	before := len(f.gen.Values())
	f.compute()
	f.compute()
	assert.Len(t, f.gen.Values(), before)
	assert.True(t, value.NewSingleString("Z1").Equal(pv.Holder))
}

func TestTypeIsStable(t *testing.T) {
	f := newFixture(t)
	f.gen.AddValue(&model.PropertyValue{ID: "o", Property: "legacy", Type: model.AttributeValue})
	e := f.compute().Entries()[0]
	first := e.Type()
	e.Fix()
	assert.Equal(t, first, e.Type())
	assert.Equal(t, first, e.Type())
}

func TestGermanDescription(t *testing.T) {
	f := newFixture(t)
	f.gen.AddValue(&model.PropertyValue{ID: "o", Property: "legacy", Type: model.AttributeValue})
	e := f.compute().Entries()[0]
	assert.Contains(t, e.Description(NewPrinter(language.German)), "keine zugehörige Eigenschaft")
	assert.Contains(t, e.Description(NewPrinter(language.English)), "no corresponding property")
}

func TestCatalog(t *testing.T) {
	var langs []string
	for _, tag := range Catalog.Languages() {
		langs = append(langs, tag.String())
	}
	assert.ElementsMatch(t, []string{"en", "de"}, langs)
	assert.NotPanics(t, func() { newCatalog() })
	assert.PanicsWithValue(t, "delta: message catalog: bad key", func() { mustSet(errors.New("bad key")) })
}

func TestLocaleFromProject(t *testing.T) {
	f := newFixture(t)
	f.project.Locale = language.German
	f.product.Attributes[0].Multilingual = true
	f.compute().FixAll()

	holder := f.cmpt.Value("name", model.AttributeValue).Holder.(*value.SingleValueHolder)
	text, ok := holder.Value.(*value.InternationalStringValue).Text(language.German)
	assert.True(t, ok)
	assert.Equal(t, "Basic", text)
}

func TestTypeCatalog(t *testing.T) {
	all := Types()
	require.Len(t, all, int(numTypes))
	seen := make(map[string]bool)
	for _, typ := range all {
		name := typ.String()
		assert.False(t, seen[name], name)
		seen[name] = true

		parsed, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	assert.Equal(t, "VALUE_HOLDER_MISMATCH", ValueHolderMismatch.String())
	assert.Equal(t, KindRemoved, LinkWithoutAssociation.Kind())
	assert.Equal(t, KindAdded, MissingPropertyValue.Kind())
	assert.Equal(t, "Type(99)", Type(99).String())

	_, err := ParseType("NOPE")
	assert.Error(t, err)
	_, err = Type(99).MarshalText()
	assert.Error(t, err)
}
