package gen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/faktorgen/persistence"
)

func TestBuild(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.EclipseLink25)

	classes, err := NewBuilder(ctx).Build(f.project)
	require.NoError(t, err)

	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.QualifiedName()
	}
	assert.Equal(t, []string{
		"org.acme.home.Claim",
		"org.acme.home.Coverage",
		"org.acme.home.HomePolicy",
		"org.acme.home.Policy",
		"org.acme.home.CoverageType",
		"org.acme.home.Product",
		"org.acme.home.ProductGen",
	}, names)
}

func TestPolicyClass(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.EclipseLink25)
	b := NewBuilder(ctx)

	c, err := b.PolicyClass(ctx.PolicyCmptClass(f.policy))
	require.NoError(t, err)
	assert.Equal(t, "home.Policy", c.Element)
	assert.Equal(t, "org.acme.home", c.Package)
	assert.Equal(t, "Policy", c.Name)
	assert.Empty(t, c.Extends)
	assert.Equal(t, "@IpsPolicyCmptType(name = \"home.Policy\")", c.Annotations[0])
	assert.Contains(t, c.Annotations, "@Entity")
	assert.Contains(t, c.Annotations, "@Table(name = \"POLICY\")")

	premium := c.Member("getPremium()")
	require.NotNil(t, premium)
	assert.Equal(t, "public Money getPremium()", premium.Declaration)
	assert.Equal(t, []string{"return premium;"}, premium.Body)

	field := c.Member("private Money premium;")
	require.NotNil(t, field)
	assert.Equal(t, []string{"@Column(name = \"PREMIUM\")"}, field.Annotations)

	age := c.Member("getAge()")
	require.NotNil(t, age)
	assert.Nil(t, c.Member("private Integer age;"), "derived attributes have no field")

	legacy := c.Member("getLegacyCode()")
	require.NotNil(t, legacy)
	assert.Equal(t, "@Deprecated(since = \"2.0\", forRemoval = true)", legacy.Annotations[len(legacy.Annotations)-1])

	coverages := c.Member("coverages = new ArrayList<>();")
	require.NotNil(t, coverages)
	assert.Equal(t, "private List<Coverage> coverages = new ArrayList<>();", coverages.Declaration)
	assert.Contains(t, coverages.Annotations, "@PrivateOwned")
	require.NotNil(t, c.Member("public List<Coverage> getCoverages()"))

	assert.Contains(t, c.Imports, "org.faktorips.values.Money")
	assert.Contains(t, c.Imports, "java.util.List")
	assert.Contains(t, c.Imports, "java.util.ArrayList")
	assert.Contains(t, c.Imports, "javax.persistence.Entity")
	assert.NotContains(t, c.Imports, "org.acme.home.Coverage", "same package")
	assert.NotContains(t, c.Imports, "java.lang.String")

	t.Run("subtype extends supertype", func(t *testing.T) {
		c, err := b.PolicyClass(ctx.PolicyCmptClass(f.home))
		require.NoError(t, err)
		assert.Equal(t, "Policy", c.Extends)
	})
}

func TestProductClasses(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.None)

	classes, err := NewBuilder(ctx).ProductClasses(ctx.ProductCmptClass(f.product))
	require.NoError(t, err)
	require.Len(t, classes, 2)
	product, gen := classes[0], classes[1]

	assert.Equal(t, "Product", product.Name)
	assert.Equal(t, "ProductGen", gen.Name)
	assert.Empty(t, gen.Annotations)

	require.NotNil(t, product.Member("public String getName()"))
	require.NotNil(t, product.Member("public List<CoverageType> getCoverageTypes()"))
	assert.Nil(t, product.Member("getTariffZones()"))

	require.NotNil(t, gen.Member("public List<String> getTariffZones()"))
	require.NotNil(t, gen.Member("public RateTable getRates()"))
	premium := gen.Member("public Money computePremium(Integer age)")
	require.NotNil(t, premium)
	assert.Equal(t, []string{"@IpsFormula(name = \"premium\")"}, premium.Annotations)
	assert.Equal(t, []string{`throw new UnsupportedOperationException("premium is computed at runtime");`}, premium.Body)

	t.Run("static type has one class", func(t *testing.T) {
		classes, err := NewBuilder(ctx).ProductClasses(ctx.ProductCmptClass(f.covType))
		require.NoError(t, err)
		assert.Len(t, classes, 1)
	})
}

func TestDocumentation(t *testing.T) {
	f := newFixture(t)
	entries := NewBuilder(f.context(t, persistence.None)).Documentation(f.project)
	assert.Equal(t, []BundleEntry{
		{Key: "home.Policy-description", Value: "A home insurance policy"},
		{Key: "home.Policy-attribute-zone-description", Value: "Tariff zone = risk class"},
	}, entries)
}

func TestJavaClassFileName(t *testing.T) {
	c := &JavaClass{Package: "org.acme.home", Name: "Policy"}
	assert.Equal(t, "org/acme/home/Policy.java", filepath.ToSlash(c.FileName()))
	assert.Equal(t, "org.acme.home.Policy", c.QualifiedName())
	assert.Equal(t, "Policy", (&JavaClass{Name: "Policy"}).QualifiedName())
}
