package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/persistence"
)

func TestJPARequired(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, f.context(t, persistence.None).Generators(PolicyCmptImplClass))
	assert.Len(t, f.context(t, persistence.EclipseLink25).Generators(PolicyCmptImplClass), 1)

	ctx, err := NewContext(f.sp, &Config{Provider: persistence.EclipseLink25})
	require.NoError(t, err)
	assert.Empty(t, ctx.Generators(PolicyCmptImplClass), "jpa feature disabled")
}

func TestImplClass(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.EclipseLink25)

	got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.policy))
	require.NoError(t, err)
	assert.Equal(t, `@Entity
@Table(name = "POLICY")
@Inheritance(strategy = InheritanceType.SINGLE_TABLE)
@DiscriminatorColumn(name = "DTYPE", discriminatorType = DiscriminatorType.STRING, length = 30)
@DiscriminatorValue("POLICY")
`, got.Source)
	assert.Equal(t, []string{
		"javax.persistence.DiscriminatorColumn",
		"javax.persistence.DiscriminatorType",
		"javax.persistence.DiscriminatorValue",
		"javax.persistence.Entity",
		"javax.persistence.Inheritance",
		"javax.persistence.InheritanceType",
		"javax.persistence.Table",
	}, got.Imports)

	t.Run("subtype sharing the supertype table", func(t *testing.T) {
		got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.home))
		require.NoError(t, err)
		assert.Equal(t, "@Entity\n@Table(name = \"POLICY\")\n@DiscriminatorValue(\"HOME\")\n", got.Source)
	})
	t.Run("mapped superclass", func(t *testing.T) {
		f.coverage.Persistence.Type = model.PersistentTypeMappedSuperclass
		got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.coverage))
		require.NoError(t, err)
		assert.Equal(t, "@MappedSuperclass\n", got.Source)
	})
	t.Run("not persistent", func(t *testing.T) {
		got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.claim))
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
	t.Run("jakarta prefix", func(t *testing.T) {
		ctx := f.context(t, persistence.JakartaPersistence30)
		got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.home))
		require.NoError(t, err)
		assert.Contains(t, got.Imports, "jakarta.persistence.Table")
	})
}

func TestTableName(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "POLICY", TableName(f.policy, f.sp))
	assert.Equal(t, "POLICY", TableName(f.home, f.sp))
	assert.Equal(t, "", TableName(f.claim, f.sp))

	t.Run("walks several levels", func(t *testing.T) {
		villa := &model.PolicyCmptType{
			QName:       "home.Villa",
			Supertype:   "home.HomePolicy",
			Persistence: &model.PersistentTypeInfo{Enabled: true, UseTableDefinedInSupertype: true},
		}
		assert.Equal(t, "POLICY", TableName(villa, f.sp))
	})
	t.Run("missing supertype", func(t *testing.T) {
		orphan := &model.PolicyCmptType{
			QName:       "home.Orphan",
			Supertype:   "home.Missing",
			Persistence: &model.PersistentTypeInfo{Enabled: true, UseTableDefinedInSupertype: true},
		}
		assert.Equal(t, "", TableName(orphan, f.sp))
	})
	t.Run("cycle terminates", func(t *testing.T) {
		p := model.NewProject("cycle", f.project.Locale)
		a := &model.PolicyCmptType{QName: "c.A", Supertype: "c.B",
			Persistence: &model.PersistentTypeInfo{Enabled: true, UseTableDefinedInSupertype: true}}
		b := &model.PolicyCmptType{QName: "c.B", Supertype: "c.A",
			Persistence: &model.PersistentTypeInfo{Enabled: true, UseTableDefinedInSupertype: true}}
		require.NoError(t, p.AddPolicyCmptType(a))
		require.NoError(t, p.AddPolicyCmptType(b))
		assert.Equal(t, "", TableName(a, model.NewSearchPath(p)))
	})
	t.Run("no table emits no annotation", func(t *testing.T) {
		f.coverage.Persistence.TableName = ""
		ctx := f.context(t, persistence.GenericJPA20)
		got, err := ctx.Annotations(PolicyCmptImplClass, ctx.PolicyCmptClass(f.coverage))
		require.NoError(t, err)
		assert.Equal(t, "@Entity\n", got.Source)
	})
}

func TestAttributeFields(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.EclipseLink25)

	tests := []struct {
		name string
		want string
	}{
		{"premium", "@Column(name = \"PREMIUM\")\n"},
		{"effectiveFrom", "@Column(name = \"EFFECTIVE_FROM\")\n@Temporal(TemporalType.DATE)\n"},
		{"legacyCode", "@Transient\n"},
		{"zone", `@Column(name = "ZONE", nullable = false, length = 10)
@Converter(name="ZoneConverter", converterClass=com.acme.ZoneConverter.class)
@Convert("ZoneConverter")
@Index(name = "IDX_ZONE")
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctx.Annotations(PolicyCmptImplAttributeField, policyAttr(ctx, f.policy, tt.name))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Source)
		})
	}

	t.Run("derived attribute has no field", func(t *testing.T) {
		got, err := ctx.Annotations(PolicyCmptImplAttributeField, policyAttr(ctx, f.policy, "age"))
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
	t.Run("unsupported capabilities are skipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		ctx := f.context(t, persistence.GenericJPA20, WithLogger(zap.New(core)))
		got, err := ctx.Annotations(PolicyCmptImplAttributeField, policyAttr(ctx, f.policy, "zone"))
		require.NoError(t, err)
		assert.Equal(t, "@Column(name = \"ZONE\", nullable = false, length = 10)\n", got.Source)
		assert.Equal(t, 2, logs.FilterMessageSnippet("not supported by provider").Len())
	})
	t.Run("jpa converter", func(t *testing.T) {
		ctx := f.context(t, persistence.GenericJPA21)
		got, err := ctx.Annotations(PolicyCmptImplAttributeField, policyAttr(ctx, f.policy, "zone"))
		require.NoError(t, err)
		assert.Contains(t, got.Source, "@Convert(converter = ZoneConverter.class)\n")
		assert.NotContains(t, got.Source, "@Index")
		assert.Contains(t, got.Imports, "com.acme.ZoneConverter")
	})
}

func TestRelationship(t *testing.T) {
	f := newFixture(t)
	ctx := f.context(t, persistence.EclipseLink25)
	assert.Equal(t, persistence.OneToMany, Relationship(policyAssoc(ctx, f.policy, "coverage")))
	assert.Equal(t, persistence.ManyToOne, Relationship(policyAssoc(ctx, f.coverage, "policy")))

	f.policy.Associations[0].Max = 1
	assert.Equal(t, persistence.OneToOne, Relationship(policyAssoc(ctx, f.policy, "coverage")))
	assert.Equal(t, persistence.OneToOne, Relationship(policyAssoc(ctx, f.coverage, "policy")))

	plain := &model.PolicyAssociation{Name: "claims", Target: "home.Claim", Kind: model.Association, Max: model.CardinalityMany}
	f.policy.Associations = append(f.policy.Associations, plain)
	assert.Equal(t, persistence.OneToMany, Relationship(policyAssoc(ctx, f.policy, "claims")))
	plain.Max = 1
	assert.Equal(t, persistence.ManyToOne, Relationship(policyAssoc(ctx, f.policy, "claims")))
}

func TestAssociationFields(t *testing.T) {
	f := newFixture(t)

	t.Run("eclipselink orphan removal annotation", func(t *testing.T) {
		ctx := f.context(t, persistence.EclipseLink25)
		got, err := ctx.Annotations(PolicyCmptImplAssociationField, policyAssoc(ctx, f.policy, "coverage"))
		require.NoError(t, err)
		assert.Equal(t, `@OneToMany(targetEntity = Coverage.class, mappedBy = "policy", cascade = CascadeType.ALL, fetch = FetchType.LAZY)
@PrivateOwned
`, got.Source)
		assert.Contains(t, got.Imports, "org.eclipse.persistence.annotations.PrivateOwned")
	})
	t.Run("jpa orphan removal attribute", func(t *testing.T) {
		ctx := f.context(t, persistence.JakartaPersistence30)
		got, err := ctx.Annotations(PolicyCmptImplAssociationField, policyAssoc(ctx, f.policy, "coverage"))
		require.NoError(t, err)
		assert.Equal(t, "@OneToMany(targetEntity = Coverage.class, mappedBy = \"policy\", cascade = CascadeType.ALL, fetch = FetchType.LAZY, orphanRemoval = true)\n", got.Source)
		assert.Contains(t, got.Imports, "jakarta.persistence.OneToMany")
	})
	t.Run("join column", func(t *testing.T) {
		ctx := f.context(t, persistence.GenericJPA20)
		got, err := ctx.Annotations(PolicyCmptImplAssociationField, policyAssoc(ctx, f.coverage, "policy"))
		require.NoError(t, err)
		assert.Equal(t, "@ManyToOne(targetEntity = Policy.class, fetch = FetchType.LAZY)\n@JoinColumn(name = \"POLICY_ID\", nullable = false)\n", got.Source)
	})
	t.Run("join table", func(t *testing.T) {
		f.policy.Associations = append(f.policy.Associations, &model.PolicyAssociation{
			Name:   "coPolicy",
			Target: "home.HomePolicy",
			Kind:   model.Association,
			Max:    model.CardinalityMany,
			Persistence: &model.PersistentAssociationInfo{
				JoinTableName:    "POLICY_LINK",
				SourceColumnName: "SOURCE_ID",
				TargetColumnName: "TARGET_ID",
				Fetch:            model.FetchEager,
			},
		})
		ctx := f.context(t, persistence.GenericJPA20)
		got, err := ctx.Annotations(PolicyCmptImplAssociationField, policyAssoc(ctx, f.policy, "coPolicy"))
		require.NoError(t, err)
		assert.Equal(t, `@OneToMany(targetEntity = HomePolicy.class, fetch = FetchType.EAGER)
@JoinTable(name = "POLICY_LINK", joinColumns = @JoinColumn(name = "SOURCE_ID"), inverseJoinColumns = @JoinColumn(name = "TARGET_ID"))
`, got.Source)
	})
	t.Run("target not persistent", func(t *testing.T) {
		f.policy.Associations = append(f.policy.Associations, &model.PolicyAssociation{
			Name: "claim", Target: "home.Claim", Kind: model.Association, Max: 1,
		})
		ctx := f.context(t, persistence.GenericJPA20)
		got, err := ctx.Annotations(PolicyCmptImplAssociationField, policyAssoc(ctx, f.policy, "claim"))
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}
