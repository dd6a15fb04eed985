package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/faktorgen"
	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
)

func mustNew(t *testing.T, id ID) Provider {
	t.Helper()
	p, err := New(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		id                        ID
		prefix                    string
		converters, orphan, index bool
	}{
		{EclipseLink11, "javax.persistence", true, true, false},
		{EclipseLink25, "javax.persistence", true, true, true},
		{EclipseLink30, "jakarta.persistence", true, true, true},
		{GenericJPA20, "javax.persistence", false, true, false},
		{GenericJPA21, "javax.persistence", true, true, false},
		{JakartaPersistence22, "javax.persistence", true, true, false},
		{JakartaPersistence30, "jakarta.persistence", true, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			p := mustNew(t, tt.id)
			assert.Equal(t, tt.id, p.ID())
			assert.Equal(t, tt.prefix, p.PackagePrefix())
			assert.Equal(t, tt.prefix+".Entity", p.QualifiedName(Entity))
			assert.Equal(t, tt.converters, p.IsSupportingConverters())
			assert.Equal(t, tt.orphan, p.IsSupportingOrphanRemoval())
			assert.Equal(t, tt.index, p.IsSupportingIndex())
		})
	}
}

func TestNew(t *testing.T) {
	p, err := New(None)
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = New("Hibernate 6")
	assert.ErrorIs(t, err, faktorgen.ErrUnknownProvider)

	ids := IDs()
	assert.Len(t, ids, 8)
	assert.Equal(t, None, ids[0])
}

func TestEclipseLinkConverter(t *testing.T) {
	p := mustNew(t, EclipseLink11)
	f, err := p.ConverterAnnotations(&model.PersistentAttributeInfo{ConverterClass: "com.acme.FooConverter"})
	require.NoError(t, err)
	assert.Contains(t, f.Source, `@Converter(name="FooConverter", converterClass=com.acme.FooConverter.class)`)
	assert.Contains(t, f.Source, `@Convert("FooConverter")`)
	assert.Equal(t, []string{
		"org.eclipse.persistence.annotations.Convert",
		"org.eclipse.persistence.annotations.Converter",
	}, f.Imports)
}

func TestJPAConverter(t *testing.T) {
	for _, id := range []ID{GenericJPA21, JakartaPersistence30} {
		t.Run(string(id), func(t *testing.T) {
			p := mustNew(t, id)
			f, err := p.ConverterAnnotations(&model.PersistentAttributeInfo{ConverterClass: "com.acme.FooConverter"})
			require.NoError(t, err)
			assert.Equal(t, "@Convert(converter = FooConverter.class)\n", f.Source)
			assert.Contains(t, f.Imports, p.QualifiedName(Convert))
			assert.Contains(t, f.Imports, "com.acme.FooConverter")
		})
	}
}

func TestNoConverterConfigured(t *testing.T) {
	f, err := mustNew(t, EclipseLink25).ConverterAnnotations(&model.PersistentAttributeInfo{})
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestUnsupportedCapabilities(t *testing.T) {
	t.Run("index on Generic JPA 2.1", func(t *testing.T) {
		p := mustNew(t, GenericJPA21)
		assert.False(t, p.IsSupportingIndex())
		_, err := p.IndexAnnotations(&model.PersistentAttributeInfo{IndexName: "IDX"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, faktorgen.ErrUnsupportedOperation))

		var capErr *faktorgen.UnsupportedCapabilityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "Generic JPA 2.1", capErr.Provider)
		assert.Equal(t, CapabilityIndex, capErr.Capability)
	})
	t.Run("converters on Generic JPA 2.0", func(t *testing.T) {
		_, err := mustNew(t, GenericJPA20).ConverterAnnotations(&model.PersistentAttributeInfo{})
		assert.True(t, faktorgen.IsUnsupportedCapability(err))
	})
	t.Run("orphan removal without capability", func(t *testing.T) {
		p := genericJPA20.with(func(p *provider) { p.caps.orphanRemoval = false })
		assert.Error(t, p.AddAnnotationOrphanRemoval(java.NewBuilder()))
		_, err := p.RelationshipAnnotationAttributeOrphanRemoval()
		assert.ErrorIs(t, err, faktorgen.ErrUnsupportedOperation)
	})
}

func TestIndex(t *testing.T) {
	p := mustNew(t, EclipseLink30)
	f, err := p.IndexAnnotations(&model.PersistentAttributeInfo{IndexName: "IDX_ZONE"})
	require.NoError(t, err)
	assert.Equal(t, "@Index(name = \"IDX_ZONE\")\n", f.Source)
	assert.Equal(t, []string{"org.eclipse.persistence.annotations.Index"}, f.Imports)
}

func TestOrphanRemoval(t *testing.T) {
	t.Run("EclipseLink annotation", func(t *testing.T) {
		p := mustNew(t, EclipseLink25)
		b := java.NewBuilder()
		require.NoError(t, p.AddAnnotationOrphanRemoval(b))
		assert.Equal(t, "@PrivateOwned\n", b.Fragment().Source)
		attr, err := p.RelationshipAnnotationAttributeOrphanRemoval()
		require.NoError(t, err)
		assert.Empty(t, attr)
	})
	t.Run("JPA attribute", func(t *testing.T) {
		p := mustNew(t, JakartaPersistence22)
		b := java.NewBuilder()
		require.NoError(t, p.AddAnnotationOrphanRemoval(b))
		assert.Zero(t, b.Len())
		attr, err := p.RelationshipAnnotationAttributeOrphanRemoval()
		require.NoError(t, err)
		assert.Equal(t, "orphanRemoval = true", attr)
	})
}

func TestDerivedProvidersDoNotShareState(t *testing.T) {
	assert.NotSame(t, genericJPA20, genericJPA21)
	assert.False(t, genericJPA20.caps.converters)
	assert.Equal(t, "javax.persistence", eclipseLink25.prefix)
}
