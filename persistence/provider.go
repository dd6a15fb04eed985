// Package persistence renders the annotations that differ between the
// supported JPA dialects.
//
// Every provider is a value of one strategy struct. Newer providers are
// derived from the Generic JPA 2.0 base by overriding single strategies,
// so no provider reimplements what it shares with the base. Capability
// flags tell callers which methods they may use; calling a method whose
// capability is missing returns a *faktorgen.UnsupportedCapabilityError.
package persistence

import (
	"fmt"
	"slices"

	"github.com/syssam/faktorgen"
	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
)

// ID identifies a persistence technology.
type ID string

// Supported persistence technologies.
const (
	None                 ID = "None"
	EclipseLink11        ID = "EclipseLink 1.1"
	EclipseLink25        ID = "EclipseLink 2.5"
	EclipseLink30        ID = "EclipseLink 3.0"
	GenericJPA20         ID = "Generic JPA 2.0"
	GenericJPA21         ID = "Generic JPA 2.1"
	JakartaPersistence22 ID = "Jakarta Persistence 2.2"
	JakartaPersistence30 ID = "Jakarta Persistence 3.0"
)

// Provider renders dialect dependent persistence annotations.
type Provider interface {
	ID() ID
	// PackagePrefix returns the package of the standard annotations,
	// javax.persistence or jakarta.persistence.
	PackagePrefix() string
	// QualifiedName returns the qualified name of a standard JPA class.
	QualifiedName(c Class) string

	IsSupportingConverters() bool
	IsSupportingOrphanRemoval() bool
	IsSupportingIndex() bool

	// ConverterAnnotations returns the annotations attaching the converter
	// configured in info. Requires IsSupportingConverters.
	ConverterAnnotations(info *model.PersistentAttributeInfo) (java.Fragment, error)
	// IndexAnnotations returns the annotations declaring the index configured
	// in info. Requires IsSupportingIndex.
	IndexAnnotations(info *model.PersistentAttributeInfo) (java.Fragment, error)
	// AddAnnotationOrphanRemoval writes the separate orphan removal
	// annotation, if the dialect uses one. Requires IsSupportingOrphanRemoval.
	AddAnnotationOrphanRemoval(b *java.Builder) error
	// RelationshipAnnotationAttributeOrphanRemoval returns the relationship
	// annotation attribute enabling orphan removal, or "" if the dialect uses
	// a separate annotation. Requires IsSupportingOrphanRemoval.
	RelationshipAnnotationAttributeOrphanRemoval() (string, error)
}

// Capability names used in errors.
const (
	CapabilityConverters    = "converters"
	CapabilityOrphanRemoval = "orphan removal"
	CapabilityIndex         = "index"
)

type capabilities struct {
	converters    bool
	orphanRemoval bool
	index         bool
}

type provider struct {
	id     ID
	prefix string
	caps   capabilities

	converter func(b *java.Builder, p *provider, converterClass string)
	index     func(b *java.Builder, indexName string)
	// orphanAnnotation is the qualified name of a separate orphan removal
	// annotation; orphanAttribute the relationship attribute. One is empty.
	orphanAnnotation string
	orphanAttribute  string
}

var _ Provider = (*provider)(nil)

func (p *provider) ID() ID { return p.id }
func (p *provider) PackagePrefix() string { return p.prefix }
func (p *provider) QualifiedName(c Class) string { return p.prefix + "." + string(c) }
func (p *provider) IsSupportingConverters() bool { return p.caps.converters }
func (p *provider) IsSupportingOrphanRemoval() bool { return p.caps.orphanRemoval }
func (p *provider) IsSupportingIndex() bool { return p.caps.index }

func (p *provider) unsupported(capability string) error {
	return faktorgen.NewUnsupportedCapabilityError(string(p.id), capability)
}

func (p *provider) ConverterAnnotations(info *model.PersistentAttributeInfo) (java.Fragment, error) {
	if !p.caps.converters {
		return java.Fragment{}, p.unsupported(CapabilityConverters)
	}
	if !info.HasConverter() {
		return java.Fragment{}, nil
	}
	b := java.NewBuilder()
	p.converter(b, p, info.ConverterClass)
	return b.Fragment(), nil
}

func (p *provider) IndexAnnotations(info *model.PersistentAttributeInfo) (java.Fragment, error) {
	if !p.caps.index {
		return java.Fragment{}, p.unsupported(CapabilityIndex)
	}
	if !info.HasIndex() {
		return java.Fragment{}, nil
	}
	b := java.NewBuilder()
	p.index(b, info.IndexName)
	return b.Fragment(), nil
}

func (p *provider) AddAnnotationOrphanRemoval(b *java.Builder) error {
	if !p.caps.orphanRemoval {
		return p.unsupported(CapabilityOrphanRemoval)
	}
	if p.orphanAnnotation != "" {
		b.AnnotationLn(p.orphanAnnotation)
	}
	return nil
}

func (p *provider) RelationshipAnnotationAttributeOrphanRemoval() (string, error) {
	if !p.caps.orphanRemoval {
		return "", p.unsupported(CapabilityOrphanRemoval)
	}
	return p.orphanAttribute, nil
}

// with returns a copy of p changed by fn.
func (p provider) with(fn func(*provider)) *provider {
	fn(&p)
	return &p
}

const eclipseLinkAnnotations = "org.eclipse.persistence.annotations"

func eclipseLinkConverter(b *java.Builder, _ *provider, converterClass string) {
	name := java.SimpleName(converterClass)
	b.AnnotationLn(eclipseLinkAnnotations+".Converter",
		fmt.Sprintf("name=%s, converterClass=%s.class", java.Quote(name), converterClass))
	b.AnnotationLn(eclipseLinkAnnotations+".Convert", java.Quote(name))
}

func jpaConverter(b *java.Builder, p *provider, converterClass string) {
	b.AnnotationLn(p.QualifiedName(Convert), "converter = "+b.ClassName(converterClass)+".class")
}

func eclipseLinkIndex(b *java.Builder, indexName string) {
	b.AnnotationLn(eclipseLinkAnnotations+".Index", "name = "+java.Quote(indexName))
}

var (
	genericJPA20 = &provider{
		id:              GenericJPA20,
		prefix:          "javax.persistence",
		caps:            capabilities{orphanRemoval: true},
		orphanAttribute: "orphanRemoval = true",
	}
	genericJPA21 = genericJPA20.with(func(p *provider) {
		p.id = GenericJPA21
		p.caps.converters = true
		p.converter = jpaConverter
	})
	jakarta22 = genericJPA21.with(func(p *provider) {
		p.id = JakartaPersistence22
	})
	jakarta30 = jakarta22.with(func(p *provider) {
		p.id = JakartaPersistence30
		p.prefix = "jakarta.persistence"
	})
	eclipseLink11 = genericJPA20.with(func(p *provider) {
		p.id = EclipseLink11
		p.caps.converters = true
		p.converter = eclipseLinkConverter
		p.orphanAnnotation = eclipseLinkAnnotations + ".PrivateOwned"
		p.orphanAttribute = ""
	})
	eclipseLink25 = eclipseLink11.with(func(p *provider) {
		p.id = EclipseLink25
		p.caps.index = true
		p.index = eclipseLinkIndex
	})
	eclipseLink30 = eclipseLink25.with(func(p *provider) {
		p.id = EclipseLink30
		p.prefix = "jakarta.persistence"
	})
)

var providers = map[ID]*provider{
	GenericJPA20:         genericJPA20,
	GenericJPA21:         genericJPA21,
	JakartaPersistence22: jakarta22,
	JakartaPersistence30: jakarta30,
	EclipseLink11:        eclipseLink11,
	EclipseLink25:        eclipseLink25,
	EclipseLink30:        eclipseLink30,
}

// New returns the provider with the given id. None returns a nil provider and
// no error; persistence annotations are then not generated.
func New(id ID) (Provider, error) {
	if id == None || id == "" {
		return nil, nil
	}
	p, ok := providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", faktorgen.ErrUnknownProvider, id)
	}
	return p, nil
}

// IDs returns the supported ids, None first.
func IDs() []ID {
	ids := make([]ID, 0, len(providers)+1)
	for id := range providers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return append([]ID{None}, ids...)
}
