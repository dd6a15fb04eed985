package gen

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/persistence"
)

// jpaFactory creates the generators of the persistence annotations. They are
// written when a provider is active and the JPA feature is enabled.
type jpaFactory struct{}

func (jpaFactory) IsRequiredFor(c *Context) bool {
	return c.provider != nil && c.config.GeneratesJPA()
}

func (jpaFactory) CreateAnnotationGenerators(t ElementType) []AnnotationGenerator {
	switch t {
	case PolicyCmptImplClass:
		return []AnnotationGenerator{For((*XPolicyCmptClass).IsPersistent, compose(
			entityAnnotation,
			tableAnnotation,
			inheritanceAnnotations,
			discriminatorValueAnnotation,
		))}
	case PolicyCmptImplAttributeField:
		return []AnnotationGenerator{For(isPersistentAttribute, attributeFieldAnnotations)}
	case PolicyCmptImplAssociationField:
		return []AnnotationGenerator{For(isPersistentAssociation, associationFieldAnnotations)}
	}
	return nil
}

// jpa returns a builder and the provider for generating into the class of n.
func jpa(n Node) (*java.Builder, persistence.Provider) {
	return java.NewBuilder(), n.Context().provider
}

func entityAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	b, p := jpa(n)
	switch n.Type.Persistence.Type {
	case model.PersistentTypeEntity:
		b.AnnotationLn(p.QualifiedName(persistence.Entity))
	case model.PersistentTypeMappedSuperclass:
		b.AnnotationLn(p.QualifiedName(persistence.MappedSuperclass))
	}
	return b.Fragment(), nil
}

func tableAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	if n.Type.Persistence.Type != model.PersistentTypeEntity {
		return java.Fragment{}, nil
	}
	name := TableName(n.Type, n.Context().resolver)
	if name == "" {
		return java.Fragment{}, nil
	}
	b, p := jpa(n)
	b.AnnotationLn(p.QualifiedName(persistence.Table), "name = "+java.Quote(name))
	return b.Fragment(), nil
}

// TableName returns the table t is mapped to. A type reusing the table of
// its supertype takes the table of the nearest supertype that declares its
// own. The result is empty if t is not persistent, no such supertype exists
// or the hierarchy contains a cycle.
func TableName(t *model.PolicyCmptType, r model.Resolver) string {
	visited := make(map[*model.PolicyCmptType]bool)
	for t != nil && !visited[t] {
		visited[t] = true
		info := t.Persistence
		if info == nil {
			return ""
		}
		if !info.UseTableDefinedInSupertype {
			return info.TableName
		}
		if t.Supertype == "" {
			return ""
		}
		t = r.FindPolicyCmptType(t.Supertype)
	}
	return ""
}

// inheritanceAnnotations are written only by the type defining the
// discriminator column; its subtypes inherit the strategy.
func inheritanceAnnotations(n *XPolicyCmptClass) (java.Fragment, error) {
	info := n.Type.Persistence
	if info.Type != model.PersistentTypeEntity || !info.DefinesDiscriminatorColumn {
		return java.Fragment{}, nil
	}
	b, p := jpa(n)
	b.AnnotationLn(p.QualifiedName(persistence.Inheritance),
		"strategy = "+b.ClassName(p.QualifiedName(persistence.InheritanceType))+"."+info.InheritanceStrategy.String())
	if info.DiscriminatorDatatype == model.DiscriminatorVoid {
		return b.Fragment(), nil
	}
	params := []string{
		"name = " + java.Quote(info.DiscriminatorColumnName),
		"discriminatorType = " + b.ClassName(p.QualifiedName(persistence.DiscriminatorType)) + "." + info.DiscriminatorDatatype.String(),
	}
	if info.DiscriminatorColumnLength > 0 {
		params = append(params, "length = "+strconv.Itoa(info.DiscriminatorColumnLength))
	}
	b.AnnotationLn(p.QualifiedName(persistence.DiscriminatorColumn), params...)
	return b.Fragment(), nil
}

func discriminatorValueAnnotation(n *XPolicyCmptClass) (java.Fragment, error) {
	info := n.Type.Persistence
	if info.Type != model.PersistentTypeEntity || info.DiscriminatorValue == "" {
		return java.Fragment{}, nil
	}
	b, p := jpa(n)
	b.AnnotationLn(p.QualifiedName(persistence.DiscriminatorValue), java.Quote(info.DiscriminatorValue))
	return b.Fragment(), nil
}

func isPersistentAttribute(n *XPolicyAttribute) bool {
	return n.Owner.IsPersistent() && n.HasField()
}

func attributeFieldAnnotations(n *XPolicyAttribute) (java.Fragment, error) {
	b, p := jpa(n)
	info := n.Attribute.Persistence
	if info != nil && info.Transient {
		b.AnnotationLn(p.QualifiedName(persistence.Transient))
		return b.Fragment(), nil
	}
	b.AnnotationLn(p.QualifiedName(persistence.Column), columnParams(n.Attribute)...)
	if n.Attribute.Datatype.IsTemporal() {
		temporal := model.TemporalDateOnly
		if info != nil {
			temporal = info.Temporal
		}
		b.AnnotationLn(p.QualifiedName(persistence.Temporal),
			b.ClassName(p.QualifiedName(persistence.TemporalType))+"."+temporal.String())
	}
	log := n.Context().log.With(zap.String("type", n.Owner.Name()), zap.String("attribute", n.Name()))
	if info.HasConverter() {
		if p.IsSupportingConverters() {
			f, err := p.ConverterAnnotations(info)
			if err != nil {
				return java.Fragment{}, err
			}
			b.Merge(f)
		} else {
			log.Warn("converter ignored, not supported by provider", zap.String("provider", string(p.ID())))
		}
	}
	if info.HasIndex() {
		if p.IsSupportingIndex() {
			f, err := p.IndexAnnotations(info)
			if err != nil {
				return java.Fragment{}, err
			}
			b.Merge(f)
		} else {
			log.Warn("index ignored, not supported by provider", zap.String("provider", string(p.ID())))
		}
	}
	return b.Fragment(), nil
}

func columnParams(a *model.PolicyAttribute) []string {
	info := a.Persistence
	if info == nil {
		return nil
	}
	var params []string
	if info.ColumnName != "" {
		params = append(params, "name = "+java.Quote(info.ColumnName))
	}
	if !info.Nullable {
		params = append(params, "nullable = false")
	}
	if info.Unique {
		params = append(params, "unique = true")
	}
	if info.Size > 0 {
		params = append(params, "length = "+strconv.Itoa(info.Size))
	}
	if info.Precision > 0 {
		params = append(params, "precision = "+strconv.Itoa(info.Precision))
	}
	if info.Scale > 0 {
		params = append(params, "scale = "+strconv.Itoa(info.Scale))
	}
	if info.ColumnDefinition != "" {
		params = append(params, "columnDefinition = "+java.Quote(info.ColumnDefinition))
	}
	return params
}

func isPersistentAssociation(n *XPolicyAssociation) bool {
	if !n.Owner.IsPersistent() {
		return false
	}
	target := n.Target()
	return target != nil && target.IsPersistent()
}

// Relationship returns the JPA relationship class mapping the association
// of n, derived from its kind, its cardinality and that of its inverse.
func Relationship(n *XPolicyAssociation) persistence.Class {
	a := n.Association
	inverseToMany := false
	if inv := n.Inverse(); inv != nil {
		inverseToMany = inv.IsToMany()
	}
	switch a.Kind {
	case model.CompositionMasterToDetail:
		if a.IsToMany() {
			return persistence.OneToMany
		}
		return persistence.OneToOne
	case model.CompositionDetailToMaster:
		if inverseToMany {
			return persistence.ManyToOne
		}
		return persistence.OneToOne
	}
	switch {
	case a.IsToMany() && inverseToMany:
		return persistence.ManyToMany
	case a.IsToMany():
		return persistence.OneToMany
	case inverseToMany || n.Inverse() == nil:
		return persistence.ManyToOne
	default:
		return persistence.OneToOne
	}
}

func associationFieldAnnotations(n *XPolicyAssociation) (java.Fragment, error) {
	b, p := jpa(n)
	a := n.Association
	info := a.Persistence
	if info == nil {
		info = &model.PersistentAssociationInfo{}
	}
	if info.Transient {
		b.AnnotationLn(p.QualifiedName(persistence.Transient))
		return b.Fragment(), nil
	}
	rel := Relationship(n)
	params := []string{"targetEntity = " + b.ClassName(n.Target().ClassName()) + ".class"}
	if mappedBy := mappedBy(n, rel, info); mappedBy != "" {
		params = append(params, "mappedBy = "+java.Quote(mappedBy))
	}
	if len(info.Cascade) > 0 {
		params = append(params, "cascade = "+cascade(b, p, info.Cascade))
	}
	params = append(params, "fetch = "+b.ClassName(p.QualifiedName(persistence.FetchType))+"."+info.Fetch.String())

	orphanRemoval := info.OrphanRemoval && (rel == persistence.OneToMany || rel == persistence.OneToOne)
	if orphanRemoval && !p.IsSupportingOrphanRemoval() {
		n.Context().log.Warn("orphan removal ignored, not supported by provider",
			zap.String("association", n.Owner.Name()+"."+n.Name()), zap.String("provider", string(p.ID())))
		orphanRemoval = false
	}
	if orphanRemoval {
		attr, err := p.RelationshipAnnotationAttributeOrphanRemoval()
		if err != nil {
			return java.Fragment{}, err
		}
		if attr != "" {
			params = append(params, attr)
		}
	}
	b.AnnotationLn(p.QualifiedName(rel), params...)
	if orphanRemoval {
		if err := p.AddAnnotationOrphanRemoval(b); err != nil {
			return java.Fragment{}, err
		}
	}

	switch {
	case info.HasJoinTable() && (rel == persistence.ManyToMany || rel == persistence.OneToMany) && mappedBy(n, rel, info) == "":
		joinColumn := b.ClassName(p.QualifiedName(persistence.JoinColumn))
		b.AnnotationLn(p.QualifiedName(persistence.JoinTable),
			"name = "+java.Quote(info.JoinTableName),
			"joinColumns = @"+joinColumn+"(name = "+java.Quote(info.SourceColumnName)+")",
			"inverseJoinColumns = @"+joinColumn+"(name = "+java.Quote(info.TargetColumnName)+")")
	case info.JoinColumnName != "" && (rel == persistence.ManyToOne || rel == persistence.OneToOne):
		joinParams := []string{"name = " + java.Quote(info.JoinColumnName)}
		if !info.JoinColumnNullable {
			joinParams = append(joinParams, "nullable = false")
		}
		b.AnnotationLn(p.QualifiedName(persistence.JoinColumn), joinParams...)
	}
	return b.Fragment(), nil
}

// mappedBy returns the inverse attribute owning the relationship, or "" if
// this side owns it.
func mappedBy(n *XPolicyAssociation, rel persistence.Class, info *model.PersistentAssociationInfo) string {
	inverse := n.Association.Inverse
	if inverse == "" {
		return ""
	}
	switch rel {
	case persistence.OneToMany:
		return inverse
	case persistence.ManyToMany:
		if !info.OwnerOfManyToMany {
			return inverse
		}
	case persistence.OneToOne:
		if n.Association.Kind == model.CompositionMasterToDetail && !info.ForeignKeyDefinedInOwner {
			return inverse
		}
	}
	return ""
}

func cascade(b *java.Builder, p persistence.Provider, types []model.CascadeType) string {
	class := b.ClassName(p.QualifiedName(persistence.CascadeType))
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = class + "." + string(t)
	}
	if len(values) == 1 {
		return values[0]
	}
	return "{" + strings.Join(values, ", ") + "}"
}
