package load

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

// newID returns the id of parts stored without one.
var newID = uuid.NewString

// Build returns the project described by s. References are not resolved;
// see Load. Values and links stored without an id get a new one. All
// problems found are reported together.
func (s *Snapshot) Build() (*model.Project, error) {
	b := &builder{}
	locale := language.English
	if s.Locale != "" {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			b.fail(s.Project, "locale", "invalid locale", err)
		} else {
			locale = tag
		}
	}
	p := model.NewProject(s.Project, locale)
	for _, t := range s.PolicyTypes {
		if err := p.AddPolicyCmptType(b.policyType(t)); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	for _, t := range s.ProductTypes {
		if err := p.AddProductCmptType(b.productType(t)); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	for _, c := range s.Components {
		if err := p.AddProductCmpt(b.component(c)); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	if err := faktorgen.NewAggregateError(b.errs...); err != nil {
		return nil, err
	}
	return p, nil
}

// builder converts snapshot parts and collects the problems found.
type builder struct {
	errs []error
}

func (b *builder) fail(object, part, message string, cause error) {
	b.errs = append(b.errs, faktorgen.NewModelError(object, part, message, cause))
}

// enum parses s with parse. The empty string yields the zero value.
func enum[T any](b *builder, object, part, s string, parse func(string) (T, bool)) T {
	var zero T
	if s == "" {
		return zero
	}
	v, ok := parse(s)
	if !ok {
		b.fail(object, part, fmt.Sprintf("unknown value %q", s), nil)
		return zero
	}
	return v
}

func (b *builder) policyType(t *PolicyType) *model.PolicyCmptType {
	pt := &model.PolicyCmptType{
		QName:                 t.Name,
		Supertype:             t.Supertype,
		Abstract:              t.Abstract,
		ConfigurableByProduct: t.ConfigurableByProduct,
		ProductCmptType:       t.ProductType,
		Description:           t.Description,
	}
	for _, a := range t.Attributes {
		pt.Attributes = append(pt.Attributes, &model.PolicyAttribute{
			Name:                        a.Name,
			Datatype:                    value.Datatype(a.Datatype),
			Kind:                        enum(b, t.Name, a.Name, a.Kind, model.ParseAttributeKind),
			ValueSetConfiguredByProduct: a.ValueSetConfiguredByProduct,
			ChangingOverTime:            a.ChangingOverTime,
			DefaultValue:                a.Default,
			ValueSet:                    b.valueSet(t.Name, a.Name, a.ValueSet),
			Persistence:                 b.attributePersistence(t.Name, a.Name, a.Persistence),
			Deprecation:                 deprecation(a.Deprecation),
			Description:                 a.Description,
		})
	}
	for _, a := range t.Associations {
		pt.Associations = append(pt.Associations, &model.PolicyAssociation{
			Name:                a.Name,
			TargetRolePlural:    a.Plural,
			Target:              a.Target,
			Kind:                enum(b, t.Name, a.Name, a.Kind, model.ParseAssociationKind),
			Min:                 a.Min,
			Max:                 int(a.Max),
			Inverse:             a.Inverse,
			MatchingAssociation: a.Matching,
			Persistence:         b.associationPersistence(t.Name, a.Name, a.Persistence),
			Deprecation:         deprecation(a.Deprecation),
		})
	}
	for _, r := range t.Rules {
		pt.Rules = append(pt.Rules, &model.ValidationRule{
			Name:                  r.Name,
			MessageCode:           r.MessageCode,
			ConfigurableByProduct: r.Configurable,
			ActivatedByDefault:    r.ActivatedByDefault,
			ChangingOverTime:      r.ChangingOverTime,
		})
	}
	if p := t.Persistence; p != nil {
		pt.Persistence = &model.PersistentTypeInfo{
			Enabled:                    p.Enabled,
			Type:                       enum(b, t.Name, "persistence", p.Type, model.ParsePersistentType),
			TableName:                  p.Table,
			InheritanceStrategy:        enum(b, t.Name, "persistence", p.Inheritance, model.ParseInheritanceStrategy),
			UseTableDefinedInSupertype: p.UseTableDefinedInSupertype,
			DefinesDiscriminatorColumn: p.DefinesDiscriminator,
			DiscriminatorColumnName:    p.DiscriminatorColumn,
			DiscriminatorColumnLength:  p.DiscriminatorLength,
			DiscriminatorDatatype:      enum(b, t.Name, "persistence", p.DiscriminatorType, model.ParseDiscriminatorDatatype),
			DiscriminatorValue:         p.DiscriminatorValue,
		}
	}
	return pt
}

func (b *builder) attributePersistence(object, part string, p *AttributePersistence) *model.PersistentAttributeInfo {
	if p == nil {
		return nil
	}
	return &model.PersistentAttributeInfo{
		Transient:        p.Transient,
		ColumnName:       p.Column,
		Nullable:         p.Nullable == nil || *p.Nullable,
		Unique:           p.Unique,
		Size:             p.Size,
		Precision:        p.Precision,
		Scale:            p.Scale,
		Temporal:         enum(b, object, part, p.Temporal, model.ParseTemporalMapping),
		ConverterClass:   p.Converter,
		IndexName:        p.Index,
		ColumnDefinition: p.ColumnDefinition,
	}
}

func (b *builder) associationPersistence(object, part string, p *AssociationPersistence) *model.PersistentAssociationInfo {
	if p == nil {
		return nil
	}
	info := &model.PersistentAssociationInfo{
		Transient:                p.Transient,
		JoinTableName:            p.JoinTable,
		SourceColumnName:         p.SourceColumn,
		TargetColumnName:         p.TargetColumn,
		JoinColumnName:           p.JoinColumn,
		JoinColumnNullable:       p.JoinColumnNullable == nil || *p.JoinColumnNullable,
		Fetch:                    enum(b, object, part, p.Fetch, parseFetch),
		OrphanRemoval:            p.OrphanRemoval,
		OwnerOfManyToMany:        p.OwnerOfManyToMany,
		ForeignKeyDefinedInOwner: p.ForeignKeyDefinedInOwner,
	}
	for _, c := range p.Cascade {
		if ct, ok := parseCascade(c); ok {
			info.Cascade = append(info.Cascade, ct)
		} else {
			b.fail(object, part, fmt.Sprintf("unknown cascade type %q", c), nil)
		}
	}
	return info
}

func parseFetch(s string) (model.FetchType, bool) {
	switch s {
	case model.FetchLazy.String():
		return model.FetchLazy, true
	case model.FetchEager.String():
		return model.FetchEager, true
	}
	return model.FetchLazy, false
}

func parseCascade(s string) (model.CascadeType, bool) {
	switch ct := model.CascadeType(strings.ToUpper(s)); ct {
	case model.CascadeAll, model.CascadePersist, model.CascadeMerge, model.CascadeRemove, model.CascadeRefresh:
		return ct, true
	}
	return "", false
}

func deprecation(d *Deprecation) *model.Deprecation {
	if d == nil {
		return nil
	}
	return &model.Deprecation{Since: d.Since, ForRemoval: d.ForRemoval, Documentation: d.Documentation}
}

func (b *builder) valueSet(object, part string, s *ValueSet) valueset.ValueSet {
	if s == nil {
		return nil
	}
	kind, err := valueset.ParseKind(s.Kind)
	if err != nil {
		b.fail(object, part, "invalid value set", err)
		return nil
	}
	switch kind {
	case valueset.KindEnum:
		return &valueset.Enum{Values: s.Values, Null: s.Null}
	case valueset.KindRange:
		return &valueset.Range{Lower: s.Lower, Upper: s.Upper, Step: s.Step, Null: s.Null}
	case valueset.KindStringLength:
		return &valueset.StringLength{MaxLength: s.MaxLength, Null: s.Null}
	default:
		return &valueset.Unrestricted{Null: s.Null}
	}
}

func (b *builder) productType(t *ProductType) *model.ProductCmptType {
	pt := &model.ProductCmptType{
		QName:            t.Name,
		Supertype:        t.Supertype,
		Abstract:         t.Abstract,
		Policy:           t.PolicyType,
		ChangingOverTime: t.ChangingOverTime,
		Description:      t.Description,
	}
	for _, a := range t.Attributes {
		pt.Attributes = append(pt.Attributes, &model.ProductAttribute{
			Name:             a.Name,
			Datatype:         value.Datatype(a.Datatype),
			MultiValue:       a.MultiValue,
			Multilingual:     a.Multilingual,
			Hidden:           a.Hidden,
			ChangingOverTime: a.ChangingOverTime,
			DefaultValue:     a.Default,
			ValueSet:         b.valueSet(t.Name, a.Name, a.ValueSet),
			Deprecation:      deprecation(a.Deprecation),
			Description:      a.Description,
		})
	}
	for _, a := range t.Associations {
		pt.Associations = append(pt.Associations, &model.ProductAssociation{
			Name:                a.Name,
			TargetRolePlural:    a.Plural,
			Target:              a.Target,
			Min:                 a.Min,
			Max:                 int(a.Max),
			ChangingOverTime:    a.ChangingOverTime,
			MatchingAssociation: a.Matching,
			Deprecation:         deprecation(a.Deprecation),
		})
	}
	for _, u := range t.TableUsages {
		pt.TableUsages = append(pt.TableUsages, &model.TableStructureUsage{
			RoleName:         u.Role,
			TableStructures:  u.Structures,
			Mandatory:        u.Mandatory,
			ChangingOverTime: u.ChangingOverTime,
		})
	}
	for _, m := range t.Methods {
		method := &model.Method{
			Name:             m.Name,
			Datatype:         m.Datatype,
			Formula:          m.Formula != "",
			FormulaName:      m.Formula,
			FormulaMandatory: m.FormulaMandatory,
			ChangingOverTime: m.ChangingOverTime,
			Deprecation:      deprecation(m.Deprecation),
		}
		for _, p := range m.Parameters {
			method.Parameters = append(method.Parameters, model.Parameter{Name: p.Name, Datatype: p.Datatype})
		}
		pt.Methods = append(pt.Methods, method)
	}
	return pt
}

func (b *builder) component(c *Component) *model.ProductCmpt {
	pc := model.NewProductCmpt(c.Name, c.Type)
	pc.RuntimeID = c.RuntimeID
	pc.Template = c.Template
	pc.IsTemplate = c.IsTemplate
	b.container(c.Name, &pc.Container, c.Values, c.Links)
	for _, g := range c.Generations {
		validFrom, err := time.Parse(time.DateOnly, g.ValidFrom)
		if err != nil {
			b.fail(c.Name, "generation "+g.ValidFrom, "invalid valid-from date", err)
			continue
		}
		n := pc.NumGenerations()
		gen := pc.AddGeneration(validFrom)
		if pc.NumGenerations() == n {
			b.fail(c.Name, "generation "+g.ValidFrom, "duplicate generation", nil)
			continue
		}
		b.container(gen.Owner(), &gen.Container, g.Values, g.Links)
	}
	return pc
}

func (b *builder) container(owner string, c *model.Container, values []*Value, links []*Link) {
	for _, v := range values {
		pv := &model.PropertyValue{
			ID:             idOrNew(v.ID),
			Property:       v.Property,
			Type:           enum(b, owner, v.Property, v.Type, model.ParsePropertyValueType),
			Holder:         v.Holder.holder(),
			ValueSet:       b.valueSet(owner, v.Property, v.ValueSet),
			TableContent:   v.TableContent,
			Expression:     v.Expression,
			Active:         v.Active,
			TemplateStatus: enum(b, owner, v.Property, v.TemplateStatus, model.ParseTemplateStatus),
		}
		if !c.AddValue(pv) {
			b.fail(owner, v.Property, fmt.Sprintf("duplicate %s value", pv.Type), nil)
		}
	}
	for _, l := range links {
		link := &model.Link{
			ID:                 idOrNew(l.ID),
			Association:        l.Association,
			Target:             l.Target,
			MinCardinality:     l.Min,
			MaxCardinality:     int(l.Max),
			DefaultCardinality: l.Default,
			TemplateStatus:     enum(b, owner, l.Association, l.TemplateStatus, model.ParseTemplateStatus),
		}
		if !c.AddLink(link) {
			b.fail(owner, l.Association, fmt.Sprintf("duplicate link to %s", l.Target), nil)
		}
	}
}

func idOrNew(id string) string {
	if id == "" {
		return newID()
	}
	return id
}

func (h *Holder) holder() value.Holder {
	if h == nil {
		return nil
	}
	if h.Multi || len(h.Values) > 0 {
		m := value.NewMulti()
		for _, item := range h.Values {
			m.Values = append(m.Values, value.NewSingle(item.get()))
		}
		return m
	}
	return value.NewSingle(h.Value.get())
}

func (h *HolderItem) get() value.Value {
	if h == nil {
		return nil
	}
	return h.Value
}
