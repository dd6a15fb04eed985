package load

import (
	"time"

	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
	"github.com/syssam/faktorgen/model/valueset"
)

// NewSnapshot returns the snapshot of p. References to other projects are
// not recorded; callers keep the file names they were loaded from.
func NewSnapshot(p *model.Project) *Snapshot {
	s := &Snapshot{Project: p.Name, Locale: p.Locale.String()}
	for _, t := range p.PolicyCmptTypes() {
		s.PolicyTypes = append(s.PolicyTypes, encodePolicyType(t))
	}
	for _, t := range p.ProductCmptTypes() {
		s.ProductTypes = append(s.ProductTypes, encodeProductType(t))
	}
	for _, c := range p.ProductCmpts() {
		s.Components = append(s.Components, encodeComponent(c))
	}
	return s
}

func encodePolicyType(t *model.PolicyCmptType) *PolicyType {
	pt := &PolicyType{
		Name:                  t.QName,
		Supertype:             t.Supertype,
		Abstract:              t.Abstract,
		ConfigurableByProduct: t.ConfigurableByProduct,
		ProductType:           t.ProductCmptType,
		Description:           t.Description,
	}
	for _, a := range t.Attributes {
		attr := &PolicyAttribute{
			Name:                        a.Name,
			Datatype:                    string(a.Datatype),
			Kind:                        a.Kind.String(),
			ValueSetConfiguredByProduct: a.ValueSetConfiguredByProduct,
			ChangingOverTime:            a.ChangingOverTime,
			Default:                     a.DefaultValue,
			ValueSet:                    encodeValueSet(a.ValueSet),
			Deprecation:                 encodeDeprecation(a.Deprecation),
			Description:                 a.Description,
		}
		if p := a.Persistence; p != nil {
			attr.Persistence = &AttributePersistence{
				Transient:        p.Transient,
				Column:           p.ColumnName,
				Nullable:         notNull(p.Nullable),
				Unique:           p.Unique,
				Size:             p.Size,
				Precision:        p.Precision,
				Scale:            p.Scale,
				Temporal:         p.Temporal.String(),
				Converter:        p.ConverterClass,
				Index:            p.IndexName,
				ColumnDefinition: p.ColumnDefinition,
			}
		}
		pt.Attributes = append(pt.Attributes, attr)
	}
	for _, a := range t.Associations {
		assoc := &PolicyAssociation{
			Name:        a.Name,
			Plural:      a.TargetRolePlural,
			Target:      a.Target,
			Kind:        a.Kind.String(),
			Min:         a.Min,
			Max:         Cardinality(a.Max),
			Inverse:     a.Inverse,
			Matching:    a.MatchingAssociation,
			Deprecation: encodeDeprecation(a.Deprecation),
		}
		if p := a.Persistence; p != nil {
			assoc.Persistence = &AssociationPersistence{
				Transient:                p.Transient,
				JoinTable:                p.JoinTableName,
				SourceColumn:             p.SourceColumnName,
				TargetColumn:             p.TargetColumnName,
				JoinColumn:               p.JoinColumnName,
				JoinColumnNullable:       notNull(p.JoinColumnNullable),
				Fetch:                    p.Fetch.String(),
				OrphanRemoval:            p.OrphanRemoval,
				OwnerOfManyToMany:        p.OwnerOfManyToMany,
				ForeignKeyDefinedInOwner: p.ForeignKeyDefinedInOwner,
			}
			for _, c := range p.Cascade {
				assoc.Persistence.Cascade = append(assoc.Persistence.Cascade, string(c))
			}
		}
		pt.Associations = append(pt.Associations, assoc)
	}
	for _, r := range t.Rules {
		pt.Rules = append(pt.Rules, &Rule{
			Name:               r.Name,
			MessageCode:        r.MessageCode,
			Configurable:       r.ConfigurableByProduct,
			ActivatedByDefault: r.ActivatedByDefault,
			ChangingOverTime:   r.ChangingOverTime,
		})
	}
	if p := t.Persistence; p != nil {
		pt.Persistence = &TypePersistence{
			Enabled:                    p.Enabled,
			Type:                       p.Type.String(),
			Table:                      p.TableName,
			Inheritance:                p.InheritanceStrategy.String(),
			UseTableDefinedInSupertype: p.UseTableDefinedInSupertype,
			DefinesDiscriminator:       p.DefinesDiscriminatorColumn,
			DiscriminatorColumn:        p.DiscriminatorColumnName,
			DiscriminatorLength:        p.DiscriminatorColumnLength,
			DiscriminatorType:          p.DiscriminatorDatatype.String(),
			DiscriminatorValue:         p.DiscriminatorValue,
		}
	}
	return pt
}

func encodeProductType(t *model.ProductCmptType) *ProductType {
	pt := &ProductType{
		Name:             t.QName,
		Supertype:        t.Supertype,
		Abstract:         t.Abstract,
		PolicyType:       t.Policy,
		ChangingOverTime: t.ChangingOverTime,
		Description:      t.Description,
	}
	for _, a := range t.Attributes {
		pt.Attributes = append(pt.Attributes, &ProductAttribute{
			Name:             a.Name,
			Datatype:         string(a.Datatype),
			MultiValue:       a.MultiValue,
			Multilingual:     a.Multilingual,
			Hidden:           a.Hidden,
			ChangingOverTime: a.ChangingOverTime,
			Default:          a.DefaultValue,
			ValueSet:         encodeValueSet(a.ValueSet),
			Deprecation:      encodeDeprecation(a.Deprecation),
			Description:      a.Description,
		})
	}
	for _, a := range t.Associations {
		pt.Associations = append(pt.Associations, &ProductAssociation{
			Name:             a.Name,
			Plural:           a.TargetRolePlural,
			Target:           a.Target,
			Min:              a.Min,
			Max:              Cardinality(a.Max),
			ChangingOverTime: a.ChangingOverTime,
			Matching:         a.MatchingAssociation,
			Deprecation:      encodeDeprecation(a.Deprecation),
		})
	}
	for _, u := range t.TableUsages {
		pt.TableUsages = append(pt.TableUsages, &TableUsage{
			Role:             u.RoleName,
			Structures:       u.TableStructures,
			Mandatory:        u.Mandatory,
			ChangingOverTime: u.ChangingOverTime,
		})
	}
	for _, m := range t.Methods {
		method := &Method{
			Name:             m.Name,
			Datatype:         m.Datatype,
			FormulaMandatory: m.FormulaMandatory,
			ChangingOverTime: m.ChangingOverTime,
			Deprecation:      encodeDeprecation(m.Deprecation),
		}
		if m.Formula {
			method.Formula = m.FormulaName
		}
		for _, p := range m.Parameters {
			method.Parameters = append(method.Parameters, &Parameter{Name: p.Name, Datatype: p.Datatype})
		}
		pt.Methods = append(pt.Methods, method)
	}
	return pt
}

func encodeDeprecation(d *model.Deprecation) *Deprecation {
	if d == nil {
		return nil
	}
	return &Deprecation{Since: d.Since, ForRemoval: d.ForRemoval, Documentation: d.Documentation}
}

func encodeValueSet(s valueset.ValueSet) *ValueSet {
	switch s := s.(type) {
	case *valueset.Enum:
		return &ValueSet{Kind: s.Kind().String(), Values: s.Values, Null: s.Null}
	case *valueset.Range:
		return &ValueSet{Kind: s.Kind().String(), Lower: s.Lower, Upper: s.Upper, Step: s.Step, Null: s.Null}
	case *valueset.StringLength:
		return &ValueSet{Kind: s.Kind().String(), MaxLength: s.MaxLength, Null: s.Null}
	case *valueset.Unrestricted:
		return &ValueSet{Kind: s.Kind().String(), Null: s.Null}
	default:
		return nil
	}
}

func encodeComponent(c *model.ProductCmpt) *Component {
	comp := &Component{
		Name:       c.QName,
		Type:       c.Type,
		RuntimeID:  c.RuntimeID,
		Template:   c.Template,
		IsTemplate: c.IsTemplate,
		Values:     encodeValues(&c.Container),
		Links:      encodeLinks(&c.Container),
	}
	for _, g := range c.Generations() {
		comp.Generations = append(comp.Generations, &Generation{
			ValidFrom: g.ValidFrom.Format(time.DateOnly),
			Values:    encodeValues(&g.Container),
			Links:     encodeLinks(&g.Container),
		})
	}
	return comp
}

func encodeValues(c *model.Container) []*Value {
	var values []*Value
	for _, v := range c.Values() {
		ev := &Value{
			ID:           v.ID,
			Property:     v.Property,
			Type:         v.Type.String(),
			Holder:       encodeHolder(v.Holder),
			ValueSet:     encodeValueSet(v.ValueSet),
			TableContent: v.TableContent,
			Expression:   v.Expression,
			Active:       v.Active,
		}
		if v.TemplateStatus != model.TemplateDefined {
			ev.TemplateStatus = v.TemplateStatus.String()
		}
		values = append(values, ev)
	}
	return values
}

func encodeLinks(c *model.Container) []*Link {
	var links []*Link
	for _, l := range c.Links() {
		el := &Link{
			ID:          l.ID,
			Association: l.Association,
			Target:      l.Target,
			Min:         l.MinCardinality,
			Max:         Cardinality(l.MaxCardinality),
			Default:     l.DefaultCardinality,
		}
		if l.TemplateStatus != model.TemplateDefined {
			el.TemplateStatus = l.TemplateStatus.String()
		}
		links = append(links, el)
	}
	return links
}

func encodeHolder(h value.Holder) *Holder {
	switch h := h.(type) {
	case *value.SingleValueHolder:
		if h.Value == nil {
			return &Holder{}
		}
		return &Holder{Value: &HolderItem{Value: h.Value}}
	case *value.MultiValueHolder:
		out := &Holder{Multi: true}
		for _, v := range h.Values {
			if v.Value == nil {
				out.Values = append(out.Values, nil)
				continue
			}
			out.Values = append(out.Values, &HolderItem{Value: v.Value})
		}
		return out
	default:
		return nil
	}
}

// notNull returns a pointer to false for non-nullable columns and nil for the
// nullable default.
func notNull(nullable bool) *bool {
	if nullable {
		return nil
	}
	return &nullable
}
