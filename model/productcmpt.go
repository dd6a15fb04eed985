package model

import (
	"slices"
	"time"
)

// Container holds the property values and links of a product component or of
// one of its generations.
type Container struct {
	owner  string
	values []*PropertyValue
	links  []*Link
}

// Owner returns a label of the component or generation owning c.
func (c *Container) Owner() string { return c.owner }

// Values returns the property values in insertion order.
func (c *Container) Values() []*PropertyValue { return slices.Clone(c.values) }

// Value returns the value for the given property and value type, or nil.
func (c *Container) Value(property string, t PropertyValueType) *PropertyValue {
	for _, v := range c.values {
		if v.Property == property && v.Type == t {
			return v
		}
	}
	return nil
}

// ValuesFor returns all values stored for the property.
func (c *Container) ValuesFor(property string) []*PropertyValue {
	var values []*PropertyValue
	for _, v := range c.values {
		if v.Property == property {
			values = append(values, v)
		}
	}
	return values
}

// AddValue adds v unless a value for the same property and type exists.
func (c *Container) AddValue(v *PropertyValue) bool {
	if v == nil || c.Value(v.Property, v.Type) != nil {
		return false
	}
	c.values = append(c.values, v)
	return true
}

// RemoveValue removes v. It reports false if v is not part of c.
func (c *Container) RemoveValue(v *PropertyValue) bool {
	i := slices.Index(c.values, v)
	if i < 0 {
		return false
	}
	c.values = slices.Delete(c.values, i, i+1)
	return true
}

// ContainsValue reports whether v is part of c.
func (c *Container) ContainsValue(v *PropertyValue) bool {
	return slices.Contains(c.values, v)
}

// Links returns the links in insertion order.
func (c *Container) Links() []*Link { return slices.Clone(c.links) }

// LinksFor returns the links of the association.
func (c *Container) LinksFor(association string) []*Link {
	var links []*Link
	for _, l := range c.links {
		if l.Association == association {
			links = append(links, l)
		}
	}
	return links
}

// Link returns the link of the association to target, or nil.
func (c *Container) Link(association, target string) *Link {
	for _, l := range c.links {
		if l.Association == association && l.Target == target {
			return l
		}
	}
	return nil
}

// AddLink adds l unless c already links the same target via the association.
func (c *Container) AddLink(l *Link) bool {
	if l == nil || c.Link(l.Association, l.Target) != nil {
		return false
	}
	c.links = append(c.links, l)
	return true
}

// RemoveLink removes l. It reports false if l is not part of c.
func (c *Container) RemoveLink(l *Link) bool {
	i := slices.Index(c.links, l)
	if i < 0 {
		return false
	}
	c.links = slices.Delete(c.links, i, i+1)
	return true
}

// ContainsLink reports whether l is part of c.
func (c *Container) ContainsLink(l *Link) bool {
	return slices.Contains(c.links, l)
}

// Link connects a product component to another one along an association.
type Link struct {
	ID                 string
	Association        string
	Target             string
	MinCardinality     int
	MaxCardinality     int
	DefaultCardinality int
	TemplateStatus     TemplateStatus
}

// Copy returns a copy of l with the given id.
func (l *Link) Copy(id string) *Link {
	c := *l
	c.ID = id
	return &c
}

// ProductCmpt is an instance of a product component type, configurable over
// time through generations.
type ProductCmpt struct {
	Container

	QName     string
	Type      string
	RuntimeID string
	// Template is the qualified name of the template this component
	// inherits values and links from.
	Template   string
	IsTemplate bool

	generations []*Generation
}

// NewProductCmpt returns an empty product component of the given type.
func NewProductCmpt(qname, typeName string) *ProductCmpt {
	return &ProductCmpt{
		Container: Container{owner: qname},
		QName:     qname,
		Type:      typeName,
	}
}

// Generations returns the generations ordered by valid-from date.
func (p *ProductCmpt) Generations() []*Generation { return slices.Clone(p.generations) }

// NumGenerations returns the number of generations.
func (p *ProductCmpt) NumGenerations() int { return len(p.generations) }

// AddGeneration returns the generation valid from the given date, creating it
// if necessary.
func (p *ProductCmpt) AddGeneration(validFrom time.Time) *Generation {
	validFrom = truncateDay(validFrom)
	i, found := slices.BinarySearchFunc(p.generations, validFrom, func(g *Generation, t time.Time) int {
		return g.ValidFrom.Compare(t)
	})
	if found {
		return p.generations[i]
	}
	g := &Generation{
		Container: Container{owner: p.QName + "@" + validFrom.Format(time.DateOnly)},
		ValidFrom: validFrom,
		cmpt:      p,
	}
	p.generations = slices.Insert(p.generations, i, g)
	return g
}

// RemoveGeneration removes g. It reports false if g is not a generation of p.
func (p *ProductCmpt) RemoveGeneration(g *Generation) bool {
	i := slices.Index(p.generations, g)
	if i < 0 {
		return false
	}
	p.generations = slices.Delete(p.generations, i, i+1)
	g.cmpt = nil
	return true
}

// FirstGeneration returns the earliest generation, or nil.
func (p *ProductCmpt) FirstGeneration() *Generation {
	if len(p.generations) == 0 {
		return nil
	}
	return p.generations[0]
}

// LatestGeneration returns the generation with the latest valid-from date, or nil.
func (p *ProductCmpt) LatestGeneration() *Generation {
	if len(p.generations) == 0 {
		return nil
	}
	return p.generations[len(p.generations)-1]
}

// GenerationEffectiveOn returns the generation valid on the given date, or
// nil if the date lies before the first generation.
func (p *ProductCmpt) GenerationEffectiveOn(date time.Time) *Generation {
	date = truncateDay(date)
	var effective *Generation
	for _, g := range p.generations {
		if g.ValidFrom.After(date) {
			break
		}
		effective = g
	}
	return effective
}

// Containers returns the component container followed by the generations.
func (p *ProductCmpt) Containers() []*Container {
	cs := make([]*Container, 0, len(p.generations)+1)
	cs = append(cs, &p.Container)
	for _, g := range p.generations {
		cs = append(cs, &g.Container)
	}
	return cs
}

// Generation is a time slice of a product component's configuration.
type Generation struct {
	Container

	ValidFrom time.Time
	cmpt      *ProductCmpt
}

// ProductCmpt returns the owning component, or nil once removed.
func (g *Generation) ProductCmpt() *ProductCmpt { return g.cmpt }

// Predecessor returns the generation valid before g, or nil.
func (g *Generation) Predecessor() *Generation {
	if g.cmpt == nil {
		return nil
	}
	i := slices.Index(g.cmpt.generations, g)
	if i <= 0 {
		return nil
	}
	return g.cmpt.generations[i-1]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
