package model

import (
	"maps"
	"slices"

	"golang.org/x/text/language"

	"github.com/syssam/faktorgen"
)

// Resolver resolves qualified names to model objects. Implementations return
// nil for names they cannot resolve.
type Resolver interface {
	FindPolicyCmptType(qname string) *PolicyCmptType
	FindProductCmptType(qname string) *ProductCmptType
	FindProductCmpt(qname string) *ProductCmpt
}

// Project owns the model objects of one source project and references the
// projects it depends on.
type Project struct {
	Name string
	// Locale is the default language of multilingual values.
	Locale     language.Tag
	References []*Project

	policyTypes  map[string]*PolicyCmptType
	productTypes map[string]*ProductCmptType
	cmpts        map[string]*ProductCmpt
}

// NewProject returns an empty project.
func NewProject(name string, locale language.Tag) *Project {
	return &Project{
		Name:         name,
		Locale:       locale,
		policyTypes:  make(map[string]*PolicyCmptType),
		productTypes: make(map[string]*ProductCmptType),
		cmpts:        make(map[string]*ProductCmpt),
	}
}

// AddPolicyCmptType adds t. Qualified names must be unique per project.
func (p *Project) AddPolicyCmptType(t *PolicyCmptType) error {
	if _, ok := p.policyTypes[t.QName]; ok {
		return faktorgen.NewModelError(t.QName, "", "duplicate policy component type", nil)
	}
	p.policyTypes[t.QName] = t
	return nil
}

// AddProductCmptType adds t. Qualified names must be unique per project.
func (p *Project) AddProductCmptType(t *ProductCmptType) error {
	if _, ok := p.productTypes[t.QName]; ok {
		return faktorgen.NewModelError(t.QName, "", "duplicate product component type", nil)
	}
	p.productTypes[t.QName] = t
	return nil
}

// AddProductCmpt adds c. Qualified names must be unique per project.
func (p *Project) AddProductCmpt(c *ProductCmpt) error {
	if _, ok := p.cmpts[c.QName]; ok {
		return faktorgen.NewModelError(c.QName, "", "duplicate product component", nil)
	}
	p.cmpts[c.QName] = c
	return nil
}

// PolicyCmptTypes returns the policy types of p sorted by qualified name.
func (p *Project) PolicyCmptTypes() []*PolicyCmptType { return sortedValues(p.policyTypes) }

// ProductCmptTypes returns the product types of p sorted by qualified name.
func (p *Project) ProductCmptTypes() []*ProductCmptType { return sortedValues(p.productTypes) }

// ProductCmpts returns the product components of p sorted by qualified name.
func (p *Project) ProductCmpts() []*ProductCmpt { return sortedValues(p.cmpts) }

// FindPolicyCmptType looks up a policy type of p itself.
func (p *Project) FindPolicyCmptType(qname string) *PolicyCmptType { return p.policyTypes[qname] }

// FindProductCmptType looks up a product type of p itself.
func (p *Project) FindProductCmptType(qname string) *ProductCmptType { return p.productTypes[qname] }

// FindProductCmpt looks up a product component of p itself.
func (p *Project) FindProductCmpt(qname string) *ProductCmpt { return p.cmpts[qname] }

func sortedValues[T any](m map[string]T) []T {
	keys := slices.Sorted(maps.Keys(m))
	values := make([]T, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}

// SearchPath resolves names against a project and, depth first, the
// projects it references. The first match wins.
type SearchPath struct {
	projects []*Project
}

var _ Resolver = (*SearchPath)(nil)

// NewSearchPath returns the search path of root. Projects referenced more
// than once are consulted once, at their first position.
func NewSearchPath(root *Project) *SearchPath {
	sp := &SearchPath{}
	visited := make(map[*Project]bool)
	var walk func(*Project)
	walk = func(p *Project) {
		if p == nil || visited[p] {
			return
		}
		visited[p] = true
		sp.projects = append(sp.projects, p)
		for _, ref := range p.References {
			walk(ref)
		}
	}
	walk(root)
	return sp
}

// Projects returns the projects in resolution order.
func (sp *SearchPath) Projects() []*Project { return slices.Clone(sp.projects) }

// Root returns the first project on the path, or nil.
func (sp *SearchPath) Root() *Project {
	if len(sp.projects) == 0 {
		return nil
	}
	return sp.projects[0]
}

// FindPolicyCmptType resolves a policy component type.
func (sp *SearchPath) FindPolicyCmptType(qname string) *PolicyCmptType {
	return find(sp.projects, qname, (*Project).FindPolicyCmptType)
}

// FindProductCmptType resolves a product component type.
func (sp *SearchPath) FindProductCmptType(qname string) *ProductCmptType {
	return find(sp.projects, qname, (*Project).FindProductCmptType)
}

// FindProductCmpt resolves a product component.
func (sp *SearchPath) FindProductCmpt(qname string) *ProductCmpt {
	return find(sp.projects, qname, (*Project).FindProductCmpt)
}

func find[T any](projects []*Project, qname string, lookup func(*Project, string) *T) *T {
	if qname == "" {
		return nil
	}
	for _, p := range projects {
		if v := lookup(p, qname); v != nil {
			return v
		}
	}
	return nil
}
