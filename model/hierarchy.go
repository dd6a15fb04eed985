package model

type supertyped interface {
	QualifiedName() string
	SupertypeName() string
}

// supertypeChain returns t followed by its supertypes, nearest first. The
// walk stops at unresolvable supertypes and at types already visited;
// complete is false if a supertype could not be resolved.
func supertypeChain[T supertyped](t T, find func(string) (T, bool)) (chain []T, complete bool) {
	visited := make(map[string]bool)
	for !visited[t.QualifiedName()] {
		visited[t.QualifiedName()] = true
		chain = append(chain, t)
		name := t.SupertypeName()
		if name == "" {
			return chain, true
		}
		var ok bool
		if t, ok = find(name); !ok {
			return chain, false
		}
	}
	// A revisited type closes a cycle, which is as unresolvable as a
	// missing supertype.
	return chain, false
}

// PolicyCmptTypeHierarchy returns t and its supertypes, nearest first.
func PolicyCmptTypeHierarchy(t *PolicyCmptType, r Resolver) ([]*PolicyCmptType, bool) {
	if t == nil {
		return nil, false
	}
	return supertypeChain(t, func(name string) (*PolicyCmptType, bool) {
		st := r.FindPolicyCmptType(name)
		return st, st != nil
	})
}

// ProductCmptTypeHierarchy returns t and its supertypes, nearest first.
func ProductCmptTypeHierarchy(t *ProductCmptType, r Resolver) ([]*ProductCmptType, bool) {
	if t == nil {
		return nil, false
	}
	return supertypeChain(t, func(name string) (*ProductCmptType, bool) {
		st := r.FindProductCmptType(name)
		return st, st != nil
	})
}

// FindAttribute returns the product attribute declared by t or its nearest
// supertype.
func (t *ProductCmptType) FindAttribute(name string, r Resolver) *ProductAttribute {
	chain, _ := ProductCmptTypeHierarchy(t, r)
	for _, st := range chain {
		if a := st.Attribute(name); a != nil {
			return a
		}
	}
	return nil
}

// FindAssociation returns the product association declared by t or its
// nearest supertype.
func (t *ProductCmptType) FindAssociation(name string, r Resolver) *ProductAssociation {
	chain, _ := ProductCmptTypeHierarchy(t, r)
	for _, st := range chain {
		if a := st.Association(name); a != nil {
			return a
		}
	}
	return nil
}

// FindAssociations returns the associations of t and its supertypes, from the
// root supertype down to t. Associations redeclared by a subtype replace the
// inherited ones.
func (t *ProductCmptType) FindAssociations(r Resolver) ([]*ProductAssociation, bool) {
	chain, complete := ProductCmptTypeHierarchy(t, r)
	var out orderedSet[*ProductAssociation]
	for i := len(chain) - 1; i >= 0; i-- {
		for _, a := range chain[i].Associations {
			out.put(a.Name, a)
		}
	}
	return out.items, complete
}

// FindAttribute returns the policy attribute declared by t or its nearest
// supertype.
func (t *PolicyCmptType) FindAttribute(name string, r Resolver) *PolicyAttribute {
	chain, _ := PolicyCmptTypeHierarchy(t, r)
	for _, st := range chain {
		if a := st.Attribute(name); a != nil {
			return a
		}
	}
	return nil
}

// FindProperties returns the properties product components of t configure:
// product attributes, table usages and formulas from the root supertype down
// to t, followed by the product relevant attributes and configurable rules of
// the configured policy type hierarchy. complete is false if part of either
// hierarchy could not be resolved.
func (t *ProductCmptType) FindProperties(r Resolver) (props []Property, complete bool) {
	chain, complete := ProductCmptTypeHierarchy(t, r)
	var out orderedSet[Property]
	policy := ""
	for i := len(chain) - 1; i >= 0; i-- {
		st := chain[i]
		for _, a := range st.Attributes {
			out.put(propertyKey(a), a)
		}
		for _, u := range st.TableUsages {
			out.put(propertyKey(u), u)
		}
		for _, m := range st.Formulas() {
			out.put(propertyKey(m), m)
		}
		if st.Policy != "" {
			policy = st.Policy
		}
	}
	if policy == "" {
		return out.items, complete
	}
	pt := r.FindPolicyCmptType(policy)
	if pt == nil {
		return out.items, false
	}
	pchain, pcomplete := PolicyCmptTypeHierarchy(pt, r)
	for i := len(pchain) - 1; i >= 0; i-- {
		for _, a := range pchain[i].Attributes {
			if a.IsProductRelevant() {
				out.put(propertyKey(a), a)
			}
		}
		for _, rule := range pchain[i].Rules {
			if rule.ConfigurableByProduct {
				out.put(propertyKey(rule), rule)
			}
		}
	}
	return out.items, complete && pcomplete
}

// propertyKey identifies a property by name and first value type, so a policy
// attribute and a product attribute of the same name do not collide.
func propertyKey(p Property) string {
	return p.ValueTypes()[0].String() + ":" + p.PropertyName()
}

// orderedSet keeps first-insertion order; later puts replace the item in place.
type orderedSet[T any] struct {
	index map[string]int
	items []T
}

func (s *orderedSet[T]) put(key string, v T) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[key]; ok {
		s.items[i] = v
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, v)
}
