// Package structure builds the tree of product components reachable from a
// root component through its links.
package structure

import (
	"slices"
	"strings"
	"time"

	"github.com/syssam/faktorgen"
	"github.com/syssam/faktorgen/model"
)

// Option configures Build.
type Option func(*builder)

// WithDate follows the links of the generations effective on date instead of
// the latest generations.
func WithDate(date time.Time) Option {
	return func(b *builder) {
		b.date = date
	}
}

// Node is one product component in the tree.
type Node struct {
	// Name is the qualified name of the component.
	Name string
	// Cmpt is nil if the name could not be resolved.
	Cmpt *model.ProductCmpt
	// Link is the link leading to this node; nil for the root.
	Link *model.Link
	// Tables lists the table contents the component uses.
	Tables   []string
	Children []*Node
}

// IsResolved reports whether the component was found.
func (n *Node) IsResolved() bool { return n.Cmpt != nil }

// Tree is the product structure below a root component.
type Tree struct {
	Root *Node
}

// Walk calls fn for every node in depth-first order. Returning false from fn
// skips the children of that node.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.Root, 0)
}

// Components returns the distinct qualified names in the tree, sorted.
func (t *Tree) Components() []string {
	var names []string
	t.Walk(func(n *Node, _ int) bool {
		names = append(names, n.Name)
		return true
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// String renders the tree with one indented line per node.
func (t *Tree) String() string {
	var b strings.Builder
	t.Walk(func(n *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		if n.Link != nil {
			b.WriteString(n.Link.Association)
			b.WriteString(": ")
		}
		b.WriteString(n.Name)
		if !n.IsResolved() {
			b.WriteString(" (not found)")
		}
		b.WriteByte('\n')
		for _, tc := range n.Tables {
			b.WriteString(strings.Repeat("  ", depth+1))
			b.WriteString("table: ")
			b.WriteString(tc)
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}

type builder struct {
	resolver model.Resolver
	date     time.Time
	path     []string
}

// Build returns the structure below root. It follows the links stored on
// each component and on its generation effective at the configured date.
// A component reachable from itself yields a
// *faktorgen.CycleInProductStructureError carrying the path.
func Build(root *model.ProductCmpt, r model.Resolver, opts ...Option) (*Tree, error) {
	b := &builder{resolver: r}
	for _, opt := range opts {
		opt(b)
	}
	node, err := b.build(root.QName, root, nil)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: node}, nil
}

func (b *builder) build(name string, cmpt *model.ProductCmpt, link *model.Link) (*Node, error) {
	if slices.Contains(b.path, name) {
		return nil, faktorgen.NewCycleInProductStructureError(append(b.path, name))
	}
	n := &Node{Name: name, Cmpt: cmpt, Link: link}
	if cmpt == nil {
		return n, nil
	}
	b.path = append(b.path, name)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	containers := []*model.Container{&cmpt.Container}
	if g := b.generation(cmpt); g != nil {
		containers = append(containers, &g.Container)
	}
	for _, c := range containers {
		for _, v := range c.Values() {
			if v.Type == model.TableContentUsage && v.TableContent != "" {
				n.Tables = append(n.Tables, v.TableContent)
			}
		}
		for _, l := range c.Links() {
			child, err := b.build(l.Target, b.resolver.FindProductCmpt(l.Target), l)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
	return n, nil
}

func (b *builder) generation(cmpt *model.ProductCmpt) *model.Generation {
	if b.date.IsZero() {
		return cmpt.LatestGeneration()
	}
	return cmpt.GenerationEffectiveOn(b.date)
}
