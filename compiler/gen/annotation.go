package gen

import (
	"fmt"

	"github.com/syssam/faktorgen/compiler/java"
)

// AnnotationGenerator produces the annotations of one aspect of a node.
type AnnotationGenerator interface {
	// IsGenerateAnnotationFor reports whether the generator applies to n.
	// It has no side effects.
	IsGenerateAnnotationFor(n Node) bool
	// CreateAnnotation returns the annotations for n, which must satisfy
	// IsGenerateAnnotationFor. The model is not modified.
	CreateAnnotation(n Node) (java.Fragment, error)
}

// Factory creates the generators of one annotation family.
type Factory interface {
	// IsRequiredFor reports whether the family is generated in the build.
	IsRequiredFor(c *Context) bool
	// CreateAnnotationGenerators returns the generators for t, possibly none.
	CreateAnnotationGenerators(t ElementType) []AnnotationGenerator
}

// factories in the order their annotations are written.
var factories = []Factory{
	modelFactory{},
	jpaFactory{},
}

func collectGenerators(c *Context, fs []Factory) map[ElementType][]AnnotationGenerator {
	gens := make(map[ElementType][]AnnotationGenerator)
	for _, f := range fs {
		if !f.IsRequiredFor(c) {
			continue
		}
		for _, t := range ElementTypes() {
			gens[t] = append(gens[t], f.CreateAnnotationGenerators(t)...)
		}
	}
	return gens
}

// For adapts a function typed on one node kind to an AnnotationGenerator.
// The generator applies to nodes of kind N for which applies returns true;
// a nil applies accepts every node of kind N.
func For[N Node](applies func(N) bool, create func(N) (java.Fragment, error)) AnnotationGenerator {
	return typedGenerator[N]{applies: applies, create: create}
}

type typedGenerator[N Node] struct {
	applies func(N) bool
	create  func(N) (java.Fragment, error)
}

func (g typedGenerator[N]) IsGenerateAnnotationFor(n Node) bool {
	typed, ok := n.(N)
	return ok && (g.applies == nil || g.applies(typed))
}

func (g typedGenerator[N]) CreateAnnotation(n Node) (java.Fragment, error) {
	typed, ok := n.(N)
	if !ok {
		var want N
		return java.Fragment{}, fmt.Errorf("gen: generator for %T called with %T", want, n)
	}
	return g.create(typed)
}

// compose concatenates the output of parts in order. Parts contributing
// nothing leave no trace in the result.
func compose[N Node](parts ...func(N) (java.Fragment, error)) func(N) (java.Fragment, error) {
	return func(n N) (java.Fragment, error) {
		frags := make([]java.Fragment, 0, len(parts))
		for _, part := range parts {
			f, err := part(n)
			if err != nil {
				return java.Fragment{}, err
			}
			frags = append(frags, f)
		}
		return java.Concat(frags...), nil
	}
}

// annotation returns a fragment holding a single annotation line.
func annotation(qname string, params ...string) java.Fragment {
	return java.NewBuilder().AnnotationLn(qname, params...).Fragment()
}
