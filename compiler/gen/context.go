package gen

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/persistence"
)

// Context is the state of one build: the resolver, the active persistence
// provider, the generators and a cache of nodes keyed by the model object
// they project. A context is not safe for concurrent use; concurrent builds
// use separate contexts.
type Context struct {
	config   *Config
	resolver model.Resolver
	provider persistence.Provider
	log      *zap.Logger

	nodes      *lru.Cache[any, Node]
	generators map[ElementType][]AnnotationGenerator
}

// NewContext returns a build context resolving against r.
func NewContext(r model.Resolver, c *Config) (*Context, error) {
	if r == nil {
		return nil, NewConfigError("Resolver", nil, "resolver cannot be nil")
	}
	if c == nil {
		c = MustNewConfig()
	}
	provider, err := persistence.New(c.Provider)
	if err != nil {
		return nil, NewConfigError("Provider", c.Provider, err.Error())
	}
	nodes, err := lru.New[any, Node](c.cacheSize())
	if err != nil {
		return nil, NewConfigError("CacheSize", c.CacheSize, err.Error())
	}
	ctx := &Context{
		config:   c,
		resolver: r,
		provider: provider,
		log:      c.logger(),
		nodes:    nodes,
	}
	ctx.generators = collectGenerators(ctx, factories)
	return ctx, nil
}

// Config returns the configuration of the build.
func (c *Context) Config() *Config { return c.config }

// Resolver returns the resolver of the build.
func (c *Context) Resolver() model.Resolver { return c.resolver }

// Provider returns the persistence provider, or nil if none is active.
func (c *Context) Provider() persistence.Provider { return c.provider }

// Logger returns the logger of the build.
func (c *Context) Logger() *zap.Logger { return c.log }

// PolicyCmptClass returns the node projecting t.
func (c *Context) PolicyCmptClass(t *model.PolicyCmptType) *XPolicyCmptClass {
	return cached(c, t, func() *XPolicyCmptClass {
		return &XPolicyCmptClass{base: base{c}, Type: t}
	})
}

// ProductCmptClass returns the node projecting t.
func (c *Context) ProductCmptClass(t *model.ProductCmptType) *XProductCmptClass {
	return cached(c, t, func() *XProductCmptClass {
		return &XProductCmptClass{base: base{c}, Type: t}
	})
}

// Generators returns the generators registered for t.
func (c *Context) Generators(t ElementType) []AnnotationGenerator {
	return c.generators[t]
}

// Annotations concatenates the output of every generator registered for t
// that applies to n.
func (c *Context) Annotations(t ElementType, n Node) (java.Fragment, error) {
	var frags []java.Fragment
	for _, g := range c.generators[t] {
		if !g.IsGenerateAnnotationFor(n) {
			continue
		}
		f, err := g.CreateAnnotation(n)
		if err != nil {
			return java.Fragment{}, NewGenerationError(PhaseAnnotation, n.Name(), t.String(), err)
		}
		frags = append(frags, f)
	}
	return java.Concat(frags...), nil
}

// Purge drops all cached nodes.
func (c *Context) Purge() { c.nodes.Purge() }

// cached returns the node cached for key, building and caching it if the
// key is missing or was evicted.
func cached[N Node](c *Context, key any, build func() N) N {
	if n, ok := c.nodes.Get(key); ok {
		if typed, ok := n.(N); ok {
			return typed
		}
	}
	n := build()
	c.nodes.Add(key, n)
	return n
}
