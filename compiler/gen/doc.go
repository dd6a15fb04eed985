// Package gen generates the Java classes of a Faktor-IPS model.
//
// Policy and product component types are projected to Java class skeletons
// whose declarations carry the runtime model annotations and, for persistent
// policy types, the JPA mapping of the configured persistence provider.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	model.Project + model.Resolver
//	        ↓
//	   Context (node cache, provider, generators)
//	        ↓
//	   Nodes (XPolicyCmptClass, XPolicyAttribute, ...)
//	        ↓
//	   AnnotationGenerator per ElementType
//	        ↓
//	   Builder (JavaClass skeletons)
//	        ↓
//	   TemplateWriter (.java files, documentation bundle)
//
// # Annotation Generators
//
// A Factory contributes generators per ElementType. The model factory is
// always required; the JPA factory only when a persistence provider is
// configured and FeatureJPA is enabled. For an element, the output of every
// applicable generator is concatenated in registration order:
//
//	f, err := ctx.Annotations(gen.PolicyCmptImplClass, ctx.PolicyCmptClass(t))
//
// Generators for a single node kind are written with For:
//
//	gen.For(func(n *gen.XTableUsage) bool { return n.Usage.Mandatory },
//	    func(n *gen.XTableUsage) (java.Fragment, error) { ... })
//
// # Error Handling
//
//   - ConfigError: an option value the generator cannot use (ErrInvalidConfig)
//   - GenerationError: a pipeline Phase failed (ErrGenerationFailed)
//
// Both match their sentinel with errors.Is:
//
//	if errors.Is(err, gen.ErrGenerationFailed) {
//	    // ...
//	}
//
// # Configuration
//
// Configuration uses functional options:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./src/generated/java"),
//	    gen.WithBasePackage("org.acme.model"),
//	    gen.WithProvider(persistence.EclipseLink25),
//	    gen.WithFeatures(gen.FeatureDocumentation),
//	    gen.WithDocumentation("model-label-and-descriptions", "en"),
//	)
//	metrics, err := gen.Generate(ctx, searchPath, project, config)
//
// # Features
//
//   - jpa: persistence annotations on policy classes
//   - documentation: label and description bundle, @IpsDocumented
//   - deprecation: @Deprecated on deprecated elements
//
// Disabling a feature removes its output from previous runs.
package gen
