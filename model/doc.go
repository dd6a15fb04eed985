// Package model holds the in-memory product definition model: policy and
// product component types with their attributes, associations and
// persistence metadata, and product components whose property values and
// links are stored on the component itself or in its generations.
//
// Qualified names are resolved through a Resolver, usually a SearchPath
// over a project and the projects it references. Nothing in this package
// reads global state; every resolving operation takes its Resolver as an
// argument.
//
//	sp := model.NewSearchPath(project)
//	props, complete := productType.FindProperties(sp)
package model
