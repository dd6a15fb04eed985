package gen

import (
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/faktorgen/compiler/java"
	"github.com/syssam/faktorgen/model"
)

// JavaClass is the skeleton of a generated Java class.
type JavaClass struct {
	// Element is the qualified name of the model type the class is
	// generated for.
	Element     string
	Header      string
	Package     string
	Name        string
	Abstract    bool
	Extends     string
	Imports     []string
	Annotations []string
	Members     []*JavaMember
}

// JavaMember is a field or a method of a generated class. Fields have no body.
type JavaMember struct {
	Annotations []string
	Declaration string
	Body        []string
}

// QualifiedName returns the qualified name of the class.
func (c *JavaClass) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// FileName returns the path of the source file relative to the output
// directory.
func (c *JavaClass) FileName() string {
	return filepath.Join(filepath.FromSlash(strings.ReplaceAll(c.Package, ".", "/")), c.Name+".java")
}

// Member returns the member whose declaration contains s, or nil.
func (c *JavaClass) Member(s string) *JavaMember {
	for _, m := range c.Members {
		if strings.Contains(m.Declaration, s) {
			return m
		}
	}
	return nil
}

// BundleEntry is a label or description in the documentation bundle.
type BundleEntry struct {
	Key   string
	Value string
}

// Builder projects the types of a project to Java class skeletons.
type Builder struct {
	ctx *Context
}

// NewBuilder returns a builder generating within ctx.
func NewBuilder(ctx *Context) *Builder {
	return &Builder{ctx: ctx}
}

// Build returns the classes of all types declared by p, policy types first.
func (b *Builder) Build(p *model.Project) ([]*JavaClass, error) {
	var classes []*JavaClass
	for _, t := range p.PolicyCmptTypes() {
		c, err := b.PolicyClass(b.ctx.PolicyCmptClass(t))
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	for _, t := range p.ProductCmptTypes() {
		cs, err := b.ProductClasses(b.ctx.ProductCmptClass(t))
		if err != nil {
			return nil, err
		}
		classes = append(classes, cs...)
	}
	b.ctx.log.Debug("classes built", zap.String("project", p.Name), zap.Int("classes", len(classes)))
	return classes, nil
}

// PolicyClass returns the class of a policy type.
func (b *Builder) PolicyClass(n *XPolicyCmptClass) (*JavaClass, error) {
	w := b.newClassWriter(n.Type.QName, n.ClassName(), n.Type.Abstract)
	if super := n.Supertype(); super != nil {
		w.class.Extends = w.typeName(super.ClassName())
	}
	w.class.Annotations = w.annotations(n, PolicyCmptDeclClass, PolicyCmptImplClass)
	for _, a := range n.Attributes() {
		w.members(a)
	}
	for _, a := range n.Associations() {
		w.members(a)
	}
	return w.finish()
}

// ProductClasses returns the class of a product type and, if the type
// changes over time, its generation class. Properties changing over time
// are members of the generation class.
func (b *Builder) ProductClasses(n *XProductCmptClass) ([]*JavaClass, error) {
	w := b.newClassWriter(n.Type.QName, n.ClassName(), n.Type.Abstract)
	if super := n.Supertype(); super != nil {
		w.class.Extends = w.typeName(super.ClassName())
	}
	w.class.Annotations = w.annotations(n, ProductCmptDeclClass)

	var gw *classWriter
	if gen := n.GenerationClassName(); gen != "" {
		gw = b.newClassWriter(n.Type.QName, gen, n.Type.Abstract)
		if super := n.Supertype(); super != nil && super.GenerationClassName() != "" {
			gw.class.Extends = gw.typeName(super.GenerationClassName())
		}
	}
	target := func(changing bool) *classWriter {
		if changing && gw != nil {
			return gw
		}
		return w
	}
	for _, a := range n.Attributes() {
		target(a.Attribute.ChangingOverTime).members(a)
	}
	for _, a := range n.Associations() {
		target(a.Association.ChangingOverTime).members(a)
	}
	for _, u := range n.TableUsages() {
		target(u.Usage.ChangingOverTime).members(u)
	}
	for _, m := range n.Formulas() {
		target(m.Method.ChangingOverTime).members(m)
	}

	product, err := w.finish()
	if err != nil {
		return nil, err
	}
	if gw == nil {
		return []*JavaClass{product}, nil
	}
	gen, err := gw.finish()
	if err != nil {
		return nil, err
	}
	return []*JavaClass{product, gen}, nil
}

// Documentation returns the bundle entries of the descriptions in p.
func (b *Builder) Documentation(p *model.Project) []BundleEntry {
	var entries []BundleEntry
	add := func(key, value string) {
		if value != "" {
			entries = append(entries, BundleEntry{Key: key, Value: value})
		}
	}
	for _, t := range p.PolicyCmptTypes() {
		add(t.QName+"-description", t.Description)
		for _, a := range t.Attributes {
			add(t.QName+"-attribute-"+a.Name+"-description", a.Description)
		}
	}
	for _, t := range p.ProductCmptTypes() {
		add(t.QName+"-description", t.Description)
		for _, a := range t.Attributes {
			add(t.QName+"-attribute-"+a.Name+"-description", a.Description)
		}
	}
	return entries
}

// classWriter accumulates one class. The first error stops further work and
// is returned by finish.
type classWriter struct {
	ctx     *Context
	class   *JavaClass
	imports *java.Builder
	err     error
}

func (b *Builder) newClassWriter(element, qname string, abstract bool) *classWriter {
	return &classWriter{
		ctx: b.ctx,
		class: &JavaClass{
			Element:  element,
			Header:   b.ctx.config.Header,
			Package:  java.PackageName(qname),
			Name:     java.SimpleName(qname),
			Abstract: abstract,
		},
		imports: java.NewBuilder(qname),
	}
}

// typeName returns how the class qname is referenced and imports it.
func (w *classWriter) typeName(qname string) string {
	return w.imports.ClassName(qname)
}

func (w *classWriter) listOf(qname string) string {
	return w.typeName("java.util.List") + "<" + w.typeName(qname) + ">"
}

// annotations returns the annotation lines of all generators registered for
// the element types that apply to n.
func (w *classWriter) annotations(n Node, types ...ElementType) []string {
	if w.err != nil {
		return nil
	}
	var lines []string
	for _, t := range types {
		f, err := w.ctx.Annotations(t, n)
		if err != nil {
			w.err = err
			return nil
		}
		for _, imp := range f.Imports {
			w.imports.Import(imp)
		}
		if !f.IsEmpty() {
			lines = append(lines, strings.Split(strings.TrimSuffix(f.Source, "\n"), "\n")...)
		}
	}
	return lines
}

func (w *classWriter) members(n Node) {
	if w.err != nil {
		return
	}
	w.class.Members = append(w.class.Members, Visit[[]*JavaMember](n, memberVisitor{w})...)
}

func (w *classWriter) finish() (*JavaClass, error) {
	if w.err != nil {
		return nil, w.err
	}
	imports := w.imports.Fragment().Imports
	w.class.Imports = slices.DeleteFunc(imports, func(imp string) bool {
		return java.PackageName(imp) == w.class.Package
	})
	w.ctx.log.Debug("class assembled", zap.String("class", w.class.QualifiedName()), zap.Int("members", len(w.class.Members)))
	return w.class, nil
}

// memberVisitor returns the fields and methods a node contributes.
type memberVisitor struct{ w *classWriter }

func (memberVisitor) VisitPolicyCmptClass(*XPolicyCmptClass) []*JavaMember   { return nil }
func (memberVisitor) VisitProductCmptClass(*XProductCmptClass) []*JavaMember { return nil }

func (v memberVisitor) VisitPolicyAttribute(n *XPolicyAttribute) []*JavaMember {
	w := v.w
	typ := w.typeName(n.JavaType())
	getter := &JavaMember{
		Annotations: w.annotations(n, PolicyCmptDeclAttributeGetter, DeprecatedElement),
		Declaration: "public " + typ + " " + n.GetterName() + "()",
		Body:        []string{"return " + n.Name() + ";"},
	}
	if !n.HasField() {
		getter.Body = notImplemented(n.Name())
		return []*JavaMember{getter}
	}
	field := &JavaMember{
		Annotations: w.annotations(n, PolicyCmptImplAttributeField),
		Declaration: "private " + typ + " " + n.Name() + ";",
	}
	return []*JavaMember{field, getter}
}

func (v memberVisitor) VisitProductAttribute(n *XProductAttribute) []*JavaMember {
	w := v.w
	typ := w.typeName(n.JavaType())
	if n.Attribute.MultiValue {
		typ = w.listOf(n.JavaType())
	}
	return []*JavaMember{
		{Declaration: "private " + typ + " " + n.Name() + ";"},
		{
			Annotations: w.annotations(n, ProductCmptDeclAttributeGetter, DeprecatedElement),
			Declaration: "public " + typ + " " + n.GetterName() + "()",
			Body:        []string{"return " + n.Name() + ";"},
		},
	}
}

func (v memberVisitor) VisitPolicyAssociation(n *XPolicyAssociation) []*JavaMember {
	w := v.w
	target := javaClassName(w.ctx.config.BasePackage, n.Association.Target)
	field := "private " + w.typeName(target) + " " + n.FieldName() + ";"
	typ := w.typeName(target)
	if n.Association.IsToMany() {
		typ = w.listOf(target)
		field = "private " + typ + " " + n.FieldName() + " = new " + w.typeName("java.util.ArrayList") + "<>();"
	}
	return []*JavaMember{
		{
			Annotations: w.annotations(n, PolicyCmptImplAssociationField),
			Declaration: field,
		},
		{
			Annotations: w.annotations(n, PolicyCmptDeclAssociationGetter, DeprecatedElement),
			Declaration: "public " + typ + " " + n.GetterName() + "()",
			Body:        []string{"return " + n.FieldName() + ";"},
		},
	}
}

func (v memberVisitor) VisitProductAssociation(n *XProductAssociation) []*JavaMember {
	w := v.w
	target := javaClassName(w.ctx.config.BasePackage, n.Association.Target)
	typ := w.typeName(target)
	field := n.Name()
	if n.Association.IsToMany() {
		typ = w.listOf(target)
		field = n.PluralName()
	}
	return []*JavaMember{
		{Declaration: "private " + typ + " " + field + ";"},
		{
			Annotations: w.annotations(n, ProductCmptDeclAssociationGetter, DeprecatedElement),
			Declaration: "public " + typ + " " + n.GetterName() + "()",
			Body:        []string{"return " + field + ";"},
		},
	}
}

func (v memberVisitor) VisitMethod(n *XMethod) []*JavaMember {
	w := v.w
	params := make([]string, len(n.Method.Parameters))
	for i, p := range n.Method.Parameters {
		params[i] = w.typeName(javaType(p.Datatype)) + " " + p.Name
	}
	return []*JavaMember{{
		Annotations: w.annotations(n, FormulaComputationMethod, DeprecatedElement),
		Declaration: "public " + w.typeName(n.JavaType()) + " " + n.MethodName() + "(" + strings.Join(params, ", ") + ")",
		Body:        notImplemented(n.Name()),
	}}
}

func (v memberVisitor) VisitTableUsage(n *XTableUsage) []*JavaMember {
	w := v.w
	typ := w.typeName(n.TableClassName())
	return []*JavaMember{
		{Declaration: "private " + typ + " " + n.Name() + ";"},
		{
			Annotations: w.annotations(n, TableUsageGetter),
			Declaration: "public " + typ + " " + n.GetterName() + "()",
			Body:        []string{"return " + n.Name() + ";"},
		},
	}
}

func notImplemented(name string) []string {
	return []string{"throw new UnsupportedOperationException(" + java.Quote(name+" is computed at runtime") + ");"}
}
