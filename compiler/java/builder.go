package java

import (
	"strings"
)

// Builder accumulates Java source and the imports it references. Class names
// are written by their simple name and imported; if the simple name is
// already taken by another class, the qualified name is written instead.
type Builder struct {
	sb      strings.Builder
	imports map[string]bool
	simple  map[string]string // simple name -> qualified name
}

// NewBuilder returns an empty builder. Simple names in reserved are treated
// as taken, e.g. the name of the class being generated.
func NewBuilder(reserved ...string) *Builder {
	b := &Builder{
		imports: make(map[string]bool),
		simple:  make(map[string]string),
	}
	for _, r := range reserved {
		b.simple[SimpleName(r)] = r
	}
	return b
}

// Append writes s.
func (b *Builder) Append(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// AppendLn writes s followed by a newline.
func (b *Builder) AppendLn(s string) *Builder {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	return b
}

// AppendQuoted writes s as a string literal.
func (b *Builder) AppendQuoted(s string) *Builder {
	b.sb.WriteString(Quote(s))
	return b
}

// AppendClassName writes a reference to the class qname.
func (b *Builder) AppendClassName(qname string) *Builder {
	b.sb.WriteString(b.ClassName(qname))
	return b
}

// ClassName returns how qname is referenced in the source and records the
// import it needs.
func (b *Builder) ClassName(qname string) string {
	simple := SimpleName(qname)
	if !NeedsImport(qname) {
		return simple
	}
	if owner, ok := b.simple[simple]; ok && owner != qname {
		return qname
	}
	b.simple[simple] = qname
	b.imports[qname] = true
	return simple
}

// Import records qname as imported without writing anything.
func (b *Builder) Import(qname string) *Builder {
	b.ClassName(qname)
	return b
}

// Annotation writes @Name or @Name(params...) for the annotation class qname.
func (b *Builder) Annotation(qname string, params ...string) *Builder {
	b.sb.WriteByte('@')
	b.AppendClassName(qname)
	if len(params) > 0 {
		b.sb.WriteByte('(')
		b.sb.WriteString(strings.Join(params, ", "))
		b.sb.WriteByte(')')
	}
	return b
}

// AnnotationLn writes an annotation followed by a newline.
func (b *Builder) AnnotationLn(qname string, params ...string) *Builder {
	return b.Annotation(qname, params...).AppendLn("")
}

// Merge appends the source of f and takes over its imports.
func (b *Builder) Merge(f Fragment) *Builder {
	for _, imp := range f.Imports {
		b.Import(imp)
	}
	b.sb.WriteString(f.Source)
	return b
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.sb.Len() }

// Fragment returns the source written so far with its imports.
func (b *Builder) Fragment() Fragment {
	imports := make([]string, 0, len(b.imports))
	for imp := range b.imports {
		imports = append(imports, imp)
	}
	return NewFragment(b.sb.String(), imports...)
}
