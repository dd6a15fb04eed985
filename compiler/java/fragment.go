// Package java provides Java source fragments and a builder for them.
//
// A Fragment is a piece of source text together with the qualified names it
// needs imported. Fragments are produced by the annotation generators and
// merged into class skeletons by the gen package.
package java

import (
	"fmt"
	"slices"
	"strings"
)

// Fragment is Java source text with the imports it requires.
type Fragment struct {
	Source  string
	Imports []string // sorted, without duplicates
}

// NewFragment returns a fragment with the given source and imports.
func NewFragment(source string, imports ...string) Fragment {
	return Fragment{Source: source, Imports: normalizeImports(imports)}
}

// IsEmpty reports whether f contributes no source.
func (f Fragment) IsEmpty() bool { return strings.TrimSpace(f.Source) == "" }

func (f Fragment) String() string { return f.Source }

// Concat joins fragments in order. Empty fragments are skipped and every
// non-empty source ends with a newline in the result.
func Concat(frags ...Fragment) Fragment {
	var (
		b       strings.Builder
		imports []string
	)
	for _, f := range frags {
		if f.IsEmpty() {
			continue
		}
		b.WriteString(f.Source)
		if !strings.HasSuffix(f.Source, "\n") {
			b.WriteByte('\n')
		}
		imports = append(imports, f.Imports...)
	}
	return Fragment{Source: b.String(), Imports: normalizeImports(imports)}
}

func normalizeImports(imports []string) []string {
	out := make([]string, 0, len(imports))
	for _, imp := range imports {
		if imp != "" && NeedsImport(imp) {
			out = append(out, imp)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// NeedsImport reports whether qname has to be imported to be referenced by
// its simple name. Classes of java.lang and unqualified names do not.
func NeedsImport(qname string) bool {
	pkg := PackageName(qname)
	return pkg != "" && pkg != "java.lang"
}

// SimpleName returns the unqualified part of a qualified class name.
func SimpleName(qname string) string {
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// PackageName returns the package part of a qualified class name.
func PackageName(qname string) string {
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		return qname[:i]
	}
	return ""
}

var javaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Quote returns s as a Java string literal. Control characters without a
// short escape are written as \uXXXX.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range javaEscaper.Replace(s) {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&b, `\u%04x`, r)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
