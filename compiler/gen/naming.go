package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/model/value"
)

// capitalize upper-cases the first letter of s and keeps the rest.
// A Caser is stateful, so each call uses its own.
func capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// pluralize returns plural if set, the inflected plural of singular otherwise.
func pluralize(singular, plural string) string {
	if plural != "" {
		return plural
	}
	return inflect.Pluralize(singular)
}

// getterName returns the Java getter of a property. Boolean properties use
// the "is" prefix.
func getterName(name string, dt value.Datatype) string {
	if dt == value.DatatypeBoolean {
		return "is" + capitalize(name)
	}
	return "get" + capitalize(name)
}

// javaPackage returns the Java package of the model object qname below base.
func javaPackage(base, qname string) string {
	pkg := ""
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		pkg = qname[:i]
	}
	switch {
	case base == "":
		return pkg
	case pkg == "":
		return base
	default:
		return base + "." + pkg
	}
}

// javaClassName returns the qualified Java class of the model object qname.
func javaClassName(base, qname string) string {
	simple := qname
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		simple = qname[i+1:]
	}
	simple = capitalize(simple)
	if pkg := javaPackage(base, qname); pkg != "" {
		return pkg + "." + simple
	}
	return simple
}

// javaType returns the qualified Java class of the named datatype.
func javaType(datatype string) string {
	return value.Datatype(datatype).JavaClass()
}
