package value

import (
	"math/big"
	"regexp"
	"strconv"
	"time"
)

// Datatype names the value datatype of an attribute. Predefined datatypes are
// listed below; any other name refers to a model enumeration or a custom
// datatype whose values cannot be checked here.
type Datatype string

// Predefined datatypes.
const (
	DatatypeString            Datatype = "String"
	DatatypeInteger           Datatype = "Integer"
	DatatypeLong              Datatype = "Long"
	DatatypeDecimal           Datatype = "Decimal"
	DatatypeDouble            Datatype = "Double"
	DatatypeMoney             Datatype = "Money"
	DatatypeBoolean           Datatype = "Boolean"
	DatatypeLocalDate         Datatype = "LocalDate"
	DatatypeGregorianCalendar Datatype = "GregorianCalendar"
)

type datatypeInfo struct {
	javaClass string
	parse     func(string) bool
	temporal  bool
}

var moneyRE = regexp.MustCompile(`^-?\d+(\.\d+)? [A-Z]{3}$`)

var datatypes = map[Datatype]datatypeInfo{
	DatatypeString:  {javaClass: "java.lang.String", parse: func(string) bool { return true }},
	DatatypeInteger: {javaClass: "java.lang.Integer", parse: bitsParser(32)},
	DatatypeLong:    {javaClass: "java.lang.Long", parse: bitsParser(64)},
	DatatypeDecimal: {javaClass: "org.faktorips.values.Decimal", parse: func(s string) bool {
		_, ok := new(big.Rat).SetString(s)
		return ok
	}},
	DatatypeDouble: {javaClass: "java.lang.Double", parse: func(s string) bool {
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}},
	DatatypeMoney:   {javaClass: "org.faktorips.values.Money", parse: moneyRE.MatchString},
	DatatypeBoolean: {javaClass: "java.lang.Boolean", parse: func(s string) bool { return s == "true" || s == "false" }},
	DatatypeLocalDate: {javaClass: "java.time.LocalDate", parse: func(s string) bool {
		_, err := time.Parse(time.DateOnly, s)
		return err == nil
	}},
	DatatypeGregorianCalendar: {javaClass: "java.util.GregorianCalendar", temporal: true, parse: func(s string) bool {
		_, err := time.Parse(time.DateOnly, s)
		return err == nil
	}},
}

func bitsParser(bits int) func(string) bool {
	return func(s string) bool {
		_, err := strconv.ParseInt(s, 10, bits)
		return err == nil
	}
}

// IsPredefined reports whether d is one of the predefined datatypes.
func (d Datatype) IsPredefined() bool {
	_, ok := datatypes[d]
	return ok
}

// IsParsable reports whether s is a valid literal of d. Empty strings stand
// for null and are always valid; custom datatypes accept everything.
func (d Datatype) IsParsable(s string) bool {
	if s == "" {
		return true
	}
	info, ok := datatypes[d]
	if !ok {
		return true
	}
	return info.parse(s)
}

// IsValueParsable reports whether v is valid for d. International strings
// are only valid for String.
func (d Datatype) IsValueParsable(v Value) bool {
	switch v := v.(type) {
	case nil:
		return true
	case StringValue:
		return d.IsParsable(string(v))
	case *InternationalStringValue:
		return d == DatatypeString || !d.IsPredefined()
	default:
		return false
	}
}

// JavaClass returns the qualified Java class values of d are generated as.
// Custom datatypes return their own name.
func (d Datatype) JavaClass() string {
	if info, ok := datatypes[d]; ok {
		return info.javaClass
	}
	return string(d)
}

// IsTemporal reports whether JPA needs an explicit temporal mapping for d.
func (d Datatype) IsTemporal() bool {
	return datatypes[d].temporal
}

func (d Datatype) String() string { return string(d) }
