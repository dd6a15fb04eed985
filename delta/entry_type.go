package delta

import (
	"golang.org/x/text/message"

	"github.com/syssam/faktorgen/model"
)

// MissingTypeEntry reports a type that cannot be resolved. It has nothing to
// fix; the type has to be restored or the component has to be retyped.
type MissingTypeEntry struct {
	cmpt     *model.ProductCmpt
	typeName string
}

// Type returns MissingType.
func (*MissingTypeEntry) Type() Type { return MissingType }

// Location returns the component name.
func (e *MissingTypeEntry) Location() string { return e.cmpt.QName }

// TypeName returns the qualified name that could not be resolved.
func (e *MissingTypeEntry) TypeName() string { return e.typeName }

// Description describes the entry.
func (e *MissingTypeEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgMissingType, e.typeName)
}

// Fix does nothing.
func (*MissingTypeEntry) Fix() {}

// InvalidGenerationsEntry reports several generations on a component whose
// type does not change over time.
type InvalidGenerationsEntry struct {
	cmpt *model.ProductCmpt
	typ  *model.ProductCmptType
}

// Type returns InvalidGenerations.
func (*InvalidGenerationsEntry) Type() Type { return InvalidGenerations }

// Location returns the component name.
func (e *InvalidGenerationsEntry) Location() string { return e.cmpt.QName }

// Description describes the entry.
func (e *InvalidGenerationsEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgInvalidGenerations, e.cmpt.QName, e.cmpt.NumGenerations(), e.typ.QName)
}

// Fix removes all generations but the first.
func (e *InvalidGenerationsEntry) Fix() {
	if e.typ.ChangingOverTime {
		return
	}
	gens := e.cmpt.Generations()
	for i := len(gens) - 1; i > 0; i-- {
		e.cmpt.RemoveGeneration(gens[i])
	}
}
