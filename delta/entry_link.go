package delta

import (
	"golang.org/x/text/message"

	"github.com/syssam/faktorgen/model"
)

// LinkWithoutAssociationEntry reports a link whose association the type no
// longer declares.
type LinkWithoutAssociationEntry struct {
	container *model.Container
	link      *model.Link
}

// Type returns LinkWithoutAssociation.
func (*LinkWithoutAssociationEntry) Type() Type { return LinkWithoutAssociation }

// Location returns the owner of the container holding the link.
func (e *LinkWithoutAssociationEntry) Location() string { return e.container.Owner() }

// Link returns the dangling link.
func (e *LinkWithoutAssociationEntry) Link() *model.Link { return e.link }

// Description describes the entry.
func (e *LinkWithoutAssociationEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgLinkWithoutAssociation, e.container.Owner(), e.link.Target, e.link.Association)
}

// Fix deletes the link.
func (e *LinkWithoutAssociationEntry) Fix() {
	e.container.RemoveLink(e.link)
}

// LinkChangingOverTimeMismatchEntry reports links of one association stored
// in the wrong place: in generations although the association is static, or
// on the component although the association changes over time.
type LinkChangingOverTimeMismatchEntry struct {
	cmpt        *model.ProductCmpt
	association *model.ProductAssociation
	// toGenerations is true if links have to move from the component into
	// the generations.
	toGenerations bool
	// links are copies of the latest generation's links taken at scan time.
	links []*model.Link
}

// Type returns LinkChangingOverTimeMismatch.
func (*LinkChangingOverTimeMismatchEntry) Type() Type { return LinkChangingOverTimeMismatch }

// Location returns the component name.
func (e *LinkChangingOverTimeMismatchEntry) Location() string { return e.cmpt.QName }

// Association returns the association whose links are misplaced.
func (e *LinkChangingOverTimeMismatchEntry) Association() *model.ProductAssociation {
	return e.association
}

// Description describes the entry.
func (e *LinkChangingOverTimeMismatchEntry) Description(p *message.Printer) string {
	if e.toGenerations {
		return p.Sprintf(msgLinkToGenerations, e.cmpt.QName, e.association.Name)
	}
	return p.Sprintf(msgLinkToComponent, e.cmpt.QName, e.association.Name)
}

// Fix moves the links. Component links are copied into every generation and
// then deleted. Generation links are deleted and replaced on the component by
// the links the latest generation held at scan time.
func (e *LinkChangingOverTimeMismatchEntry) Fix() {
	name := e.association.Name
	if e.toGenerations {
		links := e.cmpt.LinksFor(name)
		for _, g := range e.cmpt.Generations() {
			for _, l := range links {
				g.AddLink(l.Copy(newID()))
			}
		}
		for _, l := range links {
			e.cmpt.RemoveLink(l)
		}
		return
	}
	misplaced := false
	for _, g := range e.cmpt.Generations() {
		for _, l := range g.LinksFor(name) {
			g.RemoveLink(l)
			misplaced = true
		}
	}
	if !misplaced {
		return
	}
	for _, l := range e.links {
		e.cmpt.AddLink(l.Copy(newID()))
	}
}

// MissingTemplateLinkEntry reports a link the template defines but the
// component lacks.
type MissingTemplateLinkEntry struct {
	container *model.Container
	template  string
	// link is a copy of the template link taken at scan time.
	link *model.Link
}

// Type returns MissingTemplateLink.
func (*MissingTemplateLinkEntry) Type() Type { return MissingTemplateLink }

// Location returns the owner of the container lacking the link.
func (e *MissingTemplateLinkEntry) Location() string { return e.container.Owner() }

// Description describes the entry.
func (e *MissingTemplateLinkEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgMissingTemplateLink, e.container.Owner(), e.link.Target, e.link.Association, e.template)
}

// Fix adds the link as inherited from the template.
func (e *MissingTemplateLinkEntry) Fix() {
	if e.container.Link(e.link.Association, e.link.Target) != nil {
		return
	}
	l := e.link.Copy(newID())
	l.TemplateStatus = model.TemplateInherited
	e.container.AddLink(l)
}

// RemovedTemplateLinkEntry reports an inherited link that the template no
// longer defines.
type RemovedTemplateLinkEntry struct {
	container *model.Container
	template  string
	link      *model.Link
}

// Type returns RemovedTemplateLink.
func (*RemovedTemplateLinkEntry) Type() Type { return RemovedTemplateLink }

// Location returns the owner of the container holding the link.
func (e *RemovedTemplateLinkEntry) Location() string { return e.container.Owner() }

// Description describes the entry.
func (e *RemovedTemplateLinkEntry) Description(p *message.Printer) string {
	return p.Sprintf(msgRemovedTemplateLink, e.container.Owner(), e.link.Target, e.link.Association, e.template)
}

// Fix deletes the link.
func (e *RemovedTemplateLinkEntry) Fix() {
	e.container.RemoveLink(e.link)
}
