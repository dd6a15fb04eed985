package delta

import (
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/model"
)

// Option configures a delta computation.
type Option func(*engine)

// WithLogger sets the logger receiving debug output of the scan.
func WithLogger(l *zap.Logger) Option {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithLocale sets the language used for values created or converted by fixes.
// It defaults to the locale of the search path's root project, or English.
func WithLocale(tag language.Tag) Option {
	return func(e *engine) {
		e.locale = tag
	}
}

// Delta is the result of comparing one product component with its type.
type Delta struct {
	cmpt    *model.ProductCmpt
	entries []Entry
}

// ProductCmpt returns the scanned component.
func (d *Delta) ProductCmpt() *model.ProductCmpt { return d.cmpt }

// Entries returns the entries in scan order.
func (d *Delta) Entries() []Entry { return slices.Clone(d.entries) }

// IsEmpty reports whether the component matches its type.
func (d *Delta) IsEmpty() bool { return len(d.entries) == 0 }

// ByType groups the entries by type, keeping scan order within a group.
func (d *Delta) ByType() map[Type][]Entry {
	groups := make(map[Type][]Entry)
	for _, e := range d.entries {
		groups[e.Type()] = append(groups[e.Type()], e)
	}
	return groups
}

// FixAll applies the fixes of all entries in scan order.
func (d *Delta) FixAll() {
	for _, e := range d.entries {
		e.Fix()
	}
}

type engine struct {
	log      *zap.Logger
	locale   language.Tag
	resolver model.Resolver

	cmpt    *model.ProductCmpt
	typ     *model.ProductCmptType
	entries []Entry
}

// Compute compares cmpt with its type and returns the mismatches. The model
// is not modified. Names that cannot be resolved are reported as entries.
func Compute(cmpt *model.ProductCmpt, r model.Resolver, opts ...Option) *Delta {
	e := &engine{
		log:      zap.NewNop(),
		locale:   language.English,
		resolver: r,
		cmpt:     cmpt,
	}
	if sp, ok := r.(*model.SearchPath); ok && sp.Root() != nil && sp.Root().Locale != language.Und {
		e.locale = sp.Root().Locale
	}
	for _, opt := range opts {
		opt(e)
	}
	e.run()
	e.log.Debug("computed delta",
		zap.String("component", cmpt.QName),
		zap.Int("entries", len(e.entries)))
	return &Delta{cmpt: cmpt, entries: e.entries}
}

func (e *engine) add(entry Entry) {
	e.log.Debug("delta entry",
		zap.Stringer("type", entry.Type()),
		zap.String("location", entry.Location()))
	e.entries = append(e.entries, entry)
}

func (e *engine) run() {
	e.typ = e.resolver.FindProductCmptType(e.cmpt.Type)
	if e.typ == nil {
		e.add(&MissingTypeEntry{cmpt: e.cmpt, typeName: e.cmpt.Type})
		return
	}
	complete := e.checkHierarchy()

	if !e.typ.ChangingOverTime && e.cmpt.NumGenerations() > 1 {
		e.add(&InvalidGenerationsEntry{cmpt: e.cmpt, typ: e.typ})
	}

	props, _ := e.typ.FindProperties(e.resolver)
	assocs, _ := e.typ.FindAssociations(e.resolver)

	var static, changing []model.Property
	for _, p := range props {
		if e.inGenerations(p.IsChangingOverTime()) {
			changing = append(changing, p)
		} else {
			static = append(static, p)
		}
	}

	e.checkValues(&e.cmpt.Container, static, complete)
	e.checkLinks(&e.cmpt.Container, complete)
	for _, g := range e.cmpt.Generations() {
		e.checkValues(&g.Container, changing, complete)
		e.checkLinks(&g.Container, complete)
	}
	e.checkLinkPlacement(assocs)
	e.checkTemplate()
}

// checkHierarchy reports unresolvable supertypes and configured policy types.
// It returns false if property lookup may be incomplete.
func (e *engine) checkHierarchy() bool {
	complete := true
	chain, ok := model.ProductCmptTypeHierarchy(e.typ, e.resolver)
	if !ok {
		complete = false
		e.add(&MissingTypeEntry{cmpt: e.cmpt, typeName: chain[len(chain)-1].Supertype})
	}
	for _, t := range chain {
		if t.Policy == "" {
			continue
		}
		pt := e.resolver.FindPolicyCmptType(t.Policy)
		if pt == nil {
			complete = false
			e.add(&MissingTypeEntry{cmpt: e.cmpt, typeName: t.Policy})
			break
		}
		pchain, ok := model.PolicyCmptTypeHierarchy(pt, e.resolver)
		if !ok {
			complete = false
			e.add(&MissingTypeEntry{cmpt: e.cmpt, typeName: pchain[len(pchain)-1].Supertype})
		}
		break
	}
	return complete
}

// inGenerations reports whether parts with the given flag are stored in
// generations rather than on the component.
func (e *engine) inGenerations(changingOverTime bool) bool {
	return changingOverTime && e.typ.ChangingOverTime
}

type valueKey struct {
	name string
	typ  model.PropertyValueType
}

func (e *engine) checkValues(c *model.Container, props []model.Property, complete bool) {
	expected := make(map[valueKey]bool)
	byName := make(map[string]model.Property)
	for _, p := range props {
		for _, t := range p.ValueTypes() {
			expected[valueKey{p.PropertyName(), t}] = true
		}
		if _, ok := byName[p.PropertyName()]; !ok {
			byName[p.PropertyName()] = p
		}
	}

	// Values of unexpected types are claimed by the first property of the
	// same name; the rest have no property at all.
	wrong := make(map[model.Property][]*model.PropertyValue)
	var orphans []*model.PropertyValue
	for _, v := range c.Values() {
		if expected[valueKey{v.Property, v.Type}] {
			continue
		}
		if p, ok := byName[v.Property]; ok {
			wrong[p] = append(wrong[p], v)
		} else {
			orphans = append(orphans, v)
		}
	}

	for _, p := range props {
		if vs := wrong[p]; len(vs) > 0 {
			e.add(&PropertyTypeMismatchEntry{container: c, property: p, values: vs, locale: e.locale})
			continue
		}
		for _, t := range p.ValueTypes() {
			pv := c.Value(p.PropertyName(), t)
			if pv == nil {
				e.add(e.missingValue(c, p, t))
				continue
			}
			e.checkValue(c, p, pv)
		}
	}

	if !complete {
		return
	}
	for _, v := range orphans {
		e.add(&ValueWithoutPropertyEntry{container: c, value: v})
	}
}

// missingValue builds the entry for a value missing in c. A value of the same
// property found in the preceding generation or, misplaced, on the other
// side of the component/generation split is taken over.
func (e *engine) missingValue(c *model.Container, p model.Property, t model.PropertyValueType) *MissingPropertyValueEntry {
	entry := &MissingPropertyValueEntry{container: c, property: p, valueType: t, locale: e.locale}
	for _, src := range e.predecessors(c) {
		if pv := src.Value(p.PropertyName(), t); pv != nil {
			entry.predecessor = pv.Copy(pv.ID)
			entry.predecessorFrom = src.Owner()
			break
		}
	}
	return entry
}

func (e *engine) predecessors(c *model.Container) []*model.Container {
	if c == &e.cmpt.Container {
		if g := e.cmpt.LatestGeneration(); g != nil {
			return []*model.Container{&g.Container}
		}
		return nil
	}
	var out []*model.Container
	for _, g := range e.cmpt.Generations() {
		if &g.Container == c {
			if prev := g.Predecessor(); prev != nil {
				out = append(out, &prev.Container)
			}
			break
		}
	}
	return append(out, &e.cmpt.Container)
}

func (e *engine) checkValue(c *model.Container, p model.Property, pv *model.PropertyValue) {
	av := attributeValue{container: c, value: pv}
	switch p := p.(type) {
	case *model.PolicyAttribute:
		if pv.Type == model.ConfiguredValueSet && valueSetMismatch(pv, p) {
			e.add(&ValueSetMismatchEntry{attributeValue: av, attribute: p})
		}
	case *model.ProductAttribute:
		if holderMismatch(pv, p) {
			e.add(&ValueHolderMismatchEntry{attributeValue: av, attribute: p, locale: e.locale})
		}
		if multilingualMismatch(pv, p) {
			e.add(&MultilingualMismatchEntry{attributeValue: av, attribute: p, locale: e.locale})
		}
		if datatypeMismatch(pv, p) {
			e.add(&DatatypeMismatchEntry{attributeValue: av, attribute: p})
		}
		if hiddenMismatch(pv, p, e.locale) {
			e.add(&HiddenAttributeMismatchEntry{attributeValue: av, attribute: p, locale: e.locale})
		}
	}
}

func (e *engine) checkLinks(c *model.Container, complete bool) {
	if !complete {
		return
	}
	for _, l := range c.Links() {
		if e.typ.FindAssociation(l.Association, e.resolver) == nil {
			e.add(&LinkWithoutAssociationEntry{container: c, link: l})
		}
	}
}

// checkLinkPlacement reports, once per association, links stored on the wrong
// side of the component/generation split.
func (e *engine) checkLinkPlacement(assocs []*model.ProductAssociation) {
	for _, a := range assocs {
		if e.inGenerations(a.ChangingOverTime) {
			if len(e.cmpt.LinksFor(a.Name)) > 0 && e.cmpt.NumGenerations() > 0 {
				e.add(&LinkChangingOverTimeMismatchEntry{cmpt: e.cmpt, association: a, toGenerations: true})
			}
			continue
		}
		for _, g := range e.cmpt.Generations() {
			if len(g.LinksFor(a.Name)) > 0 {
				entry := &LinkChangingOverTimeMismatchEntry{cmpt: e.cmpt, association: a}
				for _, l := range e.cmpt.LatestGeneration().LinksFor(a.Name) {
					entry.links = append(entry.links, l.Copy(l.ID))
				}
				e.add(entry)
				break
			}
		}
	}
}

// checkTemplate compares the links of the component and its generations with
// those of its template. Unresolvable templates are skipped.
func (e *engine) checkTemplate() {
	if e.cmpt.Template == "" {
		return
	}
	tmpl := e.resolver.FindProductCmpt(e.cmpt.Template)
	if tmpl == nil || tmpl == e.cmpt {
		e.log.Debug("template not found", zap.String("template", e.cmpt.Template))
		return
	}
	e.compareWithTemplate(&e.cmpt.Container, &tmpl.Container)
	for _, g := range e.cmpt.Generations() {
		if tg := tmpl.GenerationEffectiveOn(g.ValidFrom); tg != nil {
			e.compareWithTemplate(&g.Container, &tg.Container)
		}
	}
}

func (e *engine) compareWithTemplate(c, tc *model.Container) {
	for _, tl := range tc.Links() {
		if tl.TemplateStatus == model.TemplateUndefined || e.typ.FindAssociation(tl.Association, e.resolver) == nil {
			continue
		}
		if c.Link(tl.Association, tl.Target) == nil {
			e.add(&MissingTemplateLinkEntry{container: c, template: e.cmpt.Template, link: tl.Copy(tl.ID)})
		}
	}
	for _, l := range c.Links() {
		if l.TemplateStatus != model.TemplateInherited {
			continue
		}
		if tl := tc.Link(l.Association, l.Target); tl == nil || tl.TemplateStatus == model.TemplateUndefined {
			e.add(&RemovedTemplateLinkEntry{container: c, template: e.cmpt.Template, link: l})
		}
	}
}
