package load

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/faktorgen/model/value"
)

// Snapshot is the serialized form of one model project.
type Snapshot struct {
	Project string `yaml:"project"`
	Locale  string `yaml:"locale,omitempty"`
	// References are the snapshot files of the projects on the search path,
	// relative to the referencing file.
	References   []string       `yaml:"references,omitempty"`
	PolicyTypes  []*PolicyType  `yaml:"policy_types,omitempty"`
	ProductTypes []*ProductType `yaml:"product_types,omitempty"`
	Components   []*Component   `yaml:"components,omitempty"`
}

// PolicyType is a serialized policy component type.
type PolicyType struct {
	Name                  string               `yaml:"name"`
	Supertype             string               `yaml:"supertype,omitempty"`
	Abstract              bool                 `yaml:"abstract,omitempty"`
	ConfigurableByProduct bool                 `yaml:"configurable_by_product,omitempty"`
	ProductType           string               `yaml:"product_type,omitempty"`
	Attributes            []*PolicyAttribute   `yaml:"attributes,omitempty"`
	Associations          []*PolicyAssociation `yaml:"associations,omitempty"`
	Rules                 []*Rule              `yaml:"rules,omitempty"`
	Persistence           *TypePersistence     `yaml:"persistence,omitempty"`
	Description           string               `yaml:"description,omitempty"`
}

// PolicyAttribute is a serialized policy attribute.
type PolicyAttribute struct {
	Name                        string                `yaml:"name"`
	Datatype                    string                `yaml:"datatype"`
	Kind                        string                `yaml:"kind,omitempty"`
	ValueSetConfiguredByProduct bool                  `yaml:"value_set_configured_by_product,omitempty"`
	ChangingOverTime            bool                  `yaml:"changing_over_time,omitempty"`
	Default                     *string               `yaml:"default,omitempty"`
	ValueSet                    *ValueSet             `yaml:"value_set,omitempty"`
	Persistence                 *AttributePersistence `yaml:"persistence,omitempty"`
	Deprecation                 *Deprecation          `yaml:"deprecation,omitempty"`
	Description                 string                `yaml:"description,omitempty"`
}

// PolicyAssociation is a serialized policy association.
type PolicyAssociation struct {
	Name        string                  `yaml:"name"`
	Plural      string                  `yaml:"plural,omitempty"`
	Target      string                  `yaml:"target"`
	Kind        string                  `yaml:"kind,omitempty"`
	Min         int                     `yaml:"min,omitempty"`
	Max         Cardinality             `yaml:"max,omitempty"`
	Inverse     string                  `yaml:"inverse,omitempty"`
	Matching    string                  `yaml:"matching,omitempty"`
	Persistence *AssociationPersistence `yaml:"persistence,omitempty"`
	Deprecation *Deprecation            `yaml:"deprecation,omitempty"`
}

// Rule is a serialized validation rule.
type Rule struct {
	Name               string `yaml:"name"`
	MessageCode        string `yaml:"message_code,omitempty"`
	Configurable       bool   `yaml:"configurable,omitempty"`
	ActivatedByDefault bool   `yaml:"activated_by_default,omitempty"`
	ChangingOverTime   bool   `yaml:"changing_over_time,omitempty"`
}

// TypePersistence is the serialized table mapping of a policy type.
type TypePersistence struct {
	Enabled                    bool   `yaml:"enabled"`
	Type                       string `yaml:"type,omitempty"`
	Table                      string `yaml:"table,omitempty"`
	Inheritance                string `yaml:"inheritance,omitempty"`
	UseTableDefinedInSupertype bool   `yaml:"use_supertype_table,omitempty"`
	DefinesDiscriminator       bool   `yaml:"defines_discriminator,omitempty"`
	DiscriminatorColumn        string `yaml:"discriminator_column,omitempty"`
	DiscriminatorLength        int    `yaml:"discriminator_length,omitempty"`
	DiscriminatorType          string `yaml:"discriminator_type,omitempty"`
	DiscriminatorValue         string `yaml:"discriminator_value,omitempty"`
}

// AttributePersistence is the serialized column mapping of an attribute.
type AttributePersistence struct {
	Transient        bool   `yaml:"transient,omitempty"`
	Column           string `yaml:"column,omitempty"`
	Nullable         *bool  `yaml:"nullable,omitempty"` // nil means nullable
	Unique           bool   `yaml:"unique,omitempty"`
	Size             int    `yaml:"size,omitempty"`
	Precision        int    `yaml:"precision,omitempty"`
	Scale            int    `yaml:"scale,omitempty"`
	Temporal         string `yaml:"temporal,omitempty"`
	Converter        string `yaml:"converter,omitempty"`
	Index            string `yaml:"index,omitempty"`
	ColumnDefinition string `yaml:"column_definition,omitempty"`
}

// AssociationPersistence is the serialized mapping of an association.
type AssociationPersistence struct {
	Transient                bool     `yaml:"transient,omitempty"`
	JoinTable                string   `yaml:"join_table,omitempty"`
	SourceColumn             string   `yaml:"source_column,omitempty"`
	TargetColumn             string   `yaml:"target_column,omitempty"`
	JoinColumn               string   `yaml:"join_column,omitempty"`
	JoinColumnNullable       *bool    `yaml:"join_column_nullable,omitempty"` // nil means nullable
	Fetch                    string   `yaml:"fetch,omitempty"`
	Cascade                  []string `yaml:"cascade,omitempty"`
	OrphanRemoval            bool     `yaml:"orphan_removal,omitempty"`
	OwnerOfManyToMany        bool     `yaml:"owner_of_many_to_many,omitempty"`
	ForeignKeyDefinedInOwner bool     `yaml:"foreign_key_in_owner,omitempty"`
}

// Deprecation is a serialized deprecation marker.
type Deprecation struct {
	Since         string `yaml:"since,omitempty"`
	ForRemoval    bool   `yaml:"for_removal,omitempty"`
	Documentation string `yaml:"documentation,omitempty"`
}

// ProductType is a serialized product component type.
type ProductType struct {
	Name             string                `yaml:"name"`
	Supertype        string                `yaml:"supertype,omitempty"`
	Abstract         bool                  `yaml:"abstract,omitempty"`
	PolicyType       string                `yaml:"policy_type,omitempty"`
	ChangingOverTime bool                  `yaml:"changing_over_time,omitempty"`
	Attributes       []*ProductAttribute   `yaml:"attributes,omitempty"`
	Associations     []*ProductAssociation `yaml:"associations,omitempty"`
	TableUsages      []*TableUsage         `yaml:"table_usages,omitempty"`
	Methods          []*Method             `yaml:"methods,omitempty"`
	Description      string                `yaml:"description,omitempty"`
}

// ProductAttribute is a serialized product attribute.
type ProductAttribute struct {
	Name             string       `yaml:"name"`
	Datatype         string       `yaml:"datatype"`
	MultiValue       bool         `yaml:"multi_value,omitempty"`
	Multilingual     bool         `yaml:"multilingual,omitempty"`
	Hidden           bool         `yaml:"hidden,omitempty"`
	ChangingOverTime bool         `yaml:"changing_over_time,omitempty"`
	Default          *string      `yaml:"default,omitempty"`
	ValueSet         *ValueSet    `yaml:"value_set,omitempty"`
	Deprecation      *Deprecation `yaml:"deprecation,omitempty"`
	Description      string       `yaml:"description,omitempty"`
}

// ProductAssociation is a serialized product association.
type ProductAssociation struct {
	Name             string       `yaml:"name"`
	Plural           string       `yaml:"plural,omitempty"`
	Target           string       `yaml:"target"`
	Min              int          `yaml:"min,omitempty"`
	Max              Cardinality  `yaml:"max,omitempty"`
	ChangingOverTime bool         `yaml:"changing_over_time,omitempty"`
	Matching         string       `yaml:"matching,omitempty"`
	Deprecation      *Deprecation `yaml:"deprecation,omitempty"`
}

// TableUsage is a serialized table structure usage.
type TableUsage struct {
	Role             string   `yaml:"role"`
	Structures       []string `yaml:"structures,omitempty"`
	Mandatory        bool     `yaml:"mandatory,omitempty"`
	ChangingOverTime bool     `yaml:"changing_over_time,omitempty"`
}

// Method is a serialized method or formula signature.
type Method struct {
	Name             string       `yaml:"name"`
	Datatype         string       `yaml:"datatype,omitempty"`
	Parameters       []*Parameter `yaml:"parameters,omitempty"`
	Formula          string       `yaml:"formula,omitempty"`
	FormulaMandatory bool         `yaml:"formula_mandatory,omitempty"`
	ChangingOverTime bool         `yaml:"changing_over_time,omitempty"`
	Deprecation      *Deprecation `yaml:"deprecation,omitempty"`
}

// Parameter is a serialized method parameter.
type Parameter struct {
	Name     string `yaml:"name"`
	Datatype string `yaml:"datatype"`
}

// Component is a serialized product component.
type Component struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	RuntimeID   string        `yaml:"runtime_id,omitempty"`
	Template    string        `yaml:"template,omitempty"`
	IsTemplate  bool          `yaml:"is_template,omitempty"`
	Values      []*Value      `yaml:"values,omitempty"`
	Links       []*Link       `yaml:"links,omitempty"`
	Generations []*Generation `yaml:"generations,omitempty"`
}

// Generation is a serialized generation. ValidFrom is a date (YYYY-MM-DD).
type Generation struct {
	ValidFrom string   `yaml:"valid_from"`
	Values    []*Value `yaml:"values,omitempty"`
	Links     []*Link  `yaml:"links,omitempty"`
}

// Value is a serialized property value.
type Value struct {
	ID             string    `yaml:"id,omitempty"`
	Property       string    `yaml:"property"`
	Type           string    `yaml:"type"`
	Holder         *Holder   `yaml:"holder,omitempty"`
	ValueSet       *ValueSet `yaml:"value_set,omitempty"`
	TableContent   string    `yaml:"table_content,omitempty"`
	Expression     string    `yaml:"expression,omitempty"`
	Active         bool      `yaml:"active,omitempty"`
	TemplateStatus string    `yaml:"template_status,omitempty"`
}

// Link is a serialized product component link.
type Link struct {
	ID             string      `yaml:"id,omitempty"`
	Association    string      `yaml:"association"`
	Target         string      `yaml:"target"`
	Min            int         `yaml:"min,omitempty"`
	Max            Cardinality `yaml:"max,omitempty"`
	Default        int         `yaml:"default,omitempty"`
	TemplateStatus string      `yaml:"template_status,omitempty"`
}

// Holder is a serialized value holder. A holder is multi valued if Multi is
// set or Values is not empty; a single holder without Value holds null.
type Holder struct {
	Multi  bool          `yaml:"multi,omitempty"`
	Value  *HolderItem   `yaml:"value,omitempty"`
	Values []*HolderItem `yaml:"values,omitempty"`
}

// HolderItem is a value inside a holder: a scalar for plain strings, a
// mapping from language tag to text for international strings.
type HolderItem struct {
	value.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HolderItem) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		h.Value = value.String(n.Value)
	case yaml.MappingNode:
		var texts map[string]string
		if err := n.Decode(&texts); err != nil {
			return err
		}
		h.Value = &value.InternationalStringValue{Texts: texts}
	default:
		return fmt.Errorf("line %d: value must be a string or a mapping of texts", n.Line)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HolderItem) MarshalYAML() (any, error) {
	switch v := h.Value.(type) {
	case value.StringValue:
		return string(v), nil
	case *value.InternationalStringValue:
		return v.Texts, nil
	default:
		return nil, nil
	}
}

// ValueSet is a serialized value set.
type ValueSet struct {
	Kind      string   `yaml:"kind"`
	Values    []string `yaml:"values,omitempty"`
	Lower     string   `yaml:"lower,omitempty"`
	Upper     string   `yaml:"upper,omitempty"`
	Step      string   `yaml:"step,omitempty"`
	MaxLength int      `yaml:"max_length,omitempty"`
	Null      bool     `yaml:"null,omitempty"`
}

// Cardinality is an upper bound; "*" stands for many.
type Cardinality int

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cardinality) UnmarshalYAML(n *yaml.Node) error {
	if n.Value == "*" {
		*c = -1
		return nil
	}
	var i int
	if err := n.Decode(&i); err != nil {
		return fmt.Errorf("line %d: cardinality must be a number or \"*\"", n.Line)
	}
	*c = Cardinality(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Cardinality) MarshalYAML() (any, error) {
	if c < 0 {
		return "*", nil
	}
	return int(c), nil
}

// MarshalSnapshot encodes s as YAML.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalSnapshot decodes a YAML snapshot. Unknown keys are rejected.
func UnmarshalSnapshot(buf []byte) (*Snapshot, error) {
	s := &Snapshot{}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}
