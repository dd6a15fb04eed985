package model

// PersistentType tells whether a policy type maps to its own table.
type PersistentType uint8

// Persistent types.
const (
	PersistentTypeEntity PersistentType = iota
	PersistentTypeMappedSuperclass
	PersistentTypeNone
)

var persistentTypeNames = [...]string{
	PersistentTypeEntity:           "Entity",
	PersistentTypeMappedSuperclass: "MappedSuperclass",
	PersistentTypeNone:             "None",
}

func (t PersistentType) String() string {
	if int(t) < len(persistentTypeNames) {
		return persistentTypeNames[t]
	}
	return "UNKNOWN"
}

// ParsePersistentType returns the persistent type with the given name.
func ParsePersistentType(s string) (PersistentType, bool) {
	return parseName(persistentTypeNames[:], s, func(i int) PersistentType { return PersistentType(i) })
}

// InheritanceStrategy is the JPA inheritance strategy of an entity hierarchy.
type InheritanceStrategy uint8

// Inheritance strategies.
const (
	InheritanceSingleTable InheritanceStrategy = iota
	InheritanceJoinedSubclass
	InheritanceTablePerClass
)

var inheritanceNames = [...]string{
	InheritanceSingleTable:    "SINGLE_TABLE",
	InheritanceJoinedSubclass: "JOINED",
	InheritanceTablePerClass:  "TABLE_PER_CLASS",
}

// String returns the javax.persistence.InheritanceType constant name.
func (s InheritanceStrategy) String() string {
	if int(s) < len(inheritanceNames) {
		return inheritanceNames[s]
	}
	return "UNKNOWN"
}

// ParseInheritanceStrategy returns the strategy with the given name.
func ParseInheritanceStrategy(s string) (InheritanceStrategy, bool) {
	return parseName(inheritanceNames[:], s, func(i int) InheritanceStrategy { return InheritanceStrategy(i) })
}

// DiscriminatorDatatype is the column type of a discriminator column.
type DiscriminatorDatatype uint8

// Discriminator datatypes. DiscriminatorVoid means no explicit type.
const (
	DiscriminatorVoid DiscriminatorDatatype = iota
	DiscriminatorString
	DiscriminatorChar
	DiscriminatorInteger
)

var discriminatorNames = [...]string{
	DiscriminatorVoid:    "VOID",
	DiscriminatorString:  "STRING",
	DiscriminatorChar:    "CHAR",
	DiscriminatorInteger: "INTEGER",
}

// String returns the javax.persistence.DiscriminatorType constant name.
func (d DiscriminatorDatatype) String() string {
	if int(d) < len(discriminatorNames) {
		return discriminatorNames[d]
	}
	return "UNKNOWN"
}

// ParseDiscriminatorDatatype returns the datatype with the given name.
func ParseDiscriminatorDatatype(s string) (DiscriminatorDatatype, bool) {
	return parseName(discriminatorNames[:], s, func(i int) DiscriminatorDatatype { return DiscriminatorDatatype(i) })
}

// TemporalMapping maps date values to SQL column types.
type TemporalMapping uint8

// Temporal mappings.
const (
	TemporalDateOnly TemporalMapping = iota
	TemporalTimeOnly
	TemporalDateAndTime
)

var temporalNames = [...]string{
	TemporalDateOnly:    "DATE",
	TemporalTimeOnly:    "TIME",
	TemporalDateAndTime: "TIMESTAMP",
}

// String returns the javax.persistence.TemporalType constant name.
func (m TemporalMapping) String() string {
	if int(m) < len(temporalNames) {
		return temporalNames[m]
	}
	return "UNKNOWN"
}

// ParseTemporalMapping returns the mapping with the given name.
func ParseTemporalMapping(s string) (TemporalMapping, bool) {
	return parseName(temporalNames[:], s, func(i int) TemporalMapping { return TemporalMapping(i) })
}

// FetchType is the JPA fetch type of a relationship.
type FetchType uint8

// Fetch types.
const (
	FetchLazy FetchType = iota
	FetchEager
)

// String returns the javax.persistence.FetchType constant name.
func (f FetchType) String() string {
	if f == FetchEager {
		return "EAGER"
	}
	return "LAZY"
}

// CascadeType is a JPA cascade operation.
type CascadeType string

// Cascade types.
const (
	CascadeAll     CascadeType = "ALL"
	CascadePersist CascadeType = "PERSIST"
	CascadeMerge   CascadeType = "MERGE"
	CascadeRemove  CascadeType = "REMOVE"
	CascadeRefresh CascadeType = "REFRESH"
)

// PersistentTypeInfo describes how a policy type maps to the relational schema.
type PersistentTypeInfo struct {
	Enabled             bool
	Type                PersistentType
	TableName           string
	InheritanceStrategy InheritanceStrategy
	// UseTableDefinedInSupertype makes the type share the table of the
	// nearest supertype declaring one.
	UseTableDefinedInSupertype bool
	DefinesDiscriminatorColumn bool
	DiscriminatorColumnName    string
	DiscriminatorColumnLength  int
	DiscriminatorDatatype      DiscriminatorDatatype
	DiscriminatorValue         string
}

// PersistentAttributeInfo describes the column of a policy attribute.
type PersistentAttributeInfo struct {
	Transient        bool
	ColumnName       string
	Nullable         bool
	Unique           bool
	Size             int
	Precision        int
	Scale            int
	Temporal         TemporalMapping
	ConverterClass   string // qualified Java class, empty for none
	IndexName        string
	ColumnDefinition string
}

// HasConverter reports whether a custom converter class is configured.
func (i *PersistentAttributeInfo) HasConverter() bool {
	return i != nil && i.ConverterClass != ""
}

// HasIndex reports whether an index is configured.
func (i *PersistentAttributeInfo) HasIndex() bool {
	return i != nil && i.IndexName != ""
}

// PersistentAssociationInfo describes the mapping of a policy association.
type PersistentAssociationInfo struct {
	Transient                bool
	JoinTableName            string
	SourceColumnName         string
	TargetColumnName         string
	JoinColumnName           string
	JoinColumnNullable       bool
	Fetch                    FetchType
	Cascade                  []CascadeType
	OrphanRemoval            bool
	OwnerOfManyToMany        bool
	ForeignKeyDefinedInOwner bool
}

// HasJoinTable reports whether a join table is configured.
func (i *PersistentAssociationInfo) HasJoinTable() bool {
	return i != nil && i.JoinTableName != ""
}

func parseName[T any](names []string, s string, conv func(int) T) (T, bool) {
	for i, n := range names {
		if n == s {
			return conv(i), true
		}
	}
	var zero T
	return zero, false
}
