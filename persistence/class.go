package persistence

// Class is the simple name of a standard JPA class, resolved against the
// provider's package prefix.
type Class string

// Standard JPA classes.
const (
	Entity              Class = "Entity"
	MappedSuperclass    Class = "MappedSuperclass"
	Table               Class = "Table"
	Inheritance         Class = "Inheritance"
	InheritanceType     Class = "InheritanceType"
	DiscriminatorColumn Class = "DiscriminatorColumn"
	DiscriminatorType   Class = "DiscriminatorType"
	DiscriminatorValue  Class = "DiscriminatorValue"
	Column              Class = "Column"
	Temporal            Class = "Temporal"
	TemporalType        Class = "TemporalType"
	Transient           Class = "Transient"
	Convert             Class = "Convert"
	OneToMany           Class = "OneToMany"
	ManyToOne           Class = "ManyToOne"
	OneToOne            Class = "OneToOne"
	ManyToMany          Class = "ManyToMany"
	JoinColumn          Class = "JoinColumn"
	JoinTable           Class = "JoinTable"
	FetchType           Class = "FetchType"
	CascadeType         Class = "CascadeType"
)
