package entity

// Kind is the record category a key belongs to.
type Kind string

const (
	KindContributor Kind = "contributor"
	KindTeam        Kind = "team"
)

// scopeSeparator joins kind and name in a scoped identifier.
const scopeSeparator = ":"

// Key identifies a loaded record uniquely across all collections. It is
// comparable and used directly as a map key.
type Key struct {
	Kind Kind
	Name string
}

// NewKey builds a key for the given kind and name.
func NewKey(kind Kind, name string) Key {
	return Key{Kind: kind, Name: name}
}

// ScopedID returns the stable "kind:name" form used as a node and link
// identifier in the graph document.
func (k Key) ScopedID() string {
	return string(k.Kind) + scopeSeparator + k.Name
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return k.ScopedID()
}

// Equal reports whether both keys name the same record.
func (k Key) Equal(other Key) bool {
	return k == other
}

// Less orders keys by kind, then by name.
func (k Key) Less(other Key) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.Name < other.Name
}
