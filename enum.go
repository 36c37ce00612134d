package smartenum

// Kind is implemented by the tag type of every family.
// The tag hands out the family's one Registry;
// that is the only way Member methods find the family they belong to.
//
//	type color struct{}
//
//	func (color) Registry() *smartenum.Registry { return Colors.Registry() }
//
//	var Colors = smartenum.NewFamily[color]("Color")
type Kind interface {
	Registry() *Registry
}

// Enumerable is the interface implemented by members of a family.
//
// String and Valid keep the shape enumerable constants have elsewhere,
// so a Member can be validated the same way a string-typed constant is.
type Enumerable interface {
	Kind
	String() string
	Valid() error

	Value() int
	Text() string
	Code() string
}

// An Entry is the family-erased view of a member:
// its value, text and code with no knowledge of the family's Go type.
type Entry struct {
	Value int    `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty"`
}

// IsFamily asserts whether T takes part in a family,
// either as a tag type or as a Member of one.
// A pointer type whose nil value cannot hand out a Registry is not a family.
func IsFamily[T any]() bool {
	_, ok := kindOf[T]()
	return ok
}

// MembersOf returns a snapshot of the members of T's family,
// completing the family's declarations first.
// If T is not a family, or its family has no Registry, MembersOf returns false.
func MembersOf[T any]() ([]Entry, bool) {
	r, ok := kindOf[T]()
	if !ok || r == nil {
		return nil, false
	}

	return r.Entries(), true
}

// kindOf returns the Registry T's zero value hands out
// and whether T is a family at all.
func kindOf[T any]() (*Registry, bool) {
	var t T
	k, ok := any(t).(Kind)
	if !ok {
		return nil, false
	}

	return registryOf(k)
}

// registryOf calls k.Registry, reporting false when k is a nil pointer
// whose Registry method has a value receiver.
func registryOf(k Kind) (r *Registry, ok bool) {
	defer func() {
		if recover() != nil {
			r, ok = nil, false
		}
	}()

	return k.Registry(), true
}
