package smartenum

// A Family is the typed handle on one enumeration's Registry.
// K is the family's tag type; members of the family are Member[K].
//
// Declare members as package variables so they register during package initialization:
//
//	var (
//		Colors = smartenum.NewFamily[color]("Color")
//
//		Red   = Colors.MustRegister("Red", smartenum.WithValue(1), smartenum.WithCode("R"))
//		Blue  = Colors.MustRegister("Blue", smartenum.WithValue(2), smartenum.WithCode("B"))
//		Green = Colors.MustRegister("Green", smartenum.WithValue(3), smartenum.WithCode("G"))
//	)
type Family[K Kind] struct {
	r *Registry
}

// NewFamily constructs a Family backed by a new Registry called name.
func NewFamily[K Kind](name string, opts ...RegistryOpt) *Family[K] {
	return &Family[K]{r: NewRegistry(name, opts...)}
}

// FamilyOf returns the Family for the Registry K hands out.
func FamilyOf[K Kind]() *Family[K] {
	var k K
	return &Family[K]{r: k.Registry()}
}

// Name returns the name of the family.
func (f *Family[K]) Name() string { return f.r.Name() }

// Registry returns the family's Registry.
//
// Registry lets a family's tag type implement Kind.
func (f *Family[K]) Registry() *Registry { return f.r }

// Register registers a member with the provided text.
// See [*Registry.Register].
func (f *Family[K]) Register(text string, opts ...MemberOpt) (Member[K], error) {
	e, err := f.r.Register(text, opts...)
	if err != nil {
		return Member[K]{}, err
	}

	return newMember[K](e), nil
}

// MustRegister calls Register and panics if it returns an error.
// MustRegister is meant for package-level member declarations.
func (f *Family[K]) MustRegister(text string, opts ...MemberOpt) Member[K] {
	m, err := f.Register(text, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Inject registers a member outside the family's declarations.
// See [*Registry.Inject].
func (f *Family[K]) Inject(opts ...MemberOpt) (Member[K], error) {
	e, err := f.r.Inject(opts...)
	if err != nil {
		return Member[K]{}, err
	}

	return newMember[K](e), nil
}

// ByValue returns the first member whose value is v.
func (f *Family[K]) ByValue(v int) (Member[K], bool) {
	return f.find(func(e Entry) bool { return e.Value == v })
}

// ByText returns the first member whose text is exactly text.
func (f *Family[K]) ByText(text string) (Member[K], bool) {
	return f.find(func(e Entry) bool { return e.Text == text })
}

// ByCode returns the first member whose code is exactly code.
func (f *Family[K]) ByCode(code string) (Member[K], bool) {
	return f.find(func(e Entry) bool { return e.Code != "" && e.Code == code })
}

// Resolve returns the first member equal to input
// according to [Member.Equal].
// input may be a Member[K], a *Member[K], any integer type or a string.
func (f *Family[K]) Resolve(input any) (Member[K], bool) {
	return f.find(func(e Entry) bool { return newMember[K](e).Equal(input) })
}

// ResolveOr calls Resolve, returning def if no member matches input.
func (f *Family[K]) ResolveOr(input any, def Member[K]) Member[K] {
	if m, ok := f.Resolve(input); ok {
		return m
	}

	return def
}

// Members returns every member in the order they were registered.
func (f *Family[K]) Members() []Member[K] {
	entries := f.r.Entries()
	ms := make([]Member[K], len(entries))
	for i, e := range entries {
		ms[i] = newMember[K](e)
	}

	return ms
}

// Len returns the number of members.
func (f *Family[K]) Len() int { return f.r.Len() }

func (f *Family[K]) find(match func(Entry) bool) (Member[K], bool) {
	e, ok := f.r.find(match)
	if !ok {
		return Member[K]{}, false
	}

	return newMember[K](e), true
}
