package smartenum

import (
	"fmt"
	"math"
	"sync"

	"github.com/xy-planning-network/smartenum/logger"
)

// A Registry holds, in insertion order, every member of one family.
//
// A Registry only grows: members are appended, never replaced or removed,
// and no two members share a value.
// A family's declarations either run during package initialization,
// or lazily once through WithDeclarations.
// Every read completes those declarations first.
type Registry struct {
	name    string
	declare func(*Registry)
	once    sync.Once
	log     logger.Logger

	mu      sync.RWMutex
	entries []Entry
}

// A RegistryOpt is a functional option configuring a Registry when constructing a new one.
type RegistryOpt func(*Registry)

// WithDeclarations sets a function declaring the family's members,
// run exactly once before the Registry is first read or injected into.
//
// fn must register through Register or MustRegister;
// calling Inject, Init or any read from fn deadlocks.
func WithDeclarations(fn func(*Registry)) RegistryOpt {
	return func(r *Registry) {
		r.declare = fn
	}
}

// WithLogger sets the logger.Logger the Registry reports registrations to.
func WithLogger(l logger.Logger) RegistryOpt {
	return func(r *Registry) {
		r.log = l
	}
}

// NewRegistry constructs an empty Registry for the family called name.
func NewRegistry(name string, opts ...RegistryOpt) *Registry {
	r := &Registry{name: name}
	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		r.log = defaultLogger()
	}

	return r
}

// Name returns the name of the family.
func (r *Registry) Name() string { return r.name }

// Init completes the family's declarations, if any were set with WithDeclarations.
// Init is safe to call many times and from many goroutines.
func (r *Registry) Init() {
	r.once.Do(func() {
		if r.declare != nil {
			r.declare(r)
		}
	})
}

// Register appends a member with the provided text.
// Without WithValue, the member takes the highest value registered so far plus one,
// or 0 if it is the first member.
//
// If the value is taken, Register returns a *DuplicateValueError
// and the Registry is left unchanged.
func (r *Registry) Register(text string, opts ...MemberOpt) (Entry, error) {
	return r.register(append([]MemberOpt{WithText(text)}, opts...))
}

// MustRegister calls Register and panics if it returns an error.
func (r *Registry) MustRegister(text string, opts ...MemberOpt) Entry {
	e, err := r.Register(text, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// Inject registers a member outside the family's declarations,
// such as from tests or plugins.
// Inject first completes the declarations,
// then validates exactly as Register does.
func (r *Registry) Inject(opts ...MemberOpt) (Entry, error) {
	r.Init()
	return r.register(opts)
}

// Entries returns a copy of every member in insertion order.
func (r *Registry) Entries() []Entry {
	r.Init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]Entry, 0, len(r.entries)), r.entries...)
}

// Len returns the number of members.
func (r *Registry) Len() int {
	r.Init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// find returns the first entry match accepts.
func (r *Registry) find(match func(Entry) bool) (Entry, bool) {
	r.Init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if match(e) {
			return e, true
		}
	}

	return Entry{}, false
}

func (r *Registry) register(opts []MemberOpt) (Entry, error) {
	var mo memberOpts
	for _, opt := range opts {
		opt(&mo)
	}

	r.mu.Lock()
	e, err := r.admit(mo)
	if err == nil {
		r.entries = append(r.entries, e)
	}
	r.mu.Unlock()

	lc := &logger.LogContext{
		Family: r.name,
		Data:   map[string]any{"value": e.Value, "text": e.Text, "code": e.Code},
		Error:  err,
	}
	if err != nil {
		r.log.Error("member rejected", lc)
		return Entry{}, err
	}

	r.log.Debug("registered member", lc)
	return e, nil
}

// admit builds the entry mo describes,
// failing if its value is taken or no value is left to assign.
// The caller holds r.mu.
func (r *Registry) admit(mo memberOpts) (Entry, error) {
	e := Entry{Text: mo.text, Code: mo.code, Value: mo.value}
	if !mo.hasValue {
		v, ok := r.nextValue()
		if !ok {
			return e, fmt.Errorf("%w: %s has no value above %d to assign", ErrNotValid, r.name, math.MaxInt)
		}

		e.Value = v
	}

	for _, existing := range r.entries {
		if existing.Value == e.Value {
			return e, &DuplicateValueError{Family: r.name, Value: e.Value}
		}
	}

	return e, nil
}

// nextValue is the value given to a member registered without one.
// It reports false once the highest value is math.MaxInt.
// The caller holds r.mu.
func (r *Registry) nextValue() (int, bool) {
	if len(r.entries) == 0 {
		return 0, true
	}

	highest := r.entries[0].Value
	for _, e := range r.entries[1:] {
		if e.Value > highest {
			highest = e.Value
		}
	}

	if highest == math.MaxInt {
		return 0, false
	}

	return highest + 1, true
}

var defaultLogger = sync.OnceValue(func() logger.Logger {
	return logger.NewLogger(
		logger.WithLevel(logger.EnvVarOrLogLevel("SMARTENUM_LOG_LEVEL", logger.LogLevelWarn)),
	)
})
