package smartenum

import (
	"fmt"
	"log/slog"
)

var (
	_ Enumerable     = Member[Kind]{}
	_ slog.LogValuer = Member[Kind]{}
)

// A Member is one value of the family K.
//
// Members are only made by registering them with their family,
// and never change afterwards.
// The zero Member is absent: it belongs to no family's Registry,
// equals only nil or another absent Member,
// and encodes as JSON null.
type Member[K Kind] struct {
	e  Entry
	ok bool
}

func newMember[K Kind](e Entry) Member[K] { return Member[K]{e: e, ok: true} }

// Value returns the member's numeric value.
func (m Member[K]) Value() int { return m.e.Value }

// Text returns the member's display text.
func (m Member[K]) Text() string { return m.e.Text }

// Code returns the member's short code or an empty string if it has none.
func (m Member[K]) Code() string { return m.e.Code }

// Entry returns the family-erased view of m.
func (m Member[K]) Entry() Entry { return m.e }

// IsZero asserts whether m is the absent Member.
func (m Member[K]) IsZero() bool { return !m.ok }

// Registry returns the Registry of the family m belongs to.
func (Member[K]) Registry() *Registry {
	var k K
	return k.Registry()
}

// String returns the member's display text.
//
// String implements fmt.Stringer.
func (m Member[K]) String() string { return m.e.Text }

// Valid asserts whether m is a member registered with its family.
func (m Member[K]) Valid() error {
	if !m.ok {
		return fmt.Errorf("%w: absent member", ErrNotValid)
	}

	r := m.Registry()
	if r == nil {
		return fmt.Errorf("%w: member has no registry", ErrNotValid)
	}

	e, ok := r.find(func(e Entry) bool { return e.Value == m.e.Value })
	if !ok || e != m.e {
		return fmt.Errorf("%w: %s has no member %d", ErrNotValid, r.Name(), m.e.Value)
	}

	return nil
}

// LogValue groups the member's family, value, text and code.
//
// LogValue implements log/slog.LogValuer.
func (m Member[K]) LogValue() slog.Value {
	if !m.ok {
		return slog.StringValue(LogAbsentVal)
	}

	attrs := []slog.Attr{
		slog.Int(LogValueKey, m.e.Value),
		slog.String(LogTextKey, m.e.Text),
	}

	if r := m.Registry(); r != nil {
		attrs = append([]slog.Attr{slog.String(LogFamilyKey, r.Name())}, attrs...)
	}

	if m.e.Code != "" {
		attrs = append(attrs, slog.String(LogCodeKey, m.e.Code))
	}

	return slog.GroupValue(attrs...)
}
