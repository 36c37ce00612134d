package smartenum

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// Equal asserts whether m is equal to r.
//
// A Member[K] equals another Member[K] when both have the same value.
// Members of another family never equal m, whatever their value.
//
// An integer of any width equals m when it is m's value.
//
// A string is compared, ignoring case, to m's text.
// Only when m has no text is the string compared, ignoring case, to m's code.
// An empty text counts as no text: a member registered with "" and code "LO"
// equals "lo" but not "", and encodes its Text as null.
// A member with neither text nor code equals no string.
//
// nil, a nil *Member[K] or an absent Member[K] equals m only when m is absent.
func (m Member[K]) Equal(r any) bool {
	switch r := r.(type) {
	case nil:
		return !m.ok

	case Member[K]:
		if !m.ok || !r.ok {
			return m.ok == r.ok
		}

		return m.e.Value == r.e.Value

	case *Member[K]:
		if r == nil {
			return !m.ok
		}

		return m.Equal(*r)

	case string:
		if !m.ok {
			return false
		}

		switch {
		case m.e.Text != "":
			return foldEqual(m.e.Text, r)
		case m.e.Code != "":
			return foldEqual(m.e.Code, r)
		default:
			return false
		}
	}

	v, ok := asInt(r)
	if !ok || !m.ok {
		return false
	}

	return int64(m.e.Value) == v
}

// Equal is [Member.Equal] where m may be nil.
// A nil m is absent.
func Equal[K Kind](m *Member[K], r any) bool {
	if m == nil {
		return Member[K]{}.Equal(r)
	}

	return m.Equal(r)
}

// Hash digests m's family name and value.
// Members that are Equal always share a Hash;
// an absent Member hashes to 0.
func (m Member[K]) Hash() uint64 {
	if !m.ok {
		return 0
	}

	d := xxhash.New()
	if r := m.Registry(); r != nil {
		_, _ = d.WriteString(r.Name())
	}

	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(m.e.Value))
	_, _ = d.Write(b[:])

	return d.Sum64()
}

// foldEqual compares a and b under Unicode case folding.
// A cases.Caser is not safe for concurrent use, so each call folds with its own.
func foldEqual(a, b string) bool {
	if a == b {
		return true
	}

	return cases.Fold().String(a) == cases.Fold().String(b)
}

func asInt(r any) (int64, bool) {
	switch v := r.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt(v)
	default:
		return 0, false
	}
}

func uintToInt(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}

	return int64(v), true
}
