package smartenum

import (
	"bytes"
	"encoding"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var (
	_ json.Marshaler           = Member[Kind]{}
	_ json.Unmarshaler         = (*Member[Kind])(nil)
	_ encoding.TextMarshaler   = Member[Kind]{}
	_ encoding.TextUnmarshaler = (*Member[Kind])(nil)
)

// Field names of the structured form, shared by every encoding.
const (
	WireText  = "Text"
	WireCode  = "Code"
	WireValue = "Value"
)

// Wire is the structured form every Member encodes to.
// Text and Code are nil when the member has none.
type Wire struct {
	Text  *string `json:"Text" yaml:"Text"`
	Code  *string `json:"Code" yaml:"Code"`
	Value int     `json:"Value" yaml:"Value"`
}

// Wire returns the structured form of m.
func (m Member[K]) Wire() Wire {
	w := Wire{Value: m.e.Value}
	if m.e.Text != "" {
		text := m.e.Text
		w.Text = &text
	}

	if m.e.Code != "" {
		code := m.e.Code
		w.Code = &code
	}

	return w
}

// MarshalJSON encodes m as {"Text": …, "Code": …, "Value": …}.
// An absent Member encodes as null.
//
// MarshalJSON implements encoding/json.Marshaler.
func (m Member[K]) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}

	return json.Marshal(m.Wire())
}

// UnmarshalJSON sets m to the member data describes.
// See [*Family.Decode] for the shapes accepted.
// If data describes no member, m is set to the absent Member.
// UnmarshalJSON never returns an error.
//
// UnmarshalJSON implements encoding/json.Unmarshaler.
func (m *Member[K]) UnmarshalJSON(data []byte) error {
	*m = Member[K]{}
	if f, ok := familyOf[K](); ok {
		*m, _ = f.Decode(data)
	}

	return nil
}

// MarshalText encodes m as its text, or its code if it has no text,
// or, lacking both, its value.
// An absent Member encodes as an empty string.
//
// MarshalText implements encoding.TextMarshaler.
func (m Member[K]) MarshalText() ([]byte, error) {
	switch {
	case !m.ok:
		return []byte{}, nil
	case m.e.Text != "":
		return []byte(m.e.Text), nil
	case m.e.Code != "":
		return []byte(m.e.Code), nil
	default:
		return []byte(strconv.Itoa(m.e.Value)), nil
	}
}

// UnmarshalText sets m to the member text resolves to.
// Failing that, if text is a decimal integer, m is set to the member with that value.
// Otherwise, m is set to the absent Member.
// UnmarshalText never returns an error.
//
// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Member[K]) UnmarshalText(text []byte) error {
	*m = Member[K]{}
	f, ok := familyOf[K]()
	if !ok || len(text) == 0 {
		return nil
	}

	s := string(text)
	if found, ok := f.Resolve(s); ok {
		*m = found
		return nil
	}

	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		*m, _ = f.ByValue(v)
	}

	return nil
}

// Decode finds the member JSON-encoded data describes.
//
// Decode accepts three shapes, recognized in this order:
//   - a string, resolved with [*Family.Resolve];
//   - a number, looked up with [*Family.ByValue];
//   - an object with any of the fields Value, Code and Text.
//
// For an object, the first field present in the order Value, Code, Text decides:
// Value is looked up with ByValue, a non-blank Code with ByCode,
// and a non-blank Text with ByText.
// If that lookup finds nothing, Decode does not fall back to later fields.
//
// Any other input, including malformed input, decodes to no member.
func (f *Family[K]) Decode(data []byte) (Member[K], bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Member[K]{}, false
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Member[K]{}, false
		}

		return f.Resolve(s)

	case c == '-' || ('0' <= c && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return Member[K]{}, false
		}

		v, ok := numberToInt(n)
		if !ok {
			return Member[K]{}, false
		}

		return f.ByValue(v)

	case c == '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return Member[K]{}, false
		}

		return resolveQuery(f, queryObject(jsonObject(obj)))

	default:
		return Member[K]{}, false
	}
}

// A wireObject exposes the fields of a structured form being decoded.
// present reports whether the field is set to anything other than null;
// ok reports whether its value has the expected type.
type wireObject interface {
	intField(name string) (v int, present, ok bool)
	stringField(name string) (s string, present, ok bool)
}

type wireField int

const (
	byNone wireField = iota
	byValue
	byCode
	byText
)

// A wireQuery is the single lookup a structured form decodes through.
type wireQuery struct {
	by    wireField
	value int
	str   string
	ok    bool
}

// queryObject picks the first field of o present in the order Value, Code, Text.
// Code and Text count as present only when not blank.
func queryObject(o wireObject) wireQuery {
	if v, present, ok := o.intField(WireValue); present {
		return wireQuery{by: byValue, value: v, ok: ok}
	}

	if s, present, ok := o.stringField(WireCode); present && (!ok || strings.TrimSpace(s) != "") {
		return wireQuery{by: byCode, str: s, ok: ok}
	}

	if s, present, ok := o.stringField(WireText); present && (!ok || strings.TrimSpace(s) != "") {
		return wireQuery{by: byText, str: s, ok: ok}
	}

	return wireQuery{}
}

func resolveQuery[K Kind](f *Family[K], q wireQuery) (Member[K], bool) {
	if !q.ok {
		return Member[K]{}, false
	}

	switch q.by {
	case byValue:
		return f.ByValue(q.value)
	case byCode:
		return f.ByCode(q.str)
	case byText:
		return f.ByText(q.str)
	default:
		return Member[K]{}, false
	}
}

type jsonObject map[string]json.RawMessage

// field returns the raw value under name,
// preferring an exact match over one differing in case.
func (o jsonObject) field(name string) (json.RawMessage, bool) {
	if raw, ok := o[name]; ok {
		return raw, !isJSONNull(raw)
	}

	for k, raw := range o {
		if strings.EqualFold(k, name) {
			return raw, !isJSONNull(raw)
		}
	}

	return nil, false
}

func (o jsonObject) intField(name string) (int, bool, bool) {
	raw, present := o.field(name)
	if !present {
		return 0, false, false
	}

	// json.Number also accepts a quoted number
	if raw = bytes.TrimSpace(raw); len(raw) > 0 && raw[0] == '"' {
		return 0, true, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, true, false
	}

	v, ok := numberToInt(n)
	return v, true, ok
}

func (o jsonObject) stringField(name string) (string, bool, bool) {
	raw, present := o.field(name)
	if !present {
		return "", false, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, false
	}

	return s, true, true
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func numberToInt(n json.Number) (int, bool) {
	if i, err := n.Int64(); err == nil {
		return int64ToInt(i)
	}

	f, err := n.Float64()
	if err != nil {
		return 0, false
	}

	return floatToInt(f)
}

func int64ToInt(i int64) (int, bool) {
	if int64(int(i)) != i {
		return 0, false
	}

	return int(i), true
}

// floatToInt converts f when it holds a whole number in int's range.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64ToInt(int64(f))
}

// familyOf is FamilyOf when K hands out a Registry.
func familyOf[K Kind]() (*Family[K], bool) {
	f := FamilyOf[K]()
	if f.r == nil {
		return nil, false
	}

	return f, true
}
