package smartenum

import (
	"strings"

	"github.com/BurntSushi/toml"
)

var _ toml.Unmarshaler = (*Member[Kind])(nil)

// UnmarshalTOML sets m to the member data describes,
// accepting the same three shapes as [*Family.Decode]:
// a string, a number or an inline table of Value, Code and Text.
// Strings are read with UnmarshalText,
// since members encode to TOML through MarshalText.
// If data describes no member, m is set to the absent Member.
// UnmarshalTOML never returns an error.
//
// UnmarshalTOML implements github.com/BurntSushi/toml.Unmarshaler.
func (m *Member[K]) UnmarshalTOML(data any) error {
	*m = Member[K]{}
	f, ok := familyOf[K]()
	if !ok {
		return nil
	}

	switch v := data.(type) {
	case string:
		return m.UnmarshalText([]byte(v))
	case int64:
		if i, ok := int64ToInt(v); ok {
			*m, _ = f.ByValue(i)
		}
	case float64:
		if i, ok := floatToInt(v); ok {
			*m, _ = f.ByValue(i)
		}
	case map[string]any:
		*m, _ = resolveQuery(f, queryObject(tomlObject(v)))
	}

	return nil
}

type tomlObject map[string]any

func (o tomlObject) field(name string) (any, bool) {
	if v, ok := o[name]; ok {
		return v, v != nil
	}

	for k, v := range o {
		if strings.EqualFold(k, name) {
			return v, v != nil
		}
	}

	return nil, false
}

func (o tomlObject) intField(name string) (int, bool, bool) {
	v, present := o.field(name)
	if !present {
		return 0, false, false
	}

	switch v := v.(type) {
	case int64:
		i, ok := int64ToInt(v)
		return i, true, ok
	case float64:
		i, ok := floatToInt(v)
		return i, true, ok
	default:
		return 0, true, false
	}
}

func (o tomlObject) stringField(name string) (string, bool, bool) {
	v, present := o.field(name)
	if !present {
		return "", false, false
	}

	s, ok := v.(string)
	return s, true, ok
}
