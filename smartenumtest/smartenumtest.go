/*
Package smartenumtest exposes assertions for code declaring or extending smartenum families.
Used in unit tests by plugins injecting members, to check a family still behaves once they have.
*/
package smartenumtest

import (
	"encoding/json"
	"fmt"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/smartenum"
	"gopkg.in/yaml.v3"
)

// RequireResolvable fails t if any member of f with a text or code
// is shadowed by an earlier member resolving from the same string.
func RequireResolvable[K smartenum.Kind](t require.TestingT, f *smartenum.Family[K]) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for _, m := range f.Members() {
		key := m.Text()
		if key == "" {
			key = m.Code()
		}

		if key == "" {
			continue
		}

		found, ok := f.Resolve(key)
		require.True(t, ok, "%s: %q resolves to no member", f.Name(), key)
		require.Equal(t, m.Value(), found.Value(), "%s: %q resolves to member %d, not %d", f.Name(), key, found.Value(), m.Value())
	}
}

// RequireRoundTrip fails t if any member of f does not decode back to itself
// from its JSON, YAML or text encoding.
func RequireRoundTrip[K smartenum.Kind](t require.TestingT, f *smartenum.Family[K]) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for _, m := range f.Members() {
		name := fmt.Sprintf("%s %d", f.Name(), m.Value())

		b, err := json.Marshal(m)
		require.Nil(t, err, name)
		fromJSON, ok := f.Decode(b)
		require.True(t, ok, "%s: %s decodes to no member", name, b)
		require.Equal(t, m, fromJSON, "%s: json", name)

		b, err = yaml.Marshal(m)
		require.Nil(t, err, name)
		var fromYAML smartenum.Member[K]
		require.Nil(t, yaml.Unmarshal(b, &fromYAML), name)
		require.Equal(t, m, fromYAML, "%s: yaml", name)

		b, err = m.MarshalText()
		require.Nil(t, err, name)
		var fromText smartenum.Member[K]
		require.Nil(t, fromText.UnmarshalText(b), name)
		require.Equal(t, m, fromText, "%s: text %q", name, b)
	}
}
