package smartenum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/smartenum"
)

func TestMemberMarshalJSON(t *testing.T) {
	for _, tc := range []struct {
		name     string
		member   any
		expected string
	}{
		{"Text-And-Code", Red, `{"Text":"Red","Code":"R","Value":1}`},
		{"Code-Only", High, `{"Text":null,"Code":"HI","Value":1}`},
		{"Neither", Bare, `{"Text":null,"Code":null,"Value":2}`},
		{"Absent", Color{}, `null`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.member)
			require.Nil(t, err)
			require.JSONEq(t, tc.expected, string(b))
		})
	}
}

func TestFamilyDecode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected Color
	}{
		// strings resolve like Resolve
		{"String-Text", `"Red"`, Red},
		{"String-Text-Any-Case", `"rEd"`, Red},
		{"String-Code-Ignored-With-Text", `"R"`, Color{}},
		{"String-Miss", `"Purple"`, Color{}},
		{"String-Blank", `"  "`, Color{}},

		// numbers look up by value
		{"Number", `2`, Blue},
		{"Number-Padded", "  3\n", Green},
		{"Number-Whole-Float", `2.0`, Blue},
		{"Number-Exponent", `1e0`, Red},
		{"Number-Fraction", `2.5`, Color{}},
		{"Number-Negative-Miss", `-1`, Color{}},
		{"Number-Too-Big", `1e400`, Color{}},

		// objects consult Value, then Code, then Text
		{"Object-Value", `{"Value":3}`, Green},
		{"Object-Value-Any-Case", `{"value":3}`, Green},
		{"Object-Code", `{"Code":"B"}`, Blue},
		{"Object-Code-Case-Sensitive", `{"Code":"b"}`, Color{}},
		{"Object-Text", `{"Text":"Red"}`, Red},
		{"Object-Text-Case-Sensitive", `{"Text":"red"}`, Color{}},
		{"Object-Canonical", `{"Text":"Green","Code":"G","Value":3}`, Green},
		{"Object-Value-Beats-Text", `{"Value":1,"Text":"Blue"}`, Red},
		{"Object-Value-Beats-Code", `{"Code":"G","Value":2}`, Blue},
		{"Object-Code-Beats-Text", `{"Code":"R","Text":"Blue"}`, Red},
		{"Object-Value-Miss-No-Fallback", `{"Value":9,"Text":"Blue"}`, Color{}},
		{"Object-Code-Miss-No-Fallback", `{"Code":"X","Text":"Blue"}`, Color{}},
		{"Object-Null-Value-Skipped", `{"Value":null,"Code":"G"}`, Green},
		{"Object-Blank-Code-Skipped", `{"Code":"  ","Text":"Blue"}`, Blue},
		{"Object-Null-Text-Code", `{"Text":null,"Code":null,"Value":1}`, Red},
		{"Object-Value-Wrong-Type", `{"Value":"1","Text":"Blue"}`, Color{}},
		{"Object-Code-Wrong-Type", `{"Code":7,"Text":"Blue"}`, Color{}},
		{"Object-Empty", `{}`, Color{}},
		{"Object-Unknown-Fields", `{"Name":"Red"}`, Color{}},

		// anything else decodes to nothing
		{"Null", `null`, Color{}},
		{"Bool", `true`, Color{}},
		{"Array", `[1]`, Color{}},
		{"Empty", ``, Color{}},
		{"Malformed", `{"Value":`, Color{}},
		{"Malformed-String", `"Red`, Color{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, ok := Colors.Decode([]byte(tc.input))

			// Assert
			require.Equal(t, !tc.expected.IsZero(), ok)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestMemberJSONRoundTrip(t *testing.T) {
	for _, m := range Colors.Members() {
		t.Run(m.String(), func(t *testing.T) {
			// Arrange
			b, err := json.Marshal(m)
			require.Nil(t, err)

			// Act
			actual, ok := Colors.Decode(b)

			// Assert
			require.True(t, ok)
			require.True(t, actual.Equal(m))
		})
	}

	for _, m := range Levels.Members() {
		// Arrange
		b, err := json.Marshal(m)
		require.Nil(t, err)

		// Act
		var actual Level
		require.Nil(t, json.Unmarshal(b, &actual))

		// Assert
		require.Equal(t, m, actual)
	}
}

func TestMemberUnmarshalJSON(t *testing.T) {
	type order struct {
		Color    Color  `json:"color"`
		Accent   *Color `json:"accent,omitempty"`
		Fallback Color  `json:"fallback"`
	}

	// Arrange
	var o order

	// Act
	err := json.Unmarshal([]byte(`{"color":"blue","accent":{"Code":"G"},"fallback":"purple"}`), &o)

	// Assert
	require.Nil(t, err)
	require.Equal(t, Blue, o.Color)
	require.NotNil(t, o.Accent)
	require.Equal(t, Green, *o.Accent)
	require.True(t, o.Fallback.IsZero())

	// Arrange
	o = order{Color: Red}

	// Act
	err = json.Unmarshal([]byte(`{"color":null}`), &o)

	// Assert
	require.Nil(t, err)
	require.True(t, o.Color.IsZero())

	// Arrange
	b, err := json.Marshal(order{Color: Red, Accent: &Blue})
	require.Nil(t, err)

	// Assert
	require.JSONEq(t, `{
		"color": {"Text":"Red","Code":"R","Value":1},
		"accent": {"Text":"Blue","Code":"B","Value":2},
		"fallback": null
	}`, string(b))
}

func TestMemberUnmarshalJSONNoRegistry(t *testing.T) {
	// Arrange
	var m smartenum.Member[orphan]

	// Act
	err := json.Unmarshal([]byte(`1`), &m)

	// Assert
	require.Nil(t, err)
	require.True(t, m.IsZero())
}

func TestMemberMarshalText(t *testing.T) {
	for _, tc := range []struct {
		name     string
		member   interface{ MarshalText() ([]byte, error) }
		expected string
	}{
		{"Text", Red, "Red"},
		{"Code", High, "HI"},
		{"Value", Bare, "2"},
		{"Absent", Color{}, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.member.MarshalText()
			require.Nil(t, err)
			require.Equal(t, tc.expected, string(b))
		})
	}
}

func TestMemberUnmarshalText(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected Level
	}{
		{"Code", "hi", High},
		{"Value", "2", Bare},
		{"Value-Padded", " 0 ", Low},
		{"Miss", "mid", Level{}},
		{"Value-Miss", "9", Level{}},
		{"Empty", "", Level{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual := High
			require.Nil(t, actual.UnmarshalText([]byte(tc.input)))
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestMemberMapKey(t *testing.T) {
	// Arrange
	counts := map[Color]int{Red: 1, Blue: 2}

	// Act
	b, err := json.Marshal(counts)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{"Red":1,"Blue":2}`, string(b))

	// Act
	var actual map[Color]int
	err = json.Unmarshal(b, &actual)

	// Assert
	require.Nil(t, err)
	require.Equal(t, counts, actual)
}

func TestMemberWire(t *testing.T) {
	// Arrange + Act
	w := Green.Wire()

	// Assert
	require.NotNil(t, w.Text)
	require.Equal(t, "Green", *w.Text)
	require.NotNil(t, w.Code)
	require.Equal(t, "G", *w.Code)
	require.Equal(t, 3, w.Value)

	// Arrange + Act
	w = Bare.Wire()

	// Assert
	require.Equal(t, smartenum.Wire{Value: 2}, w)
}
