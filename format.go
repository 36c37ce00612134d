package smartenum

import (
	"regexp"
	"strconv"
	"strings"
)

// A Preset names a template for rendering a Member.
type Preset string

const (
	TextValue     Preset = "TextValue"
	TextCode      Preset = "TextCode"
	CodeTextValue Preset = "CodeTextValue"
)

var presetTemplates = map[Preset]string{
	TextValue:     "{text} ({value})",
	TextCode:      "{text} ({code})",
	CodeTextValue: "{code}-{text} ({value})",
}

var tokenRegex = regexp.MustCompile(`(?i)\{(value|text|code)\}`)

func (p Preset) String() string { return string(p) }

func (p Preset) Valid() error {
	if _, ok := presetTemplates[p]; !ok {
		return &UnsupportedFormatError{Preset: p}
	}

	return nil
}

// Template returns the template p renders with.
func (p Preset) Template() (string, error) {
	if err := p.Valid(); err != nil {
		return "", err
	}

	return presetTemplates[p], nil
}

// Render renders m with the template named by p.
// If p is not a known Preset, Render returns an *UnsupportedFormatError.
func (m Member[K]) Render(p Preset) (string, error) {
	tmpl, err := p.Template()
	if err != nil {
		return "", err
	}

	return m.RenderTemplate(tmpl), nil
}

// RenderTemplate replaces every {value}, {text} and {code} in tmpl,
// in any case, with m's value, text and code.
// Any other text, braces included, is kept as is.
func (m Member[K]) RenderTemplate(tmpl string) string {
	return tokenRegex.ReplaceAllStringFunc(tmpl, func(token string) string {
		switch strings.ToLower(token) {
		case "{value}":
			return strconv.Itoa(m.e.Value)
		case "{text}":
			return m.e.Text
		default:
			return m.e.Code
		}
	})
}
