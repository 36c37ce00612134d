package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xy-planning-network/smartenum"
	"gopkg.in/yaml.v3"
)

// A Declaration describes one member of a Manifest.
// A nil Value leaves the member to take the next value in its family.
type Declaration struct {
	Value *int   `yaml:"value" toml:"value"`
	Text  string `yaml:"text" toml:"text"`
	Code  string `yaml:"code" toml:"code"`
}

// Opts converts d into the options registering it.
func (d Declaration) Opts() []smartenum.MemberOpt {
	opts := []smartenum.MemberOpt{smartenum.WithText(d.Text), smartenum.WithCode(d.Code)}
	if d.Value != nil {
		opts = append(opts, smartenum.WithValue(*d.Value))
	}

	return opts
}

// A Manifest lists the members of one family.
type Manifest struct {
	Family  string        `yaml:"family" toml:"family"`
	Members []Declaration `yaml:"members" toml:"members"`
}

// ParseYAML reads a Manifest from YAML.
// Unknown fields are rejected.
func ParseYAML(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := new(Manifest)
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: yaml manifest: %s", smartenum.ErrBadConfig, err)
	}

	return m, m.Validate()
}

// ParseTOML reads a Manifest from TOML.
// Unknown fields are rejected.
func ParseTOML(data []byte) (*Manifest, error) {
	m := new(Manifest)
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(m)
	if err != nil {
		return nil, fmt.Errorf("%w: toml manifest: %s", smartenum.ErrBadConfig, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: toml manifest: unknown field %s", smartenum.ErrBadConfig, undecoded[0])
	}

	return m, m.Validate()
}

// Load reads the Manifest at path, choosing the parser by its extension:
// .yaml or .yml for YAML, .toml for TOML.
func Load(path string) (*Manifest, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS reads the Manifest called name from fsys, as Load does.
func LoadFS(fsys fs.FS, name string) (*Manifest, error) {
	var parse func([]byte) (*Manifest, error)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return nil, fmt.Errorf("%w: manifest format %q", smartenum.ErrNotImplemented, ext)
	}

	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: manifest %s", smartenum.ErrNotExist, name)
	}

	if err != nil {
		return nil, err
	}

	return parse(data)
}

// Validate asserts whether m names a family.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Family) == "" {
		return fmt.Errorf("%w: manifest names no family", smartenum.ErrBadConfig)
	}

	return nil
}

// Apply injects every member of m into r, in order,
// and returns the entries injected.
//
// r must be the Registry of the family m names.
// Apply stops at the first member r rejects,
// returning the entries injected before it alongside the error.
func (m *Manifest) Apply(r *smartenum.Registry) ([]smartenum.Entry, error) {
	if r.Name() != m.Family {
		return nil, fmt.Errorf("%w: manifest declares %s, not %s", smartenum.ErrNotValid, m.Family, r.Name())
	}

	injected := make([]smartenum.Entry, 0, len(m.Members))
	for i, d := range m.Members {
		e, err := r.Inject(d.Opts()...)
		if err != nil {
			return injected, fmt.Errorf("manifest %s member %d: %w", m.Family, i, err)
		}

		injected = append(injected, e)
	}

	return injected, nil
}

// Declare registers every member of m with r.
// Declare panics if r rejects one, as smartenum.Registry.MustRegister does.
//
//	var colors = smartenum.NewRegistry(m.Family, smartenum.WithDeclarations(m.Declare))
func (m *Manifest) Declare(r *smartenum.Registry) {
	for _, d := range m.Members {
		r.MustRegister(d.Text, d.Opts()...)
	}
}

// ApplyTo injects every member of m into f as Apply does,
// returning the typed members injected.
func ApplyTo[K smartenum.Kind](m *Manifest, f *smartenum.Family[K]) ([]smartenum.Member[K], error) {
	entries, err := m.Apply(f.Registry())

	members := make([]smartenum.Member[K], 0, len(entries))
	for _, e := range entries {
		if mem, ok := f.ByValue(e.Value); ok {
			members = append(members, mem)
		}
	}

	return members, err
}
