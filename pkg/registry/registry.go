package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var embeddedCatalogue embed.FS

// DefaultCatalogue is the path of the bundled catalogue inside EmbeddedFS.
const DefaultCatalogue = "catalogue.yaml"

// ErrUnknownGroup is returned when a group is not declared in the catalogue.
var ErrUnknownGroup = errors.New("registry: unknown group")

// Registry is the immutable, ordered field catalogue.
type Registry struct {
	sections []Section
	byName   map[string]Field
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// EmbeddedFS returns the filesystem holding the bundled catalogue.
func EmbeddedFS() fs.FS {
	return embeddedCatalogue
}

// Default returns the registry built from the bundled catalogue. The bundled
// file is part of the binary, so a parse failure is a programming error.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Load(EmbeddedFS(), DefaultCatalogue)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultReg
}

type catalogueFile struct {
	Groups []groupFile `yaml:"groups"`
}

type groupFile struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Fields []fieldFile `yaml:"fields"`
}

type fieldFile struct {
	Name    string `yaml:"name"`
	Label   string `yaml:"label"`
	Help    string `yaml:"help"`
	Kind    string `yaml:"kind"`
	Default string `yaml:"default"`
}

// Load parses a YAML catalogue from fsys and checks its invariants: unique
// field names, disjoint non-empty groups and known kinds.
func Load(fsys fs.FS, path string) (*Registry, error) {
	if fsys == nil {
		return nil, errors.New("registry: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse builds a registry from raw YAML. source is only used in error messages.
func Parse(data []byte, source string) (*Registry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("registry: file %s is empty", source)
	}
	var doc catalogueFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("registry: parse %s: %w", source, err)
	}
	if len(doc.Groups) == 0 {
		return nil, fmt.Errorf("registry: file %s declares no groups", source)
	}

	reg := &Registry{byName: make(map[string]Field)}
	seenGroups := make(map[Group]struct{}, len(doc.Groups))

	for _, rawGroup := range doc.Groups {
		group := Group(strings.TrimSpace(rawGroup.ID))
		if group == "" {
			return nil, fmt.Errorf("registry: file %s defines a group with an empty id", source)
		}
		if _, dup := seenGroups[group]; dup {
			return nil, fmt.Errorf("registry: file %s defines group %q twice", source, group)
		}
		seenGroups[group] = struct{}{}
		if len(rawGroup.Fields) == 0 {
			return nil, fmt.Errorf("registry: file %s group %q has no fields", source, group)
		}

		section := Section{
			Group:  group,
			Title:  sanitizeDisplay(rawGroup.Title),
			Fields: make([]Field, 0, len(rawGroup.Fields)),
		}
		for idx, rawField := range rawGroup.Fields {
			field, err := normaliseField(rawField, group)
			if err != nil {
				return nil, fmt.Errorf("registry: file %s group %q field %d: %w", source, group, idx, err)
			}
			if _, dup := reg.byName[field.Name]; dup {
				return nil, fmt.Errorf("registry: file %s defines field %q twice", source, field.Name)
			}
			reg.byName[field.Name] = field
			section.Fields = append(section.Fields, field)
		}
		reg.sections = append(reg.sections, section)
	}

	return reg, nil
}

func normaliseField(raw fieldFile, group Group) (Field, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Field{}, errors.New("empty name")
	}
	kind := Kind(strings.ToLower(strings.TrimSpace(raw.Kind)))
	if kind == "" {
		kind = KindText
	}
	if !kind.valid() {
		return Field{}, fmt.Errorf("field %q has unknown kind %q", name, raw.Kind)
	}
	label := sanitizeDisplay(raw.Label)
	if label == "" {
		label = labelFromName(name)
	}
	return Field{
		Name:    name,
		Label:   label,
		Help:    sanitizeDisplay(raw.Help),
		Kind:    kind,
		Group:   group,
		Default: raw.Default,
	}, nil
}

// Sections returns the groups in catalogue order.
func (r *Registry) Sections() []Section {
	if r == nil {
		return nil
	}
	out := make([]Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = Section{Group: s.Group, Title: s.Title, Fields: append([]Field(nil), s.Fields...)}
	}
	return out
}

// Groups returns the declared group ids in catalogue order.
func (r *Registry) Groups() []Group {
	if r == nil {
		return nil
	}
	out := make([]Group, len(r.sections))
	for i, s := range r.sections {
		out[i] = s.Group
	}
	return out
}

// Section returns the section for group.
func (r *Registry) Section(group Group) (Section, error) {
	if r != nil {
		for _, s := range r.sections {
			if s.Group == group {
				return Section{Group: s.Group, Title: s.Title, Fields: append([]Field(nil), s.Fields...)}, nil
			}
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
}

// Fields returns the ordered fields of group.
func (r *Registry) Fields(group Group) ([]Field, error) {
	section, err := r.Section(group)
	if err != nil {
		return nil, err
	}
	return section.Fields, nil
}

// Names returns the ordered field names of group.
func (r *Registry) Names(group Group) ([]string, error) {
	fields, err := r.Fields(group)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out, nil
}

// All returns every field, grouped and ordered as in the catalogue.
func (r *Registry) All() []Field {
	if r == nil {
		return nil
	}
	var out []Field
	for _, s := range r.sections {
		out = append(out, s.Fields...)
	}
	return out
}

// Lookup resolves a field by name.
func (r *Registry) Lookup(name string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	f, ok := r.byName[name]
	return f, ok
}

// Defaults returns the pre-fill values of group keyed by field name.
func (r *Registry) Defaults(group Group) (map[string]string, error) {
	fields, err := r.Fields(group)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, f := range fields {
		if f.HasDefault() {
			out[f.Name] = f.Default
		}
	}
	return out, nil
}
