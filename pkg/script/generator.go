package script

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"

	"github.com/goliatone/go-siuscript/pkg/form"
	"github.com/goliatone/go-siuscript/pkg/registry"
	"github.com/goliatone/go-siuscript/pkg/render/template"
	"github.com/goliatone/go-siuscript/pkg/render/template/gotemplate"
	"github.com/goliatone/go-siuscript/pkg/validate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Document is one rendered script ready to be persisted.
type Document struct {
	Group             registry.Group
	Label             string
	Content           string
	SuggestedFilename string
}

type variant struct {
	template string
	label    string
	scope    string
	filename func(values map[string]string) string
}

var variants = map[registry.Group]variant{
	registry.GroupTwoGThreeG: {
		template: "2g3g",
		label:    "2G3G",
		scope:    "2G/3G",
		filename: func(values map[string]string) string {
			return fmt.Sprintf("siu_%s_2G3G.txt", values["nom_station"])
		},
	},
	registry.GroupFourG: {
		template: "4g",
		label:    "4G",
		scope:    "4G",
		filename: func(map[string]string) string {
			return "siu_lte_4G.txt"
		},
	},
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry overrides the field catalogue.
func WithRegistry(reg *registry.Registry) Option {
	return func(g *Generator) {
		if reg != nil {
			g.registry = reg
		}
	}
}

// WithTemplates overrides the filesystem holding 2g3g.tpl and 4g.tpl.
func WithTemplates(files fs.FS) Option {
	return func(g *Generator) {
		if files != nil {
			g.templates = files
		}
	}
}

// Generator renders scripts for validated field groups.
type Generator struct {
	registry  *registry.Registry
	templates fs.FS
	engine    template.TemplateRenderer
}

// New builds a Generator and checks that every template references exactly
// the fields declared for its group.
func New(options ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.registry == nil {
		g.registry = registry.Default()
	}
	if g.templates == nil {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("script: templates: %w", err)
		}
		g.templates = sub
	}

	engine, err := gotemplate.New(gotemplate.WithFS(g.templates), gotemplate.WithAutoescape(false))
	if err != nil {
		return nil, fmt.Errorf("script: template engine: %w", err)
	}
	g.engine = engine

	for group, v := range variants {
		if err := g.checkTemplate(group, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Generator) checkTemplate(group registry.Group, v variant) error {
	names, err := g.registry.Names(group)
	if err != nil {
		return fmt.Errorf("script: template %s: %w", v.template, err)
	}
	src, err := g.engine.Source(v.template)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	want := slices.Sorted(slices.Values(names))
	got := template.Placeholders(src)
	if slices.Equal(want, got) {
		return nil
	}
	return fmt.Errorf("script: template %s does not match group %s: unused fields %v, unknown placeholders %v",
		v.template, group, difference(want, got), difference(got, want))
}

// difference returns the entries of a missing from b. Both are sorted.
func difference(a, b []string) []string {
	var out []string
	for _, name := range a {
		if _, found := slices.BinarySearch(b, name); !found {
			out = append(out, name)
		}
	}
	return out
}

// Registry returns the catalogue the generator validates against.
func (g *Generator) Registry() *registry.Registry {
	return g.registry
}

// Generate validates fields against the rules of group and renders its
// script. Checks run in a fixed order (missing, VLAN, IP, port number) and
// the first failing category is returned as a *ValidationError.
func (g *Generator) Generate(group registry.Group, fields map[string]string) (Document, error) {
	v, ok := variants[group]
	if !ok {
		return Document{}, fmt.Errorf("script: %w: %q", registry.ErrUnknownGroup, group)
	}
	declared, err := g.registry.Fields(group)
	if err != nil {
		return Document{}, fmt.Errorf("script: %w", err)
	}

	data, err := validateGroup(group, declared, fields)
	if err != nil {
		return Document{}, err
	}

	content, err := g.engine.RenderTemplate(v.template, data)
	if err != nil {
		return Document{}, fmt.Errorf("script: render %s: %w", v.template, err)
	}

	return Document{
		Group:             group,
		Label:             v.label,
		Content:           content,
		SuggestedFilename: v.filename(fields),
	}, nil
}

// Plan renders one document per group activated by the state's mode, in
// catalogue order. The first validation failure aborts the whole request.
func (g *Generator) Plan(state *form.State) ([]Document, error) {
	if state == nil || state.Mode() == form.ModeNone {
		return nil, ErrNoModeSelected
	}
	docs := make([]Document, 0, len(state.Mode().Groups()))
	for _, group := range state.Mode().Groups() {
		values, err := state.Values(group)
		if err != nil {
			return nil, fmt.Errorf("script: %w", err)
		}
		doc, err := g.Generate(group, values)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func validateGroup(group registry.Group, declared []registry.Field, fields map[string]string) (map[string]string, error) {
	var missing []string
	for _, f := range declared {
		if !validate.Required(fields[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Group: group, Category: ErrMissingField, Fields: missing}
	}

	checks := []struct {
		kind     registry.Kind
		category error
		ok       func(string) bool
	}{
		{registry.KindVLAN, ErrInvalidVLAN, validate.VLANID},
		{registry.KindIP, ErrInvalidIP, validate.IPAddress},
		{registry.KindPort, ErrInvalidPortNumber, func(s string) bool {
			_, ok := validate.PortNumber(s)
			return ok
		}},
	}
	for _, check := range checks {
		var bad []string
		for _, f := range declared {
			if f.Kind == check.kind && !check.ok(fields[f.Name]) {
				bad = append(bad, f.Name)
			}
		}
		if len(bad) > 0 {
			return nil, &ValidationError{Group: group, Category: check.category, Fields: bad}
		}
	}

	data := make(map[string]string, len(declared))
	for _, f := range declared {
		value := fields[f.Name]
		if f.Kind == registry.KindPort {
			// Port numbers render in canonical integer form ("07" -> "7").
			n, _ := validate.PortNumber(value)
			data[f.Name] = strconv.Itoa(n)
			continue
		}
		data[f.Name] = value
	}
	return data, nil
}

// IsValidation reports whether err belongs to the validation taxonomy.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) || errors.Is(err, ErrNoModeSelected)
}
