package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-siuscript/pkg/render/template"
)

// Option configures the adapter before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	autoescape bool
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithAutoescape toggles HTML escaping of substituted values for this engine
// only. Scripts are plain text, so the default is off.
func WithAutoescape(enabled bool) Option {
	return func(cfg *config) {
		cfg.autoescape = enabled
	}
}

// Engine satisfies template.TemplateRenderer on top of the go-template
// renderer.
type Engine struct {
	renderer *gotemplatepkg.Engine
	sources  fs.FS
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. An fs.FS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide an fs.FS")
	}

	renderer, err := gotemplatepkg.NewRenderer(
		gotemplatepkg.WithFS(escapeFS{files: cfg.templates, on: cfg.autoescape}),
	)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: create renderer: %w", err)
	}

	return &Engine{
		renderer: renderer,
		sources:  cfg.templates,
	}, nil
}

// RenderTemplate executes the named template file.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.renderer.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// Source returns the raw text of the named template.
func (e *Engine) Source(name string) (string, error) {
	if e == nil || e.sources == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	raw, err := fs.ReadFile(e.sources, templatePath(name))
	if err != nil {
		return "", fmt.Errorf("gotemplate: read template %q: %w", name, err)
	}
	return string(raw), nil
}

func templatePath(name string) string {
	if strings.HasSuffix(name, ".tpl") {
		return name
	}
	return name + ".tpl"
}

// escapeFS serves every template inside an autoescape block, so the mode is
// fixed per engine instead of following pongo2's package-level default.
// Templates relying on a leading {% extends %} are not supported.
type escapeFS struct {
	files fs.FS
	on    bool
}

func (e escapeFS) Open(name string) (fs.File, error) {
	raw, err := fs.ReadFile(e.files, name)
	if err != nil {
		return nil, err
	}
	info, err := fs.Stat(e.files, name)
	if err != nil {
		return nil, err
	}

	mode := "off"
	if e.on {
		mode = "on"
	}
	wrapped := "{% autoescape " + mode + " %}" + string(raw) + "{% endautoescape %}"
	return &wrappedFile{Reader: strings.NewReader(wrapped), info: info}, nil
}

type wrappedFile struct {
	*strings.Reader
	info fs.FileInfo
}

func (f *wrappedFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *wrappedFile) Close() error { return nil }
