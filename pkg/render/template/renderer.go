package template

import (
	"io"
)

// TemplateRenderer renders named templates and exposes their raw source so
// callers can inspect placeholders before executing anything.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	Source(name string) (string, error)
}
