// Package siuscript generates SIU base-station configuration scripts from a
// flat set of named field values. It is a thin facade over pkg/form and
// pkg/script for callers that do not need the interactive terminal flow.
package siuscript

import (
	"errors"

	"github.com/goliatone/go-siuscript/pkg/form"
	"github.com/goliatone/go-siuscript/pkg/registry"
	"github.com/goliatone/go-siuscript/pkg/script"
)

// Document aliases script.Document.
type Document = script.Document

// Mode aliases form.Mode.
type Mode = form.Mode

const (
	ModeTwoGThreeG = form.ModeTwoGThreeG
	ModeFourG      = form.ModeFourG
	ModeBoth       = form.ModeBoth
)

// Generate selects mode, applies values on top of the mode defaults and
// renders one document per active group. Values for fields outside the
// active groups are ignored, matching the disabled state of those fields.
func Generate(mode Mode, values map[string]string, options ...script.Option) ([]Document, error) {
	gen, err := script.New(options...)
	if err != nil {
		return nil, err
	}
	return GenerateWith(gen, registry.Default(), mode, values)
}

// GenerateWith is Generate with a caller-owned generator and registry.
func GenerateWith(gen *script.Generator, reg *registry.Registry, mode Mode, values map[string]string) ([]Document, error) {
	if gen == nil {
		return nil, errors.New("siuscript: generator is nil")
	}
	state := form.New(reg)
	state.SelectMode(mode)
	for name, value := range values {
		if !state.Enabled(name) {
			continue
		}
		if err := state.SetFieldValue(name, value); err != nil {
			return nil, err
		}
	}
	return gen.Plan(state)
}
