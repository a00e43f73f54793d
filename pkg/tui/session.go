package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-siuscript/pkg/form"
	"github.com/goliatone/go-siuscript/pkg/script"
	"github.com/goliatone/go-siuscript/pkg/sink"
)

// Outcome records what happened to one generated document.
type Outcome struct {
	Label     string
	Path      string
	Cancelled bool
	Err       error
}

// Report summarises a completed session.
type Report struct {
	Mode     form.Mode
	Outcomes []Outcome
}

// Session drives one generate-and-save cycle.
type Session struct {
	driver    PromptDriver
	generator *script.Generator
	sink      sink.Sink
	theme     Theme
}

// NewSession wires a session around generator. The form is built from the
// generator's registry. Defaults: survey driver, OS file sink, DefaultTheme.
func NewSession(generator *script.Generator, options ...Option) (*Session, error) {
	if generator == nil {
		return nil, errors.New("tui: generator is nil")
	}
	s := &Session{
		generator: generator,
		theme:     DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}
	if s.sink == nil {
		s.sink = sink.NewFileSink()
	}
	return s, nil
}

// Run selects a mode, collects the enabled fields and saves the generated
// scripts. Validation failures are reported and the fields prompted again
// with the typed values kept, until generation succeeds or the user gives up.
func (s *Session) Run(ctx context.Context) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("tui: context is required")
	}

	state := form.New(s.generator.Registry())
	mode, err := s.selectMode(ctx)
	if err != nil {
		return Report{}, err
	}
	state.SelectMode(mode)
	report := Report{Mode: mode}

	for {
		if err := s.fill(ctx, state); err != nil {
			return report, err
		}

		docs, err := s.generator.Plan(state)
		if err == nil {
			report.Outcomes, err = s.save(ctx, docs)
			return report, err
		}
		if !script.IsValidation(err) {
			return report, err
		}

		if err := s.reportError(ctx, script.UserMessage(err)); err != nil {
			return report, err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Corriger les champs ?",
			Default: true,
		})
		if err != nil {
			return report, err
		}
		if !retry {
			return report, ErrGenerationAbandoned
		}
	}
}

func (s *Session) selectMode(ctx context.Context) (form.Mode, error) {
	options := make([]string, len(form.Modes))
	for i, m := range form.Modes {
		options[i] = m.String()
	}
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      "Technologie :",
			Options:      options,
			DefaultIndex: -1,
		})
		if err != nil {
			return form.ModeNone, err
		}
		if idx >= 0 && idx < len(form.Modes) {
			return form.Modes[idx], nil
		}
		if err := s.reportError(ctx, script.UserMessage(script.ErrNoModeSelected)); err != nil {
			return form.ModeNone, err
		}
	}
}

func (s *Session) fill(ctx context.Context, state *form.State) error {
	for _, section := range state.Registry().Sections() {
		if !state.Mode().Activates(section.Group) {
			continue
		}
		if section.Title != "" {
			if err := s.driver.Info(ctx, section.Title); err != nil {
				return err
			}
		}
		for _, field := range section.Fields {
			value, err := s.driver.Input(ctx, InputConfig{
				Message: field.Label + " :",
				Default: state.Value(field.Name),
				Help:    field.Help,
			})
			if err != nil {
				return err
			}
			if err := state.SetFieldValue(field.Name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// save persists each document in turn. A failed write is reported and does
// not stop the remaining documents; a prompt or driver error does.
func (s *Session) save(ctx context.Context, docs []script.Document) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(docs))
	for _, doc := range docs {
		outcome, err := s.saveOne(ctx, doc)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
		switch {
		case outcome.Cancelled:
		case outcome.Err != nil:
			err = s.reportError(ctx, fmt.Sprintf("Erreur lors de la sauvegarde : %v", outcome.Err))
		default:
			err = s.info(ctx, fmt.Sprintf("Script %s généré et sauvegardé !", doc.Label))
		}
		if err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

// saveOne asks for a destination. Declining, an empty path, or refusing to
// overwrite an existing file cancel silently.
func (s *Session) saveOne(ctx context.Context, doc script.Document) (Outcome, error) {
	outcome := Outcome{Label: doc.Label}

	proceed, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Enregistrer le script %s ?", doc.Label),
		Default: true,
	})
	if err != nil {
		return outcome, err
	}
	if !proceed {
		outcome.Cancelled = true
		return outcome, nil
	}

	path, err := s.driver.Input(ctx, InputConfig{
		Message: "Fichier :",
		Default: doc.SuggestedFilename,
		Help:    "Fichiers texte (*.txt)",
	})
	if err != nil {
		return outcome, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		outcome.Cancelled = true
		return outcome, nil
	}

	exists, err := s.sink.Exists(path)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}
	if exists {
		overwrite, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s existe déjà. Le remplacer ?", sink.Resolve(path)),
			Default: false,
		})
		if err != nil {
			return outcome, err
		}
		if !overwrite {
			outcome.Cancelled = true
			return outcome, nil
		}
	}

	outcome.Path, outcome.Err = s.sink.Persist(ctx, doc, path)
	return outcome, nil
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) reportError(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}
