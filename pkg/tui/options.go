package tui

import (
	"github.com/goliatone/go-siuscript/pkg/sink"
)

// Theme captures optional message prefixes. Keep minimal to avoid coupling
// session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme prefixes messages with the French success and error titles.
var DefaultTheme = Theme{
	InfoPrefix:  "Succès : ",
	ErrorPrefix: "Erreur : ",
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithSink overrides where generated scripts are written.
func WithSink(out sink.Sink) Option {
	return func(s *Session) {
		if out != nil {
			s.sink = out
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
