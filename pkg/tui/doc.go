// Package tui runs the interactive terminal form: choose a mode, fill the
// enabled fields, generate the scripts and save each one to a chosen path.
// Prompts go through PromptDriver so the flow can be driven by a stub in
// tests; the default driver is backed by survey.
package tui
