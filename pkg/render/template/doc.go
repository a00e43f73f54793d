// Package template defines the renderer contract used to turn script
// templates into text, plus a small parser that splits a template into its
// constant text and named placeholders so a template's substitution points
// can be listed and checked without executing it.
package template
