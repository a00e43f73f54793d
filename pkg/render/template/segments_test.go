package template_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-siuscript/pkg/render/template"
)

func TestParse(t *testing.T) {
	got := template.Parse("a {{ x }}b{{y}}\n{{ x }}")
	want := []template.Segment{
		{Text: "a "},
		{Placeholder: "x"},
		{Text: "b"},
		{Placeholder: "y"},
		{Text: "\n"},
		{Placeholder: "x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_IgnoresNonPlaceholders(t *testing.T) {
	got := template.Parse("{{ a.b }} {% if x %}")
	want := []template.Segment{{Text: "{{ a.b }} {% if x %}"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholders(t *testing.T) {
	got := template.Placeholders("{{ b }} {{ a }} {{ b }}")
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
}
