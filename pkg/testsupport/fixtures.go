package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ValidTwoGThreeG returns a complete, valid 2G/3G field set for station Site1.
func ValidTwoGThreeG() map[string]string {
	return map[string]string{
		"nom_station":        "Site1",
		"port_number_2g3g":   "7",
		"IUB_vlan_number":    "101",
		"OM_vlan_number":     "102",
		"ABIS_vlan_number":   "103",
		"SIU_OM_vlan_number": "104",
		"ABIS_primary_ip":    "172.27.162.10",
		"SIU_OM_primary_ip":  "172.27.162.70",
		"TG_transport":       "TG63",
	}
}

// ValidFourG returns a complete, valid 4G field set.
func ValidFourG() map[string]string {
	return map[string]string{
		"port_number_4g": "6",
		"port_id":        "TN_B",
		"vlan_s1_up":     "201",
		"vlan_s1_cp":     "202",
		"vlan_enodeB_om": "203",
	}
}

// With returns a copy of base with the overrides applied.
func With(base map[string]string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
