package validate_test

import (
	"testing"

	"github.com/goliatone/go-siuscript/pkg/validate"
)

func TestIPAddress(t *testing.T) {
	cases := map[string]bool{
		"":                true,
		"1.2.3.4":         true,
		"0.0.0.0":         true,
		"255.255.255.255": true,
		"010.1.1.1":       true,
		"1.2.3":           false,
		"1.2.3.256":       false,
		"1.2.3.a":         false,
		"1.2.3.4.5":       false,
		"1.2.3.-1":        false,
		"1.2. 3.4":        false,
		"1..3.4":          false,
	}
	for input, want := range cases {
		if got := validate.IPAddress(input); got != want {
			t.Errorf("IPAddress(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestVLANID(t *testing.T) {
	cases := map[string]bool{
		"1":    true,
		"4094": true,
		"100":  true,
		"0":    false,
		"4095": false,
		"":     false,
		"abc":  false,
		"-5":   false,
		" 10":  false,
	}
	for input, want := range cases {
		if got := validate.VLANID(input); got != want {
			t.Errorf("VLANID(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPortNumber(t *testing.T) {
	if n, ok := validate.PortNumber("7"); !ok || n != 7 {
		t.Fatalf("PortNumber(7) = %d, %v", n, ok)
	}
	if n, ok := validate.PortNumber("07"); !ok || n != 7 {
		t.Fatalf("PortNumber(07) = %d, %v", n, ok)
	}
	for _, input := range []string{"", "seven", "7.0", " 7"} {
		if _, ok := validate.PortNumber(input); ok {
			t.Errorf("PortNumber(%q) accepted", input)
		}
	}
}

func TestRequired(t *testing.T) {
	if validate.Required("") {
		t.Fatalf("empty value should not satisfy Required")
	}
	if !validate.Required("x") {
		t.Fatalf("non-empty value should satisfy Required")
	}
}
