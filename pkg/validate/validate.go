package validate

import (
	"strconv"
	"strings"
)

const (
	minVLAN = 1
	maxVLAN = 4094
)

// IPAddress reports whether value is a dotted IPv4 address. An empty value is
// accepted because IP fields are optional at this level; required-ness is
// checked separately by the generator.
//
// Each octet is parsed with strconv.Atoi, so leading zeros and an explicit
// sign are tolerated ("010", "+1") while embedded whitespace is not.
func IPAddress(value string) bool {
	if value == "" {
		return true
	}
	parts := strings.Split(value, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// VLANID reports whether value is a VLAN tag in the 1-4094 range.
func VLANID(value string) bool {
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return n >= minVLAN && n <= maxVLAN
}

// PortNumber parses value as a base-10 integer.
func PortNumber(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Required reports whether value is non-empty.
func Required(value string) bool {
	return value != ""
}
