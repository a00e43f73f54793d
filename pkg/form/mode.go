package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-siuscript/pkg/registry"
)

// Mode is the user-selected generation scope.
type Mode int

const (
	// ModeNone is the zero value: nothing selected yet.
	ModeNone Mode = iota
	ModeTwoGThreeG
	ModeFourG
	ModeBoth
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{ModeTwoGThreeG, ModeFourG, ModeBoth}

// String returns the display label shown in the mode selector.
func (m Mode) String() string {
	switch m {
	case ModeTwoGThreeG:
		return "2G/3G"
	case ModeFourG:
		return "4G"
	case ModeBoth:
		return "Les trois"
	default:
		return ""
	}
}

// Groups returns the groups activated by the mode, 2G/3G first.
func (m Mode) Groups() []registry.Group {
	switch m {
	case ModeTwoGThreeG:
		return []registry.Group{registry.GroupTwoGThreeG}
	case ModeFourG:
		return []registry.Group{registry.GroupFourG}
	case ModeBoth:
		return []registry.Group{registry.GroupTwoGThreeG, registry.GroupFourG}
	default:
		return nil
	}
}

// Activates reports whether group is part of the mode.
func (m Mode) Activates(group registry.Group) bool {
	for _, g := range m.Groups() {
		if g == group {
			return true
		}
	}
	return false
}

// ParseMode resolves a display label (case-insensitive) into a Mode.
func ParseMode(label string) (Mode, error) {
	trimmed := strings.TrimSpace(label)
	for _, m := range Modes {
		if strings.EqualFold(m.String(), trimmed) {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("form: unknown mode %q", label)
}
