package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-siuscript/pkg/registry"
)

var (
	// ErrUnknownField is returned when a name is not in the registry.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrFieldDisabled is returned when writing a field outside the active groups.
	ErrFieldDisabled = errors.New("form: field is disabled")
)

// State holds the current mode and field values. It is owned by the caller
// and only changes through SelectMode and SetFieldValue.
type State struct {
	registry *registry.Registry
	mode     Mode
	values   map[string]string
	enabled  map[string]bool
}

// New returns a state with no mode selected and every field disabled.
func New(reg *registry.Registry) *State {
	if reg == nil {
		reg = registry.Default()
	}
	s := &State{
		registry: reg,
		values:   make(map[string]string),
		enabled:  make(map[string]bool),
	}
	for _, f := range reg.All() {
		s.values[f.Name] = ""
		s.enabled[f.Name] = false
	}
	return s
}

// Registry returns the catalogue backing the state.
func (s *State) Registry() *registry.Registry {
	if s == nil {
		return nil
	}
	return s.registry
}

// Mode returns the selected mode.
func (s *State) Mode() Mode {
	if s == nil {
		return ModeNone
	}
	return s.mode
}

// SelectMode clears every value, enables the fields of the groups activated
// by mode with their defaults pre-filled, and disables all other fields.
func (s *State) SelectMode(mode Mode) {
	if s == nil {
		return
	}
	s.mode = mode
	for _, f := range s.registry.All() {
		active := mode.Activates(f.Group)
		s.enabled[f.Name] = active
		if active {
			s.values[f.Name] = f.Default
		} else {
			s.values[f.Name] = ""
		}
	}
}

// SetFieldValue stores value for an enabled field.
func (s *State) SetFieldValue(name, value string) error {
	if s == nil {
		return errors.New("form: state is nil")
	}
	if _, ok := s.registry.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if !s.enabled[name] {
		return fmt.Errorf("%w: %q", ErrFieldDisabled, name)
	}
	s.values[name] = value
	return nil
}

// Value returns the current value of name; disabled fields always read empty.
func (s *State) Value(name string) string {
	if s == nil {
		return ""
	}
	return s.values[name]
}

// Enabled reports whether name belongs to an active group.
func (s *State) Enabled(name string) bool {
	if s == nil {
		return false
	}
	return s.enabled[name]
}

// EnabledFields returns the enabled fields in catalogue order.
func (s *State) EnabledFields() []registry.Field {
	if s == nil {
		return nil
	}
	var out []registry.Field
	for _, f := range s.registry.All() {
		if s.enabled[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

// Values returns a copy of the values of group. Only enabled groups can be
// read; a disabled group yields ErrFieldDisabled.
func (s *State) Values(group registry.Group) (map[string]string, error) {
	if s == nil {
		return nil, errors.New("form: state is nil")
	}
	fields, err := s.registry.Fields(group)
	if err != nil {
		return nil, err
	}
	if !s.mode.Activates(group) {
		return nil, fmt.Errorf("%w: group %q is not active in mode %q", ErrFieldDisabled, group, s.mode)
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = s.values[f.Name]
	}
	return out, nil
}
