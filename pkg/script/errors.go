package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-siuscript/pkg/registry"
)

var (
	// ErrNoModeSelected is returned by Plan when the form has no mode.
	ErrNoModeSelected = errors.New("script: no mode selected")
	// ErrMissingField signals one or more empty fields in a group.
	ErrMissingField = errors.New("script: missing field")
	// ErrInvalidVLAN signals a VLAN value outside 1-4094 or not numeric.
	ErrInvalidVLAN = errors.New("script: invalid VLAN")
	// ErrInvalidIP signals a malformed IPv4 address.
	ErrInvalidIP = errors.New("script: invalid IP address")
	// ErrInvalidPortNumber signals a port number that is not an integer.
	ErrInvalidPortNumber = errors.New("script: invalid port number")
)

// ValidationError reports the first failed rule category for a group along
// with the offending field names. It matches its category with errors.Is.
type ValidationError struct {
	Group    registry.Group
	Category error
	Fields   []string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%v (group %s: %s)", e.Category, e.Group, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Category
}

// UserMessage returns the French message shown to the operator for err.
// Errors outside the validation taxonomy fall back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoModeSelected) {
		return "Veuillez sélectionner une technologie !"
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	scope := displayScope(verr.Group)
	switch {
	case errors.Is(verr, ErrMissingField):
		return fmt.Sprintf("Tous les champs %s doivent être remplis !", scope)
	case errors.Is(verr, ErrInvalidVLAN):
		return fmt.Sprintf("Les VLANs %s doivent être des entiers entre 1 et 4094 !", scope)
	case errors.Is(verr, ErrInvalidIP):
		return fmt.Sprintf("Adresses IP %s invalides !", scope)
	case errors.Is(verr, ErrInvalidPortNumber):
		return fmt.Sprintf("Le numéro de port %s doit être un entier !", scope)
	default:
		return verr.Error()
	}
}

func displayScope(group registry.Group) string {
	if v, ok := variants[group]; ok {
		return v.scope
	}
	return string(group)
}
