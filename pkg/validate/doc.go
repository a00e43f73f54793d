// Package validate holds the field-level predicates applied to form values
// before they are interpolated into a script. Predicates never trim or
// normalise their input: the value checked is the value rendered.
package validate
