// Package registry loads the fixed catalogue of form fields. Fields are
// partitioned into two disjoint, ordered groups (2G/3G and 4G), each field
// carrying a kind that selects its validation rule and an optional default
// pre-filled when its group is activated.
//
// The bundled catalogue lives in catalogue.yaml and is embedded in the binary;
// Load accepts any fs.FS so tests and callers can supply alternatives.
package registry
