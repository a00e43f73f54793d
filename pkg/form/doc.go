// Package form implements the field-state controller: the selected mode
// decides which catalogue groups are enabled, and a mode change resets every
// value before pre-filling the defaults of the newly active groups.
package form
