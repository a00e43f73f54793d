// Package script validates the values of an active field group and renders
// the matching SIU command script. Each group has one embedded template whose
// placeholders are exactly the group's field names; everything else in the
// template is constant and reproduced byte for byte.
//
// Generation is all-or-nothing per request: Plan renders the active groups in
// catalogue order and stops at the first group that fails validation, returning
// no documents at all.
package script
