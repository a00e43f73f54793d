package registry

// Group identifies one of the two disjoint field sets.
type Group string

const (
	GroupTwoGThreeG Group = "2g3g"
	GroupFourG      Group = "4g"
)

// Kind selects the validation rule applied to a field value.
type Kind string

const (
	KindText Kind = "text"
	KindPort Kind = "port"
	KindVLAN Kind = "vlan"
	KindIP   Kind = "ip"
)

func (k Kind) valid() bool {
	switch k {
	case KindText, KindPort, KindVLAN, KindIP:
		return true
	default:
		return false
	}
}

// Field describes one catalogue entry.
type Field struct {
	Name    string
	Label   string
	Help    string
	Kind    Kind
	Group   Group
	Default string
}

// HasDefault reports whether the field is pre-filled on mode selection.
func (f Field) HasDefault() bool {
	return f.Default != ""
}

// Section groups the ordered fields of a Group with its display title.
type Section struct {
	Group  Group
	Title  string
	Fields []Field
}
