package registration

import "strings"

// Gender is the selected option of the gender dropdown.
// GenderUnset corresponds to the "Please select" placeholder.
type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
)

// GenderOptions lists the selectable options in display order, placeholder first.
var GenderOptions = []Gender{GenderUnset, GenderMale, GenderFemale}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return ""
	}
}

// Label is the option text shown in the dropdown.
func (g Gender) Label() string {
	if g == GenderUnset {
		return "Please select"
	}
	return g.String()
}

// ParseGender maps an option value back to a Gender.
// Anything unrecognised is GenderUnset.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderUnset
	}
}
