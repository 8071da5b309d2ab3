package enums

import "strings"

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// ParseGender accepts the wire form case-insensitively.
func ParseGender(value string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case GenderFemale:
		return GenderFemale, true
	case GenderMale:
		return GenderMale, true
	case GenderOther:
		return GenderOther, true
	default:
		return "", false
	}
}
