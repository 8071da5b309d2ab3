package rules

import "github.com/sfmk07/Flairv3/internal/domain/enums"

// Compatible applies the orientation policy table: heterosexual requesters
// keep candidates of a different gender, homosexual requesters keep the same
// gender, bisexual (or any unrecognized orientation) keep everyone. The check
// is evaluated from the requester's side only; the reverse direction is the
// candidate's own concern when they swipe.
func Compatible(requester, candidate enums.Gender, orientation enums.Orientation) bool {
	switch orientation {
	case enums.OrientationHeterosexual:
		return candidate != requester
	case enums.OrientationHomosexual:
		return candidate == requester
	default:
		return true
	}
}

// MinAge is enforced locally at registration, before any persistence call.
const MinAge = 18
