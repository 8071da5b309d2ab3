package enums

import "strings"

type Orientation string

const (
	OrientationHeterosexual Orientation = "heterosexual"
	OrientationHomosexual   Orientation = "homosexual"
	OrientationBisexual     Orientation = "bisexual"
)

func ParseOrientation(value string) (Orientation, bool) {
	switch Orientation(strings.ToLower(strings.TrimSpace(value))) {
	case OrientationHeterosexual:
		return OrientationHeterosexual, true
	case OrientationHomosexual:
		return OrientationHomosexual, true
	case OrientationBisexual:
		return OrientationBisexual, true
	default:
		return "", false
	}
}
