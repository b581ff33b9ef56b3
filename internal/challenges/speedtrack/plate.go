package speedtrack

import "regexp"

// Two letters, two digits, an optional single space, three letters
var platePattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{2} ?[A-Za-z]{3}$`)

// ValidNumberPlate reports whether plate has the "LL NN LLL" format
func ValidNumberPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// OffenseKind classifies a camera record
type OffenseKind int

const (
	OffenseNone OffenseKind = iota
	OffenseSpeeding
	OffenseBadPlate
	OffenseBoth
)

// String returns the name used in offenders files
func (k OffenseKind) String() string {
	switch k {
	case OffenseSpeeding:
		return "speeding"
	case OffenseBadPlate:
		return "bad-plate"
	case OffenseBoth:
		return "both"
	default:
		return "none"
	}
}

// Classify returns the offense for a record. A speed equal to the limit is
// not speeding.
func Classify(speed float64, plate string, limit float64) OffenseKind {
	speeding := speed > limit
	badPlate := !ValidNumberPlate(plate)

	switch {
	case speeding && badPlate:
		return OffenseBoth
	case speeding:
		return OffenseSpeeding
	case badPlate:
		return OffenseBadPlate
	default:
		return OffenseNone
	}
}
