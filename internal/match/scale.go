package match

import "github.com/jobport/jobport/internal/verify"

// Level is a position on the fixed 4-point qualification scale.
type Level int

const (
	Matriculation Level = iota
	HigherSecondary
	Graduation
	Postgraduation
)

func (l Level) String() string {
	switch l {
	case HigherSecondary:
		return "Higher Secondary"
	case Graduation:
		return "Graduation"
	case Postgraduation:
		return "Post Graduation"
	default:
		return "Matriculation"
	}
}

// ParseLevel maps a free-form qualification label to a Level. Matching is
// insensitive to case, punctuation and spacing. ok is false for labels not on
// the scale; callers that must stay total (Rank) ignore it.
func ParseLevel(label string) (Level, bool) {
	switch verify.Normalize(label) {
	case "matriculation", "matric", "10th", "ssc":
		return Matriculation, true
	case "higher secondary", "highersecondary", "intermediate", "12th", "hsc":
		return HigherSecondary, true
	case "graduation", "graduate", "bachelors", "bachelor s":
		return Graduation, true
	case "post graduation", "postgraduation", "post graduate", "postgraduate", "masters", "master s":
		return Postgraduation, true
	}
	return Matriculation, false
}

// Rank is the total ordinal function over qualification labels. Unknown or
// empty labels rank 0, the lowest level, never an error. Intentional fallback
// carried over from existing behavior; do not "fix" without product sign-off.
func Rank(label string) int {
	l, _ := ParseLevel(label)
	return int(l)
}
