package analyzer

import (
	"math"
	"unicode/utf8"
)

// Entropy estimates bits of randomness as length × log2(charSetSize),
// where charSetSize is the combined alphabet of the classes present.
//
// This is a theoretical-maximum estimate assuming each character was chosen
// independently and uniformly from the detected alphabet. It is not the
// information-theoretic entropy of the actual string: "aaaaaaaa" rates the
// same as a random 8-letter word. Predictability is penalized separately by
// the common-password and pattern checks.
func Entropy(password string) (bits float64, charSetSize int) {
	profile := ClassifyChars(password)
	if profile.CharSetSize == 0 {
		return 0, 0
	}
	length := utf8.RuneCountInString(password)
	return float64(length) * math.Log2(float64(profile.CharSetSize)), profile.CharSetSize
}

// Entropy bands used for feedback wording only.
const (
	entropyExcellent = 60
	entropyGood      = 40
	entropyFair      = 25
)

// EntropyBand maps entropy bits to a display hint. The bands are not used
// anywhere in scoring.
func EntropyBand(bits float64) string {
	switch {
	case bits >= entropyExcellent:
		return "excellent"
	case bits >= entropyGood:
		return "good"
	case bits >= entropyFair:
		return "fair"
	default:
		return "low"
	}
}
