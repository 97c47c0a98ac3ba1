// Package analyzer implements the password analysis engine.
package analyzer

import (
	"strings"
	"unicode"
)

// SpecialChars is the fixed special-character set recognized by the engine.
const SpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Alphabet sizes per character class. Lower/upper/digit use the ASCII
// alphabet sizes regardless of which members actually appear.
const (
	lowercaseSetSize = 26
	uppercaseSetSize = 26
	digitSetSize     = 10
)

// Diversity points contributed per present class, capped by CharTypesCap.
const (
	lowercasePoints = 5
	uppercasePoints = 5
	digitPoints     = 5
	specialPoints   = 10

	// CharTypesCap bounds the character_types category.
	CharTypesCap = 25
)

// CharProfile reports which character classes appear in a password and the
// combined alphabet size of the classes present.
type CharProfile struct {
	HasLower   bool
	HasUpper   bool
	HasDigit   bool
	HasSpecial bool

	// CharSetSize sums the alphabet sizes of exactly the classes present.
	CharSetSize int
}

// ClassifyChars scans a password and derives its character profile.
// Empty input yields the zero profile.
func ClassifyChars(password string) CharProfile {
	var p CharProfile
	for _, r := range password {
		switch {
		case strings.ContainsRune(SpecialChars, r):
			p.HasSpecial = true
		case unicode.IsLower(r):
			p.HasLower = true
		case unicode.IsUpper(r):
			p.HasUpper = true
		case unicode.IsDigit(r):
			p.HasDigit = true
		}
	}
	if p.HasLower {
		p.CharSetSize += lowercaseSetSize
	}
	if p.HasUpper {
		p.CharSetSize += uppercaseSetSize
	}
	if p.HasDigit {
		p.CharSetSize += digitSetSize
	}
	if p.HasSpecial {
		p.CharSetSize += len(SpecialChars)
	}
	return p
}

// DiversityPoints returns the character_types score for the profile.
func (p CharProfile) DiversityPoints() int {
	points := 0
	if p.HasLower {
		points += lowercasePoints
	}
	if p.HasUpper {
		points += uppercasePoints
	}
	if p.HasDigit {
		points += digitPoints
	}
	if p.HasSpecial {
		points += specialPoints
	}
	if points > CharTypesCap {
		points = CharTypesCap
	}
	return points
}

// ClassNames lists the present classes in a fixed order, for feedback.
func (p CharProfile) ClassNames() []string {
	var names []string
	if p.HasLower {
		names = append(names, "lowercase")
	}
	if p.HasUpper {
		names = append(names, "uppercase")
	}
	if p.HasDigit {
		names = append(names, "digits")
	}
	if p.HasSpecial {
		names = append(names, "special characters")
	}
	return names
}
