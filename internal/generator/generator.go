// Package generator produces cryptographically secure passwords and
// passphrases.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/verte-zerg/passmeter/internal/model"
)

// ErrInvalidConfig rejects generation requests that violate the length or
// class-selection constraints. Invalid configs are never silently repaired.
var ErrInvalidConfig = errors.New("invalid generation config")

// MinLength is the shortest password the generator will produce.
const MinLength = 4

// Class alphabets. Special matches the set the analyzer recognizes.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Characters dropped from each class when ExcludeAmbiguous is set.
const (
	ambiguousLower   = "lo"
	ambiguousUpper   = "IO"
	ambiguousDigits  = "01"
	ambiguousSpecial = "|"
)

// Generate produces a random password per the config. Each selected class
// is guaranteed at least one character: one mandatory character is drawn
// per class, the rest uniformly from the union alphabet, and the whole
// string is shuffled with secure random index draws so mandatory characters
// are not positionally predictable.
//
// All randomness comes from crypto/rand; calls are independent and safe
// for concurrent use.
func Generate(cfg model.GenerationConfig) (string, error) {
	if cfg.Length < MinLength {
		return "", fmt.Errorf("%w: length must be at least %d characters", ErrInvalidConfig, MinLength)
	}
	classes := activeClasses(cfg)
	if len(classes) == 0 {
		return "", fmt.Errorf("%w: at least one character type must be selected", ErrInvalidConfig)
	}

	pool := strings.Join(classes, "")
	password := make([]rune, 0, cfg.Length)
	for _, class := range classes {
		c, err := choice(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < cfg.Length {
		c, err := choice(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// GeneratePassphrase joins wordCount words drawn independently and
// uniformly, with replacement, from the word list.
func GeneratePassphrase(wordCount int, separator string, words []string) (string, error) {
	if wordCount < 1 {
		return "", fmt.Errorf("%w: word count must be at least 1", ErrInvalidConfig)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("%w: word list is empty", ErrInvalidConfig)
	}
	picked := make([]string, 0, wordCount)
	for i := 0; i < wordCount; i++ {
		idx, err := randIndex(len(words))
		if err != nil {
			return "", err
		}
		picked = append(picked, words[idx])
	}
	return strings.Join(picked, separator), nil
}

// activeClasses returns the selected class alphabets, with ambiguous
// characters removed when requested.
func activeClasses(cfg model.GenerationConfig) []string {
	lower, upper, digits, special := lowercaseChars, uppercaseChars, digitChars, specialChars
	if cfg.ExcludeAmbiguous {
		lower = stripChars(lower, ambiguousLower)
		upper = stripChars(upper, ambiguousUpper)
		digits = stripChars(digits, ambiguousDigits)
		special = stripChars(special, ambiguousSpecial)
	}
	var classes []string
	if cfg.UseLowercase {
		classes = append(classes, lower)
	}
	if cfg.UseUppercase {
		classes = append(classes, upper)
	}
	if cfg.UseDigits {
		classes = append(classes, digits)
	}
	if cfg.UseSpecial {
		classes = append(classes, special)
	}
	return classes
}

func stripChars(s, drop string) string {
	var b strings.Builder
	for _, r := range s {
		if !strings.ContainsRune(drop, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// choice draws one character uniformly from the alphabet.
func choice(alphabet string) (rune, error) {
	idx, err := randIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return rune(alphabet[idx]), nil
}

// shuffle performs a Fisher-Yates shuffle using secure index draws.
func shuffle(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

// randIndex draws a uniform index in [0, n) from crypto/rand.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}
