// Package wordlist provides passphrase word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultWords is the built-in passphrase vocabulary, used when no custom
// word list is configured.
var defaultWords = []string{
	"correct", "horse", "battery", "staple", "dragon", "wizard",
	"castle", "forest", "mountain", "ocean", "thunder", "lightning",
	"phoenix", "griffin", "crystal", "shadow", "mystic", "cosmic",
	"nebula", "quantum", "stellar", "lunar", "solar", "eclipse",
	"amber", "anchor", "aurora", "basalt", "beacon", "breeze",
	"canyon", "cedar", "cinder", "comet", "coral", "delta",
	"ember", "falcon", "fathom", "galaxy", "glacier", "granite",
	"harbor", "horizon", "island", "jasper", "lagoon", "marble",
	"meadow", "meteor", "onyx", "orchid", "prairie", "quartz",
	"raven", "reef", "ridge", "river", "saffron", "sierra",
	"summit", "sequoia", "timber", "tundra", "velvet", "vortex",
	"walnut", "willow", "zenith", "zephyr", "cobalt", "indigo",
}

// DefaultWords returns a copy of the built-in word list.
func DefaultWords() []string {
	return append([]string(nil), defaultWords...)
}

// LoadWords reads one word per line from the provided file path, skipping
// blank lines and words unsuitable for passphrases.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !SuitableForPassphrase(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// SuitableForPassphrase keeps lowercase ASCII words; separators, digits,
// and punctuation inside words would blur class boundaries in the result.
func SuitableForPassphrase(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
