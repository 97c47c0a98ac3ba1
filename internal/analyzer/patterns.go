package analyzer

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/passmeter/internal/model"
)

// keyboardPatterns are keyboard-row sequences, including reversed rows.
var keyboardPatterns = []string{
	"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl", "zxcvbn", "zxcvbnm",
	"1234567890", "0987654321", "abcdefgh", "zyxwvuts",
}

// sequentialPatterns holds every 4-character ascending alphabetic run
// (abcd..wxyz) and 4-digit run (1234..7890).
var sequentialPatterns = buildSequentialPatterns()

func buildSequentialPatterns() []string {
	var patterns []string
	for c := byte('a'); c <= 'w'; c++ {
		patterns = append(patterns, string([]byte{c, c + 1, c + 2, c + 3}))
	}
	const digitRow = "1234567890"
	for i := 0; i+4 <= len(digitRow); i++ {
		patterns = append(patterns, digitRow[i:i+4])
	}
	return patterns
}

// Penalty contributions per pattern kind.
const (
	keyboardPenalty  = 2
	sequencePenalty  = 2
	repetitionMaxPen = 4
	numericSuffixPen = 1
	minRepetitionRun = 3
	minNumericSuffix = 3
)

// PatternReport holds all pattern findings for a password, the summed
// raw penalty, and per-finding feedback lines.
type PatternReport struct {
	Findings []model.PatternFinding
	Penalty  int
	Feedback []string
}

// DetectPatterns runs all four pattern checks unconditionally and sums
// their penalties. When nothing matches, Feedback carries a single
// positive confirmation instead.
func DetectPatterns(password string) PatternReport {
	lower := strings.ToLower(password)
	var report PatternReport

	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) {
			report.add(model.PatternKeyboard, pattern, keyboardPenalty,
				fmt.Sprintf("Contains keyboard pattern: %q", pattern))
		}
	}

	for _, pattern := range sequentialPatterns {
		if strings.Contains(lower, pattern) {
			report.add(model.PatternSequence, pattern, sequencePenalty,
				fmt.Sprintf("Contains sequential pattern: %q", pattern))
		}
	}

	if run, count := firstRepeatedRun(password); count >= minRepetitionRun {
		penalty := count
		if penalty > repetitionMaxPen {
			penalty = repetitionMaxPen
		}
		report.add(model.PatternRepetition, fmt.Sprintf("%sx%d", run, count), penalty,
			fmt.Sprintf("Contains repeated character: %q x%d", run, count))
	}

	if suffix := numericSuffix(password); suffix != "" && isSimpleSequence(suffix) {
		report.add(model.PatternNumericSuffix, suffix, numericSuffixPen,
			fmt.Sprintf("Simple number sequence at end: %q", suffix))
	}

	if len(report.Findings) == 0 {
		report.Feedback = append(report.Feedback, "No obvious patterns detected")
	}
	return report
}

func (r *PatternReport) add(kind model.PatternKind, text string, penalty int, feedback string) {
	r.Findings = append(r.Findings, model.PatternFinding{Kind: kind, Text: text, Penalty: penalty})
	r.Penalty += penalty
	r.Feedback = append(r.Feedback, feedback)
}

// firstRepeatedRun finds the leftmost run of 3+ identical runes and
// returns the repeated rune and the full run length. Later runs are
// ignored even when longer.
func firstRepeatedRun(password string) (string, int) {
	runes := []rune(password)
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= minRepetitionRun {
			return string(runes[i]), j - i
		}
		i = j
	}
	return "", 0
}

// numericSuffix returns the trailing ASCII digit run when it is at least
// three digits long.
func numericSuffix(password string) string {
	start := len(password)
	for start > 0 && password[start-1] >= '0' && password[start-1] <= '9' {
		start--
	}
	suffix := password[start:]
	if len(suffix) < minNumericSuffix {
		return ""
	}
	return suffix
}

// isSimpleSequence reports whether the digits ascend or descend by
// exactly one per step.
func isSimpleSequence(digits string) bool {
	if len(digits) < minNumericSuffix {
		return false
	}
	ascending, descending := true, true
	for i := 1; i < len(digits); i++ {
		step := int(digits[i]) - int(digits[i-1])
		if step != 1 {
			ascending = false
		}
		if step != -1 {
			descending = false
		}
	}
	return ascending || descending
}
