// Package model defines shared data structures.
package model

import "time"

// StrengthLevel is the ordinal strength classification of a password.
type StrengthLevel int

// Strength levels, weakest first.
const (
	VeryWeak StrengthLevel = iota
	Weak
	Medium
	Strong
	Excellent
)

// StrengthLevels lists all levels in ascending order.
var StrengthLevels = []StrengthLevel{VeryWeak, Weak, Medium, Strong, Excellent}

// String returns the canonical label for the level.
func (l StrengthLevel) String() string {
	switch l {
	case VeryWeak:
		return "VERY WEAK"
	case Weak:
		return "WEAK"
	case Medium:
		return "MEDIUM"
	case Strong:
		return "STRONG"
	case Excellent:
		return "EXCELLENT"
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the level as its canonical label.
func (l StrengthLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// PatternKind identifies the kind of structural pattern found in a password.
type PatternKind string

// Pattern kinds reported by the detector.
const (
	PatternKeyboard      PatternKind = "keyboard"
	PatternSequence      PatternKind = "sequence"
	PatternRepetition    PatternKind = "repetition"
	PatternNumericSuffix PatternKind = "numeric_suffix"
)

// PatternFinding describes one detected pattern. The order of findings in
// AnalysisResult.Patterns is detection order, not significance.
type PatternFinding struct {
	Kind    PatternKind `json:"kind"`
	Text    string      `json:"text"`
	Penalty int         `json:"penalty"`
}

// String renders the finding the way it appears in reports and exports.
func (f PatternFinding) String() string {
	return string(f.Kind) + ": " + f.Text
}

// CategoryScore is one scoring category's contribution. A slice of these
// forms the score breakdown; slice order is display order.
type CategoryScore struct {
	Category string  `json:"category"`
	Points   float64 `json:"points"`
	Cap      int     `json:"cap"`
}

// AnalysisResult holds the full outcome of analyzing one password.
// It is created fresh per analysis and never mutated afterwards.
type AnalysisResult struct {
	Length          int              `json:"password_length"`
	Strength        StrengthLevel    `json:"strength_level"`
	TotalScore      float64          `json:"total_score"`
	MaxScore        int              `json:"max_score"`
	Percentage      float64          `json:"percentage"`
	Entropy         float64          `json:"entropy"`
	CharSetSize     int              `json:"char_set_size"`
	IsCommon        bool             `json:"is_common"`
	Patterns        []PatternFinding `json:"patterns_found"`
	Breakdown       []CategoryScore  `json:"score_breakdown"`
	Feedback        []string         `json:"feedback"`
	Recommendations []string         `json:"recommendations"`
	Timestamp       time.Time        `json:"timestamp"`
}

// PatternsJoined returns all findings comma-joined, or "None".
func (r AnalysisResult) PatternsJoined() string {
	if len(r.Patterns) == 0 {
		return "None"
	}
	out := ""
	for i, p := range r.Patterns {
		if i > 0 {
			out += ", "
		}
		out += p.String()
	}
	return out
}

// BatchStatistics is an immutable snapshot of aggregated analysis counters.
type BatchStatistics struct {
	TotalAnalyzed        int            `json:"total_analyzed"`
	StrengthDistribution map[string]int `json:"strength_distribution"`
	AverageScore         float64        `json:"average_score"`
	AverageEntropy       float64        `json:"average_entropy"`
	CommonPasswordCount  int            `json:"common_password_count"`
	PatternDetectedCount int            `json:"pattern_detected_count"`
}

// GenerationConfig defines password generation settings. Invalid configs
// are rejected by the generator, never silently repaired.
type GenerationConfig struct {
	Length           int
	UseLowercase     bool
	UseUppercase     bool
	UseDigits        bool
	UseSpecial       bool
	ExcludeAmbiguous bool
}

// DefaultGenerationConfig returns a 16-character all-classes config.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Length:       16,
		UseLowercase: true,
		UseUppercase: true,
		UseDigits:    true,
		UseSpecial:   true,
	}
}

// ClassCount returns the number of selected character classes.
func (c GenerationConfig) ClassCount() int {
	n := 0
	for _, on := range []bool{c.UseLowercase, c.UseUppercase, c.UseDigits, c.UseSpecial} {
		if on {
			n++
		}
	}
	return n
}

// HistoryRecord is one persisted analysis, without the password itself.
type HistoryRecord struct {
	ID           int64
	CreatedAt    time.Time
	Length       int
	CharSetSize  int
	Entropy      float64
	IsCommon     bool
	PatternCount int
	TotalScore   float64
	Strength     StrengthLevel
	Patterns     string
}

// HistoryFilter selects history records for reporting.
type HistoryFilter struct {
	Since *time.Time
	Last  int
}
