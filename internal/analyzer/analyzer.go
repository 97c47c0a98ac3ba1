package analyzer

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/passmeter/internal/model"
	"github.com/verte-zerg/passmeter/internal/stats"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8. Analysis
// is total over all valid strings, including the empty string.
var ErrInvalidUTF8 = errors.New("password is not valid UTF-8")

// Analyzer runs the full analysis pipeline. An optional aggregator
// receives every result; sessions that do not track statistics pass nil.
type Analyzer struct {
	agg *stats.Aggregator
}

// New returns an analyzer without statistics tracking.
func New() *Analyzer {
	return &Analyzer{}
}

// NewWithStats returns an analyzer that folds every result into agg.
func NewWithStats(agg *stats.Aggregator) *Analyzer {
	return &Analyzer{agg: agg}
}

// Analyze runs every check once, assembles the result, and folds it into
// the aggregator when one is attached. Deterministic for a given input;
// a weak or common password is a normal result, never an error.
func (a *Analyzer) Analyze(password string) (model.AnalysisResult, error) {
	if !utf8.ValidString(password) {
		return model.AnalysisResult{}, ErrInvalidUTF8
	}

	profile := ClassifyChars(password)
	entropy, charSetSize := Entropy(password)
	common := CheckCommon(password)
	patterns := DetectPatterns(password)

	input := newScoreInput(password, profile, entropy, common.IsCommon, patterns.Penalty)
	breakdown := make([]model.CategoryScore, 0, len(scoreCategories))
	total := 0.0
	for _, category := range scoreCategories {
		points := category.fn(input)
		total += points
		breakdown = append(breakdown, model.CategoryScore{
			Category: category.name,
			Points:   points,
			Cap:      category.cap,
		})
	}
	if total < 0 {
		total = 0
	}
	if total > MaxScore {
		total = MaxScore
	}

	result := model.AnalysisResult{
		Length:          input.length,
		Strength:        Classify(total),
		TotalScore:      total,
		MaxScore:        MaxScore,
		Percentage:      total / MaxScore * 100,
		Entropy:         entropy,
		CharSetSize:     charSetSize,
		IsCommon:        common.IsCommon,
		Patterns:        patterns.Findings,
		Breakdown:       breakdown,
		Feedback:        buildFeedback(entropy, profile, common, patterns),
		Recommendations: buildRecommendations(input.length, profile, entropy, common.IsCommon),
		Timestamp:       time.Now(),
	}

	if a.agg != nil {
		a.agg.Fold(result)
	}
	return result, nil
}

// AnalyzeBatch analyzes passwords in order. It stops at the first error,
// which can only be invalid UTF-8 input.
func (a *Analyzer) AnalyzeBatch(passwords []string) ([]model.AnalysisResult, error) {
	results := make([]model.AnalysisResult, 0, len(passwords))
	for _, password := range passwords {
		result, err := a.Analyze(password)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Score boundaries for strength classification, inclusive-lower.
const (
	excellentThreshold = 80
	strongThreshold    = 65
	mediumThreshold    = 45
	weakThreshold      = 25
)

// Classify maps a composite score to its strength level.
func Classify(score float64) model.StrengthLevel {
	switch {
	case score >= excellentThreshold:
		return model.Excellent
	case score >= strongThreshold:
		return model.Strong
	case score >= mediumThreshold:
		return model.Medium
	case score >= weakThreshold:
		return model.Weak
	default:
		return model.VeryWeak
	}
}

func buildFeedback(entropy float64, profile CharProfile, common CommonMatch, patterns PatternReport) []string {
	feedback := make([]string, 0, 2+len(patterns.Feedback))
	if profile.CharSetSize == 0 {
		feedback = append(feedback, "Empty password has no entropy")
	} else {
		feedback = append(feedback, fmt.Sprintf("%s entropy: %.1f bits (%s)",
			titleCase(EntropyBand(entropy)), entropy, joinClasses(profile)))
	}
	feedback = append(feedback, common.Feedback)
	feedback = append(feedback, patterns.Feedback...)
	return feedback
}

// buildRecommendations emits one recommendation per unmet criterion.
func buildRecommendations(length int, profile CharProfile, entropy float64, isCommon bool) []string {
	var recs []string
	if length < 12 {
		recs = append(recs, "Use at least 12 characters")
	}
	if !profile.HasUpper {
		recs = append(recs, "Add uppercase letters")
	}
	if !profile.HasLower {
		recs = append(recs, "Add lowercase letters")
	}
	if !profile.HasDigit {
		recs = append(recs, "Add numbers")
	}
	if !profile.HasSpecial {
		recs = append(recs, "Add special characters")
	}
	if entropy < entropyGood {
		recs = append(recs, "Increase randomness - avoid predictable patterns")
	}
	if isCommon {
		recs = append(recs, "Avoid common passwords and variations")
	}
	return recs
}

func joinClasses(profile CharProfile) string {
	names := profile.ClassNames()
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
