package analyzer

import "unicode/utf8"

// Category names, in display order.
const (
	CategoryLength    = "length"
	CategoryCharTypes = "character_types"
	CategoryEntropy   = "entropy"
	CategoryCommon    = "common_password"
	CategoryPatterns  = "patterns"
	CategoryUnique    = "uniqueness"
)

// MaxScore is the upper bound of the composite score.
const MaxScore = 100

// patternPenaltyCap bounds the summed pattern penalty in scoring.
const patternPenaltyCap = 10

// scoreInput carries the precomputed metrics each category draws from, so
// every category function stays pure and the orchestrator computes each
// metric exactly once.
type scoreInput struct {
	password string
	length   int
	profile  CharProfile
	entropy  float64
	isCommon bool
	penalty  int
}

// scoreCategory is one row in the static scoring table. Table order is
// display order; scoring itself is order-independent.
type scoreCategory struct {
	name string
	cap  int
	fn   func(scoreInput) float64
}

var scoreCategories = []scoreCategory{
	{CategoryLength, 15, lengthScore},
	{CategoryCharTypes, CharTypesCap, charTypesScore},
	{CategoryEntropy, 30, entropyScore},
	{CategoryCommon, 0, commonScore},
	{CategoryPatterns, 0, patternScore},
	{CategoryUnique, 10, uniquenessScore},
}

func lengthScore(in scoreInput) float64 {
	switch {
	case in.length >= 16:
		return 15
	case in.length >= 12:
		return 12
	case in.length >= 8:
		return 8
	case in.length >= 6:
		return 4
	default:
		return 0
	}
}

func charTypesScore(in scoreInput) float64 {
	return float64(in.profile.DiversityPoints())
}

func entropyScore(in scoreInput) float64 {
	// No detected classes means no alphabet to draw from; without this
	// the empty password would keep the 5-point floor.
	if in.profile.CharSetSize == 0 {
		return 0
	}
	switch {
	case in.entropy >= 70:
		return 30
	case in.entropy >= 50:
		return 25
	case in.entropy >= 35:
		return 20
	case in.entropy >= 25:
		return 15
	case in.entropy >= 15:
		return 10
	default:
		return 5
	}
}

func commonScore(in scoreInput) float64 {
	if in.isCommon {
		return -20
	}
	return 0
}

func patternScore(in scoreInput) float64 {
	penalty := in.penalty
	if penalty > patternPenaltyCap {
		penalty = patternPenaltyCap
	}
	return -float64(penalty)
}

// uniquenessScore rewards character variety: distinct runes over length,
// scaled to at most 10 points. Low-variety strings like "aaaaaaaaaaaa"
// score well on length yet poorly here.
func uniquenessScore(in scoreInput) float64 {
	if in.length == 0 {
		return 0
	}
	distinct := map[rune]struct{}{}
	for _, r := range in.password {
		distinct[r] = struct{}{}
	}
	score := float64(len(distinct)) / float64(in.length) * 10
	if score > 10 {
		score = 10
	}
	return score
}

// newScoreInput precomputes the shared metrics for the scoring table.
func newScoreInput(password string, profile CharProfile, entropy float64, isCommon bool, patternPenalty int) scoreInput {
	return scoreInput{
		password: password,
		length:   utf8.RuneCountInString(password),
		profile:  profile,
		entropy:  entropy,
		isCommon: isCommon,
		penalty:  patternPenalty,
	}
}
