// Package stats contains batch statistics and report rendering.
package stats

import (
	"sync"

	"github.com/verte-zerg/passmeter/internal/model"
)

// Aggregator maintains running counts and averages across analyzed
// passwords. Each analysis session owns its own instance; there is no
// process-wide accumulator.
//
// All methods are safe for concurrent use. When results are folded from
// multiple goroutines, the floating-point order of operations may differ
// between runs, so running averages can vary in the last bits.
type Aggregator struct {
	mu sync.Mutex

	totalAnalyzed  int
	distribution   map[model.StrengthLevel]int
	averageScore   float64
	averageEntropy float64
	commonCount    int
	patternCount   int
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{distribution: map[model.StrengthLevel]int{}}
}

// Fold incorporates one analysis result using incremental averages,
// avg += (value - avg) / n, which stays stable for large batches.
func (a *Aggregator) Fold(result model.AnalysisResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalAnalyzed++
	a.distribution[result.Strength]++

	n := float64(a.totalAnalyzed)
	a.averageScore += (result.TotalScore - a.averageScore) / n
	a.averageEntropy += (result.Entropy - a.averageEntropy) / n

	if result.IsCommon {
		a.commonCount++
	}
	if len(result.Patterns) > 0 {
		a.patternCount++
	}
}

// Snapshot returns an immutable copy of the current statistics. The
// distribution always carries all five strength labels.
func (a *Aggregator) Snapshot() model.BatchStatistics {
	a.mu.Lock()
	defer a.mu.Unlock()

	distribution := make(map[string]int, len(model.StrengthLevels))
	for _, level := range model.StrengthLevels {
		distribution[level.String()] = a.distribution[level]
	}
	return model.BatchStatistics{
		TotalAnalyzed:        a.totalAnalyzed,
		StrengthDistribution: distribution,
		AverageScore:         a.averageScore,
		AverageEntropy:       a.averageEntropy,
		CommonPasswordCount:  a.commonCount,
		PatternDetectedCount: a.patternCount,
	}
}

// Reset returns the aggregator to its zero state.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalAnalyzed = 0
	a.distribution = map[model.StrengthLevel]int{}
	a.averageScore = 0
	a.averageEntropy = 0
	a.commonCount = 0
	a.patternCount = 0
}
