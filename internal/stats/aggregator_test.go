package stats

import (
	"testing"

	"github.com/verte-zerg/passmeter/internal/model"
)

func resultWith(score, entropy float64, level model.StrengthLevel) model.AnalysisResult {
	return model.AnalysisResult{
		TotalScore: score,
		Entropy:    entropy,
		Strength:   level,
		MaxScore:   100,
	}
}

func TestAggregatorAverages(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(resultWith(10, 20, model.VeryWeak))
	agg.Fold(resultWith(90, 60, model.Excellent))

	snap := agg.Snapshot()
	if snap.TotalAnalyzed != 2 {
		t.Fatalf("expected 2 analyzed, got %d", snap.TotalAnalyzed)
	}
	if snap.AverageScore != 50.0 {
		t.Fatalf("expected average score 50.0, got %.4f", snap.AverageScore)
	}
	if snap.AverageEntropy != 40.0 {
		t.Fatalf("expected average entropy 40.0, got %.4f", snap.AverageEntropy)
	}
}

func TestAggregatorDistributionKeys(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(resultWith(90, 70, model.Excellent))

	snap := agg.Snapshot()
	if len(snap.StrengthDistribution) != len(model.StrengthLevels) {
		t.Fatalf("expected all %d labels present, got %v", len(model.StrengthLevels), snap.StrengthDistribution)
	}
	total := 0
	for _, level := range model.StrengthLevels {
		count, ok := snap.StrengthDistribution[level.String()]
		if !ok {
			t.Fatalf("missing label %q", level)
		}
		if count < 0 {
			t.Fatalf("negative count for %q", level)
		}
		total += count
	}
	if total != snap.TotalAnalyzed {
		t.Fatalf("distribution sums to %d, expected %d", total, snap.TotalAnalyzed)
	}
}

func TestAggregatorCounters(t *testing.T) {
	agg := NewAggregator()
	common := resultWith(5, 10, model.VeryWeak)
	common.IsCommon = true
	patterned := resultWith(30, 25, model.Weak)
	patterned.Patterns = []model.PatternFinding{{Kind: model.PatternKeyboard, Text: "qwerty", Penalty: 2}}
	agg.Fold(common)
	agg.Fold(patterned)

	snap := agg.Snapshot()
	if snap.CommonPasswordCount != 1 {
		t.Fatalf("expected 1 common, got %d", snap.CommonPasswordCount)
	}
	if snap.PatternDetectedCount != 1 {
		t.Fatalf("expected 1 with patterns, got %d", snap.PatternDetectedCount)
	}
}

func TestAggregatorReset(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(resultWith(42, 33, model.Medium))
	agg.Reset()

	snap := agg.Snapshot()
	if snap.TotalAnalyzed != 0 {
		t.Fatalf("expected 0 after reset, got %d", snap.TotalAnalyzed)
	}
	if snap.AverageScore != 0 || snap.AverageEntropy != 0 {
		t.Fatalf("expected zero averages after reset: %+v", snap)
	}
	for label, count := range snap.StrengthDistribution {
		if count != 0 {
			t.Fatalf("expected zero count for %q, got %d", label, count)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(resultWith(42, 33, model.Medium))

	snap := agg.Snapshot()
	snap.StrengthDistribution["MEDIUM"] = 99

	if agg.Snapshot().StrengthDistribution["MEDIUM"] != 1 {
		t.Fatalf("mutating a snapshot leaked into the aggregator")
	}
}
