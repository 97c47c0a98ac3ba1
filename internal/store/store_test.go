package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/passmeter/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "passmeter.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func sampleResult(score float64, level model.StrengthLevel, at time.Time) model.AnalysisResult {
	return model.AnalysisResult{
		Length:      10,
		Strength:    level,
		TotalScore:  score,
		MaxScore:    100,
		Percentage:  score,
		Entropy:     score / 2,
		CharSetSize: 36,
		Timestamp:   at,
	}
}

func TestInsertAndListAnalyses(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	for i, score := range []float64{20, 50, 80} {
		result := sampleResult(score, model.Medium, base.Add(time.Duration(i)*time.Minute))
		if _, err := st.InsertAnalysis(ctx, result); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	records, err := st.ListAnalyses(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].TotalScore != 20 || records[2].TotalScore != 80 {
		t.Fatalf("expected oldest-first ordering: %+v", records)
	}
}

func TestListAnalysesFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	for i := 0; i < 5; i++ {
		result := sampleResult(float64(i*10), model.Weak, base.Add(time.Duration(i)*time.Hour))
		if _, err := st.InsertAnalysis(ctx, result); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	since := base.Add(2 * time.Hour)
	records, err := st.ListAnalyses(ctx, model.HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records since cutoff, got %d", len(records))
	}

	records, err = st.ListAnalyses(ctx, model.HistoryFilter{Last: 2})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected last 2 records, got %d", len(records))
	}
	if records[1].TotalScore != 40 {
		t.Fatalf("expected newest record last: %+v", records)
	}
}

func TestInsertAnalysisRoundTripsFields(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	result := sampleResult(12, model.VeryWeak, time.Unix(0, 0).UTC())
	result.IsCommon = true
	result.Patterns = []model.PatternFinding{
		{Kind: model.PatternKeyboard, Text: "qwerty", Penalty: 2},
	}
	if _, err := st.InsertAnalysis(ctx, result); err != nil {
		t.Fatalf("insert: %v", err)
	}

	records, err := st.ListAnalyses(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if !rec.IsCommon {
		t.Fatalf("expected is_common preserved")
	}
	if rec.PatternCount != 1 {
		t.Fatalf("expected 1 pattern, got %d", rec.PatternCount)
	}
	if rec.Strength != model.VeryWeak {
		t.Fatalf("expected VERY WEAK, got %s", rec.Strength)
	}
	if rec.Patterns != "keyboard: qwerty" {
		t.Fatalf("unexpected patterns text: %q", rec.Patterns)
	}
}

func TestAggregateHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	weak := sampleResult(10, model.VeryWeak, base)
	weak.IsCommon = true
	strong := sampleResult(90, model.Excellent, base.Add(time.Minute))
	for _, result := range []model.AnalysisResult{weak, strong} {
		if _, err := st.InsertAnalysis(ctx, result); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	batch, records, err := st.AggregateHistory(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if batch.TotalAnalyzed != 2 {
		t.Fatalf("expected 2 analyzed, got %d", batch.TotalAnalyzed)
	}
	if batch.AverageScore != 50 {
		t.Fatalf("expected average 50, got %.2f", batch.AverageScore)
	}
	if batch.CommonPasswordCount != 1 {
		t.Fatalf("expected 1 common, got %d", batch.CommonPasswordCount)
	}
	if batch.StrengthDistribution["EXCELLENT"] != 1 {
		t.Fatalf("unexpected distribution: %v", batch.StrengthDistribution)
	}
}
