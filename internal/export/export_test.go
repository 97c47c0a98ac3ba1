package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/passmeter/internal/model"
)

func sampleResults() []model.AnalysisResult {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.AnalysisResult{
		{
			Length:     6,
			Strength:   model.VeryWeak,
			TotalScore: 2,
			MaxScore:   100,
			Percentage: 2,
			Entropy:    19.9,
			IsCommon:   true,
			Patterns: []model.PatternFinding{
				{Kind: model.PatternSequence, Text: "123456", Penalty: 2},
			},
			Timestamp: ts,
		},
		{
			Length:     14,
			Strength:   model.Strong,
			TotalScore: 78,
			MaxScore:   100,
			Percentage: 78,
			Entropy:    84.2,
			Timestamp:  ts.Add(time.Minute),
		},
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	results := sampleResults()
	statistics := model.BatchStatistics{
		TotalAnalyzed: 2,
		AverageScore:  40,
		StrengthDistribution: map[string]int{
			"VERY WEAK": 1, "WEAK": 0, "MEDIUM": 0, "STRONG": 1, "EXCELLENT": 0,
		},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, results, statistics); err != nil {
		t.Fatalf("write JSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if doc.Metadata.Version != Version {
		t.Errorf("expected version %q, got %q", Version, doc.Metadata.Version)
	}
	if doc.Metadata.TotalPasswords != 2 {
		t.Errorf("expected 2 passwords in metadata, got %d", doc.Metadata.TotalPasswords)
	}
	if doc.Metadata.ExportTime.IsZero() {
		t.Error("expected export time to be set")
	}
	if doc.Statistics.TotalAnalyzed != 2 {
		t.Errorf("expected 2 analyzed, got %d", doc.Statistics.TotalAnalyzed)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(doc.Results))
	}
	if !strings.Contains(buf.String(), `"strength_level": "VERY WEAK"`) {
		t.Error("expected strength level encoded as its label")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("write CSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "password_length" || rows[0][len(rows[0])-1] != "timestamp" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "VERY WEAK" {
		t.Errorf("expected VERY WEAK in first row, got %q", rows[1][1])
	}
	if rows[1][6] != "sequence: 123456" {
		t.Errorf("unexpected patterns cell: %q", rows[1][6])
	}
	if rows[2][6] != "None" {
		t.Errorf("expected None for pattern-free row, got %q", rows[2][6])
	}
	if rows[2][5] != "false" {
		t.Errorf("expected is_common false, got %q", rows[2][5])
	}
}

func TestWriteCSVEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write CSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
