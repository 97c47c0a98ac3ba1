// Package export writes analysis results to JSON and CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/passmeter/internal/model"
)

// Version identifies the export schema producer.
const Version = "1.0.0"

// Metadata describes one export.
type Metadata struct {
	Version        string    `json:"version"`
	ExportTime     time.Time `json:"export_time"`
	TotalPasswords int       `json:"total_passwords"`
}

// Document is the JSON export envelope.
type Document struct {
	Metadata   Metadata               `json:"metadata"`
	Statistics model.BatchStatistics  `json:"statistics"`
	Results    []model.AnalysisResult `json:"results"`
}

// WriteJSON writes results and statistics as an indented JSON document.
func WriteJSON(w io.Writer, results []model.AnalysisResult, statistics model.BatchStatistics) error {
	doc := Document{
		Metadata: Metadata{
			Version:        Version,
			ExportTime:     time.Now(),
			TotalPasswords: len(results),
		},
		Statistics: statistics,
		Results:    results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"password_length", "strength_level", "total_score", "percentage",
	"entropy", "is_common", "patterns_found", "timestamp",
}

// WriteCSV writes one row per result.
func WriteCSV(w io.Writer, results []model.AnalysisResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		row := []string{
			strconv.Itoa(result.Length),
			result.Strength.String(),
			strconv.FormatFloat(result.TotalScore, 'f', 1, 64),
			strconv.FormatFloat(result.Percentage, 'f', 1, 64),
			strconv.FormatFloat(result.Entropy, 'f', 1, 64),
			strconv.FormatBool(result.IsCommon),
			result.PatternsJoined(),
			result.Timestamp.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV export: %w", err)
	}
	return nil
}
