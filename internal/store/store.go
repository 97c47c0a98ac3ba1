// Package store handles SQLite persistence of analysis history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/passmeter/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for analysis history. Only derived metrics are
// persisted; the passwords themselves never touch disk.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			length INTEGER NOT NULL,
			char_set_size INTEGER NOT NULL,
			entropy REAL NOT NULL,
			is_common INTEGER NOT NULL,
			pattern_count INTEGER NOT NULL,
			total_score REAL NOT NULL,
			strength TEXT NOT NULL,
			patterns TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_strength ON analyses(strength);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores the derived metrics of one analysis result.
func (s *Store) InsertAnalysis(ctx context.Context, result model.AnalysisResult) (int64, error) {
	patterns := ""
	if len(result.Patterns) > 0 {
		patterns = result.PatternsJoined()
	}
	isCommon := 0
	if result.IsCommon {
		isCommon = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (created_at, length, char_set_size, entropy, is_common, pattern_count, total_score, strength, patterns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Timestamp.Format(time.RFC3339Nano),
		result.Length,
		result.CharSetSize,
		result.Entropy,
		isCommon,
		len(result.Patterns),
		result.TotalScore,
		result.Strength.String(),
		patterns,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAnalyses returns history records matching the filter, oldest first.
func (s *Store) ListAnalyses(ctx context.Context, filter model.HistoryFilter) ([]model.HistoryRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, created_at, length, char_set_size, entropy, is_common, pattern_count, total_score, strength, patterns
		FROM analyses
		WHERE %s
		ORDER BY created_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		var createdAt, strength string
		var isCommon int
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Length, &rec.CharSetSize, &rec.Entropy,
			&isCommon, &rec.PatternCount, &rec.TotalScore, &strength, &rec.Patterns); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		rec.IsCommon = isCommon != 0
		rec.Strength = parseStrength(strength)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(records) > filter.Last {
		records = records[len(records)-filter.Last:]
	}
	return records, nil
}

// AggregateHistory folds history records matching the filter into batch
// statistics, reusing the same incremental fold as live analysis.
func (s *Store) AggregateHistory(ctx context.Context, filter model.HistoryFilter) (model.BatchStatistics, []model.HistoryRecord, error) {
	records, err := s.ListAnalyses(ctx, filter)
	if err != nil {
		return model.BatchStatistics{}, nil, err
	}
	distribution := make(map[string]int, len(model.StrengthLevels))
	for _, level := range model.StrengthLevels {
		distribution[level.String()] = 0
	}
	statsOut := model.BatchStatistics{StrengthDistribution: distribution}
	for _, rec := range records {
		statsOut.TotalAnalyzed++
		distribution[rec.Strength.String()]++
		n := float64(statsOut.TotalAnalyzed)
		statsOut.AverageScore += (rec.TotalScore - statsOut.AverageScore) / n
		statsOut.AverageEntropy += (rec.Entropy - statsOut.AverageEntropy) / n
		if rec.IsCommon {
			statsOut.CommonPasswordCount++
		}
		if rec.PatternCount > 0 {
			statsOut.PatternDetectedCount++
		}
	}
	return statsOut, records, nil
}

func parseStrength(label string) model.StrengthLevel {
	for _, level := range model.StrengthLevels {
		if level.String() == label {
			return level
		}
	}
	return model.VeryWeak
}
