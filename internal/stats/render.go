package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/passmeter/internal/model"
)

const (
	fallbackWidth = 80
	barScale      = 5 // one bar cell per 5 percent
)

// TerminalWidth returns the current terminal width, or a backup value
// when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// RenderResult prints one analysis result. Verbose output adds the score
// breakdown, security metrics, feedback, and recommendations.
func RenderResult(w io.Writer, result model.AnalysisResult, verbose bool) error {
	if _, err := fmt.Fprintf(w, "Length: %d characters\n", result.Length); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Strength: %s\n", result.Strength); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %.1f/%d (%.1f%%)\n", result.TotalScore, result.MaxScore, result.Percentage); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Progress: [%s] %.1f%%\n", progressBar(result.Percentage), result.Percentage); err != nil {
		return err
	}
	if !verbose {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\nScore Breakdown"); err != nil {
		return err
	}
	headers := []string{"Category", "Points", "Cap"}
	rows := make([][]string, 0, len(result.Breakdown))
	for _, cat := range result.Breakdown {
		rows = append(rows, []string{
			strings.ReplaceAll(cat.Category, "_", " "),
			fmt.Sprintf("%.1f", cat.Points),
			fmt.Sprintf("%d", cat.Cap),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nSecurity Metrics"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Entropy: %.1f bits\n", result.Entropy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Character set size: %d\n", result.CharSetSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Common password: %t\n", result.IsCommon); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Patterns detected: %d\n", len(result.Patterns)); err != nil {
		return err
	}
	for _, pattern := range result.Patterns {
		if _, err := fmt.Fprintf(w, "  - %s\n", pattern); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nFeedback"); err != nil {
		return err
	}
	for _, line := range result.Feedback {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}

	if len(result.Recommendations) > 0 {
		if _, err := fmt.Fprintln(w, "\nRecommendations"); err != nil {
			return err
		}
		for _, rec := range result.Recommendations {
			if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderCompact prints a one-line summary plus warnings, for batch output.
func RenderCompact(w io.Writer, result model.AnalysisResult) error {
	if _, err := fmt.Fprintf(w, "Length: %d | Strength: %s | Score: %.0f/%d | Entropy: %.1f bits\n",
		result.Length, result.Strength, result.TotalScore, result.MaxScore, result.Entropy); err != nil {
		return err
	}
	if result.IsCommon {
		if _, err := fmt.Fprintln(w, "  Common password detected"); err != nil {
			return err
		}
	}
	if len(result.Patterns) > 0 {
		if _, err := fmt.Fprintf(w, "  Patterns: %s\n", result.PatternsJoined()); err != nil {
			return err
		}
	}
	return nil
}

// RenderBatchSummary prints aggregated statistics with a strength
// distribution bar per level.
func RenderBatchSummary(w io.Writer, batch model.BatchStatistics) error {
	if batch.TotalAnalyzed == 0 {
		_, err := fmt.Fprintln(w, "No passwords analyzed.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Batch Analysis Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total passwords analyzed: %d\n", batch.TotalAnalyzed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average score: %.1f/100\n", batch.AverageScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average entropy: %.1f bits\n", batch.AverageEntropy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Common passwords found: %d\n", batch.CommonPasswordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Passwords with patterns: %d\n", batch.PatternDetectedCount); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nStrength Distribution"); err != nil {
		return err
	}
	for _, level := range model.StrengthLevels {
		count := batch.StrengthDistribution[level.String()]
		pct := float64(count) / float64(batch.TotalAnalyzed) * 100
		bar := strings.Repeat("#", int(pct)/barScale)
		if _, err := fmt.Fprintf(w, "%-10s %4d (%5.1f%%) %s\n", level, count, pct, bar); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints stored analyses, newest last, with a score trend
// sparkline smoothed over the window.
func RenderHistory(w io.Writer, records []model.HistoryRecord, window int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No analysis history found.")
		return err
	}

	headers := []string{"Date", "Length", "Score", "Strength", "Entropy", "Common", "Patterns"}
	rows := make([][]string, 0, len(records))
	scores := make([]float64, 0, len(records))
	for _, rec := range records {
		common := "no"
		if rec.IsCommon {
			common = "yes"
		}
		rows = append(rows, []string{
			rec.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", rec.Length),
			fmt.Sprintf("%.0f", rec.TotalScore),
			rec.Strength.String(),
			fmt.Sprintf("%.1f", rec.Entropy),
			common,
			fmt.Sprintf("%d", rec.PatternCount),
		})
		scores = append(scores, rec.TotalScore)
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true, 4: true, 6: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	trend := MovingAverage(scores, window)
	if len(trend) > TerminalWidth() {
		trend = trend[len(trend)-TerminalWidth():]
	}
	if _, err := fmt.Fprintf(w, "\nScore trend: %s\n", Sparkline(trend)); err != nil {
		return err
	}
	return nil
}

func progressBar(percentage float64) string {
	total := 20
	filled := int(percentage) / barScale
	if filled > total {
		filled = total
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", total-filled)
}
