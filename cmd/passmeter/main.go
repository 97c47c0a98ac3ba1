// Package main provides the CLI entrypoint for passmeter.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/passmeter/internal/analyzer"
	"github.com/verte-zerg/passmeter/internal/config"
	"github.com/verte-zerg/passmeter/internal/export"
	"github.com/verte-zerg/passmeter/internal/generator"
	"github.com/verte-zerg/passmeter/internal/model"
	"github.com/verte-zerg/passmeter/internal/stats"
	"github.com/verte-zerg/passmeter/internal/store"
	"github.com/verte-zerg/passmeter/internal/tui"
	"github.com/verte-zerg/passmeter/internal/wordlist"
)

const (
	defaultLength      = 16
	defaultCount       = 1
	defaultWords       = 4
	defaultSeparator   = "-"
	defaultTrendWindow = 5
)

var (
	analyzeVerbose   bool
	analyzeNoHistory bool

	batchFile      string
	batchOutput    string
	batchFormat    string
	batchVerbose   bool
	batchNoHistory bool

	generateLength    int
	generateCount     int
	generateNoUpper   bool
	generateNoDigits  bool
	generateNoSpecial bool
	generateNoAmbig   bool

	passphraseWords     int
	passphraseSeparator string
	passphraseCount     int
	passphraseWordlist  string

	statsSince  string
	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passmeter",
		Short:         "Password strength analyzer and generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runInteractiveCmd,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPassphraseCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runInteractiveCmd(_ *cobra.Command, _ []string) error {
	session := stats.NewAggregator()
	model := tui.NewModel(analyzer.New(), session)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if snap := session.Snapshot(); snap.TotalAnalyzed > 0 {
		if err := stats.RenderBatchSummary(os.Stdout, snap); err != nil {
			return fmt.Errorf("failed to render session summary: %w", err)
		}
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyze a single password",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "show detailed analysis")
	cmd.Flags().BoolVar(&analyzeNoHistory, "no-history", false, "do not record the result in history")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "verbose", &analyzeVerbose, fileCfg.Analyze.Verbose)
	applyBoolConfig(cmd, "no-history", &analyzeNoHistory, fileCfg.Analyze.NoHistory)

	password, err := resolvePassword(args)
	if err != nil {
		return err
	}

	result, err := analyzer.New().Analyze(password)
	if err != nil {
		return fmt.Errorf("failed to analyze password: %w", err)
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), result, analyzeVerbose); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if !analyzeNoHistory {
		if err := recordHistory([]model.AnalysisResult{result}); err != nil {
			logErrf("failed to record history: %v\n", err)
		}
	}
	return nil
}

// resolvePassword takes the password from the argument, or reads one line
// from stdin so secrets can be piped instead of appearing in shell history.
func resolvePassword(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return "", fmt.Errorf("no password provided")
	}
	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze passwords from a file",
		Args:  cobra.NoArgs,
		RunE:  runBatchCmd,
	}
	cmd.Flags().StringVarP(&batchFile, "file", "f", "", "input file, one password per line")
	cmd.Flags().StringVarP(&batchOutput, "output", "o", "", "export file path")
	cmd.Flags().StringVarP(&batchFormat, "format", "F", "json", "export format (json or csv)")
	cmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "show individual results")
	cmd.Flags().BoolVar(&batchNoHistory, "no-history", false, "do not record results in history")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		// Flag is declared above; marking it required cannot fail.
		panic(err)
	}
	return cmd
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	if batchFormat != "json" && batchFormat != "csv" {
		return fmt.Errorf("unsupported format %q (expected json or csv)", batchFormat)
	}
	passwords, err := readLines(batchFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", batchFile, err)
	}
	logErrf("Analyzing %d passwords from %s...\n", len(passwords), batchFile)

	agg := stats.NewAggregator()
	results, err := analyzer.NewWithStats(agg).AnalyzeBatch(passwords)
	if err != nil {
		return fmt.Errorf("failed to analyze batch: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderBatchSummary(out, agg.Snapshot()); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if batchVerbose {
		for i, result := range results {
			if _, err := fmt.Fprintf(out, "\n--- Password %d ---\n", i+1); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := stats.RenderCompact(out, result); err != nil {
				return fmt.Errorf("failed to render result: %w", err)
			}
		}
	}

	if batchOutput != "" {
		if err := exportResults(results, agg.Snapshot(), batchOutput, batchFormat); err != nil {
			return err
		}
		logErrf("Results exported to %s\n", batchOutput)
	}

	if !batchNoHistory {
		if err := recordHistory(results); err != nil {
			logErrf("failed to record history: %v\n", err)
		}
	}
	return nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no passwords found")
	}
	return lines, nil
}

func exportResults(results []model.AnalysisResult, statistics model.BatchStatistics, path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close export file: %v\n", cerr)
		}
	}()
	switch format {
	case "json":
		return export.WriteJSON(file, results, statistics)
	case "csv":
		return export.WriteCSV(file, results)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate secure passwords",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVarP(&generateLength, "length", "l", defaultLength, "password length")
	cmd.Flags().IntVarP(&generateCount, "count", "c", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&generateNoUpper, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&generateNoDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&generateNoSpecial, "no-special", false, "exclude special characters")
	cmd.Flags().BoolVar(&generateNoAmbig, "exclude-ambiguous", false, "exclude ambiguous characters (0, O, l, 1, ...)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "length", &generateLength, fileCfg.Generate.Length)
	applyIntConfig(cmd, "count", &generateCount, fileCfg.Generate.Count)
	applyBoolConfig(cmd, "no-uppercase", &generateNoUpper, fileCfg.Generate.NoUppercase)
	applyBoolConfig(cmd, "no-digits", &generateNoDigits, fileCfg.Generate.NoDigits)
	applyBoolConfig(cmd, "no-special", &generateNoSpecial, fileCfg.Generate.NoSpecial)
	applyBoolConfig(cmd, "exclude-ambiguous", &generateNoAmbig, fileCfg.Generate.ExcludeAmbiguous)

	if generateCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	cfg := model.GenerationConfig{
		Length:           generateLength,
		UseLowercase:     true,
		UseUppercase:     !generateNoUpper,
		UseDigits:        !generateNoDigits,
		UseSpecial:       !generateNoSpecial,
		ExcludeAmbiguous: generateNoAmbig,
	}

	out := cmd.OutOrStdout()
	for i := 0; i < generateCount; i++ {
		password, err := generator.Generate(cfg)
		if err != nil {
			return err
		}
		if err := printGenerated(out, i+1, "Password", password); err != nil {
			return err
		}
	}
	return nil
}

func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate passphrases",
		Args:  cobra.NoArgs,
		RunE:  runPassphraseCmd,
	}
	cmd.Flags().IntVarP(&passphraseWords, "words", "w", defaultWords, "number of words")
	cmd.Flags().StringVar(&passphraseSeparator, "separator", defaultSeparator, "word separator")
	cmd.Flags().IntVarP(&passphraseCount, "count", "c", defaultCount, "number of passphrases")
	cmd.Flags().StringVar(&passphraseWordlist, "wordlist", "", "custom word list file")
	return cmd
}

func runPassphraseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &passphraseWords, fileCfg.Passphrase.Words)
	applyStringConfig(cmd, "separator", &passphraseSeparator, fileCfg.Passphrase.Separator)
	applyStringConfig(cmd, "wordlist", &passphraseWordlist, fileCfg.Passphrase.Wordlist)

	if passphraseCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	words := wordlist.DefaultWords()
	if passphraseWordlist != "" {
		words, err = wordlist.LoadWords(passphraseWordlist)
		if err != nil {
			return fmt.Errorf("failed to load word list %s: %w", passphraseWordlist, err)
		}
	}

	out := cmd.OutOrStdout()
	for i := 0; i < passphraseCount; i++ {
		passphrase, err := generator.GeneratePassphrase(passphraseWords, passphraseSeparator, words)
		if err != nil {
			return err
		}
		if err := printGenerated(out, i+1, "Passphrase", passphrase); err != nil {
			return err
		}
	}
	return nil
}

// printGenerated prints a generated secret with its analysis, which never
// counts toward batch statistics or history.
func printGenerated(out io.Writer, index int, kind, secret string) error {
	if _, err := fmt.Fprintf(out, "%s %d: %s\n", kind, index, secret); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	result, err := analyzer.New().Analyze(secret)
	if err != nil {
		return fmt.Errorf("failed to analyze generated secret: %w", err)
	}
	if _, err := fmt.Fprintf(out, "  Strength: %s (%.0f/%d)\n", result.Strength, result.TotalScore, result.MaxScore); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "  Entropy: %.1f bits\n\n", result.Entropy); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show analysis history statistics",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N analyses")
	cmd.Flags().IntVar(&statsWindow, "window", defaultTrendWindow, "moving average window for the score trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	filter := model.HistoryFilter{Since: sinceTime, Last: statsLast}
	batch, records, err := st.AggregateHistory(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderBatchSummary(out, batch); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if len(records) > 0 {
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := stats.RenderHistory(out, records, statsWindow); err != nil {
			return fmt.Errorf("failed to render history: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func recordHistory(results []model.AnalysisResult) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	ctx := context.Background()
	for _, result := range results {
		if _, err := st.InsertAnalysis(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# passmeter configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# verbose = false          # Show detailed analysis
# no-history = false       # Do not record results

[generate]
# length = %d              # Password length
# count = %d                # Passwords per run
# no-uppercase = false     # Exclude uppercase letters
# no-digits = false        # Exclude digits
# no-special = false       # Exclude special characters
# exclude-ambiguous = false

[passphrase]
# words = %d                # Words per passphrase
# separator = %q          # Word separator
# wordlist = ""            # Custom word list path
`,
		defaultLength,
		defaultCount,
		defaultWords,
		defaultSeparator,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
