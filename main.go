package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "1.0.0"

func main() {
	if handled := handleCLIArgs(os.Args[1:]); handled {
		return
	}

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	logger, err := NewLogger(slog.LevelInfo, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	logger.Info("nissaya_compare starting", map[string]any{
		"version": appVersion,
		"drafts":  len(cfg.Sources),
		"engine":  cfg.Engine.String(),
	})

	watcher, err := NewWatcher()
	if err != nil {
		logger.Warn("live reload disabled", map[string]any{"error": err.Error()})
		watcher = nil
	} else {
		defer watcher.Close()
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = cwd
	}

	program := tea.NewProgram(
		NewModel(cfg, NewDocumentLoader(cwd, logger), watcher, logger),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}

	reportLoggerStats(logger)
	return nil
}

func reportLoggerStats(logger *Logger) {
	if !logger.HasErrors() {
		return
	}

	stats := logger.Session()
	fmt.Fprintf(os.Stderr, "\ncompleted with %d error(s)\n", stats.Errors)
	for _, op := range sortedCountKeys(stats.Failures) {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", op, stats.Failures[op])
	}
	if stats.LastFailure != "" {
		fmt.Fprintf(os.Stderr, "last error: %s\n", stats.LastFailure)
	}
	if stats.Warnings > 0 {
		fmt.Fprintf(os.Stderr, "warnings: %d\n", stats.Warnings)
	}
}

func handleCLIArgs(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch {
	case isHelpArg(args[0]):
		printVersion()
		printUsage()
		return true
	case strings.EqualFold(args[0], "version") || args[0] == "--version":
		printVersion()
		return true
	}
	return false
}

// parseArgs turns command line arguments into a Config. Anything that is
// not a flag is a draft source; at most maxDocuments are accepted.
func parseArgs(args []string) (Config, error) {
	var cfg Config
	for _, arg := range args {
		switch {
		case arg == "--word":
			cfg.CompareMode = WordMode
		case arg == "--side-by-side":
			cfg.ViewMode = SideBySideView
		case strings.HasPrefix(arg, "--engine="):
			engine, err := parseDiffEngine(strings.TrimPrefix(arg, "--engine="))
			if err != nil {
				return Config{}, err
			}
			cfg.Engine = engine
		case strings.HasPrefix(arg, "--export-dir="):
			cfg.ExportDir = strings.TrimPrefix(arg, "--export-dir=")
		case strings.HasPrefix(arg, "--"):
			return Config{}, fmt.Errorf("unknown flag %s", arg)
		default:
			cfg.Sources = append(cfg.Sources, arg)
		}
	}

	if len(cfg.Sources) > maxDocuments {
		return Config{}, fmt.Errorf("at most %d drafts can be compared, got %d", maxDocuments, len(cfg.Sources))
	}
	return cfg, nil
}

func printVersion() {
	fmt.Printf("nissaya_compare %s\n", appVersion)
}

func printUsage() {
	fmt.Println("usage: nissaya_compare [--word] [--side-by-side] [--engine=difflib|dmp] [--export-dir=DIR] DRAFT...")
	fmt.Println("  DRAFT is a .txt path or REV:path (for example HEAD~1:chapter1.txt), up to 4 drafts")
}

func isHelpArg(arg string) bool {
	return strings.EqualFold(arg, "help") || arg == "-h" || arg == "--help"
}
