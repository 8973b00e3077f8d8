package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/guessarr/internal/config"
	"github.com/vmunix/guessarr/internal/corpus"
	"github.com/vmunix/guessarr/pkg/guess"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [root...]",
	Short: "Parse every video file under the configured roots",
	Long: `Walk the scan roots from the config file (or the roots given as
arguments), guess metadata for every video file found, and record the
outcomes in the corpus database when one is configured.`,
	RunE: runScanCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && len(args) > 0 {
			cfg = config.Default()
		} else {
			return fmt.Errorf("config: %w", err)
		}
	}

	roots := cfg.Scan.Roots
	if len(args) > 0 {
		roots = args
	}
	if len(roots) == 0 {
		return fmt.Errorf("no scan roots: configure [scan] roots or pass them as arguments")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Scan.LogLevel),
	}))

	extensions := make(map[string]bool, len(cfg.Scan.Extensions))
	for _, ext := range cfg.Scan.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	var paths []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("walk error", "path", path, "error", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
			if extensions[ext] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk %s: %w", root, err)
		}
	}
	logger.Info("scan starting", "roots", len(roots), "files", len(paths), "workers", cfg.Scan.Workers)

	opts := cfg.MatcherOptions()

	start := time.Now()
	results := make(chan ParseResult, len(paths))
	var eg errgroup.Group
	eg.SetLimit(cfg.Scan.Workers)
	for _, path := range paths {
		path := path
		eg.Go(func() error {
			m := guess.NewMatcher(path, opts...)
			results <- ParseResult{
				Filename: path,
				Guess:    m.Guess(),
				Leftover: m.Leftover(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	close(results)

	var withLeftover int
	collected := make([]ParseResult, 0, len(paths))
	for result := range results {
		if len(result.Leftover) > 0 {
			withLeftover++
		}
		logger.Debug("parsed", "path", result.Filename, "properties", result.Guess.Len(), "leftover", len(result.Leftover))
		collected = append(collected, result)
	}

	if cfg.Database.Path != "" {
		if err := recordParses(cfg, collected); err != nil {
			return err
		}
		logger.Info("recorded to corpus", "path", cfg.Database.Path)
	}

	logger.Info("scan done",
		"files", len(collected),
		"with_leftover", withLeftover,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if jsonOutput {
		return outputJSON(collected)
	}
	return nil
}

// recordParses writes all outcomes to the corpus database in a single
// transaction.
func recordParses(cfg *config.Config, results []ParseResult) error {
	db, err := corpus.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := corpus.NewStore(db).Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, result := range results {
		guessed, err := json.Marshal(result.Guess)
		if err != nil {
			return fmt.Errorf("encode guess for %s: %w", result.Filename, err)
		}
		if err := tx.Add(&corpus.Parse{
			Path:     result.Filename,
			Guessed:  string(guessed),
			Leftover: result.Leftover,
		}); err != nil {
			return err
		}
	}
	return tx.Commit()
}
