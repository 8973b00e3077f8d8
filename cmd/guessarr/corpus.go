package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/guessarr/internal/config"
	"github.com/vmunix/guessarr/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect the recorded parse corpus",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics for the corpus",
	RunE:  runCorpusStatsCmd,
}

var corpusLeftoversCmd = &cobra.Command{
	Use:   "leftovers",
	Short: "Most frequent unmatched fragments",
	Long: `List the leftover fragments that show up most often across recorded
parses. Frequent leftovers are usually release groups or format tags
worth adding to the [properties] tables in the config.`,
	RunE: runCorpusLeftoversCmd,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusLeftoversCmd)
	corpusLeftoversCmd.Flags().IntP("limit", "n", 20, "Number of fragments to show")
}

func openCorpusStore() (*corpus.Store, func(), error) {
	cfg, err := config.LoadWithoutValidation(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, nil, fmt.Errorf("no corpus database configured: set [database] path in %s", configPath)
	}
	db, err := corpus.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return corpus.NewStore(db), func() { _ = db.Close() }, nil
}

func runCorpusStatsCmd(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openCorpusStore()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	fmt.Printf("Parses:         %d\n", stats.Parses)
	fmt.Printf("With leftover:  %d\n", stats.WithLeftover)
	fmt.Printf("Fragments:      %d\n", stats.Fragments)
	return nil
}

func runCorpusLeftoversCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, closeDB, err := openCorpusStore()
	if err != nil {
		return err
	}
	defer closeDB()

	top, err := store.TopLeftovers(limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(top)
	}
	for _, lc := range top {
		fmt.Printf("%6d  %s\n", lc.Count, lc.Fragment)
	}
	return nil
}
