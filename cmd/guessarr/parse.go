package main

import (
	"bufio"
	"encoding"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/guessarr/pkg/guess"
)

// ParseResult is one parsed file name with what could not be matched.
type ParseResult struct {
	Filename string      `json:"filename"`
	Guess    guess.Guess `json:"guess"`
	Leftover []string    `json:"leftover,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>",
	Short: "Guess metadata from a file name",
	Long: `Guess metadata from a release-style file name.

Examples:
  guessarr parse "Dexter.S02E13.720p.HDTV.x264-0TV.mkv"
  guessarr parse --file names.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read file names from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	if inputFile != "" {
		var err error
		names, err = readNamesFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	} else if len(args) > 0 {
		names = []string{args[0]}
	} else {
		return fmt.Errorf("usage: guessarr parse <filename> or guessarr parse --file <filename>")
	}

	opts, err := matcherOptions()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	results := make([]ParseResult, 0, len(names))
	for _, name := range names {
		m := guess.NewMatcher(name, opts...)
		results = append(results, ParseResult{
			Filename: name,
			Guess:    m.Guess(),
			Leftover: m.Leftover(),
		})
	}

	if jsonOutput {
		return outputJSON(results)
	}
	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		printHumanReadable(result)
	}
	return nil
}

// readNamesFile reads file names from a file, one per line.
func readNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

// printHumanReadable outputs a parse result with one aligned line per
// guessed property, confidence in parentheses.
func printHumanReadable(result ParseResult) {
	fmt.Printf("%s\n", result.Filename)
	g := result.Guess
	for _, prop := range g.Properties() {
		v, _ := g.Value(prop)
		fmt.Printf("  %-18s %-24s (%.2f)\n", prop+":", displayValue(v), g.Confidence(prop))
	}
	if len(result.Leftover) > 0 {
		fmt.Printf("  %-18s %s\n", "leftover:", strings.Join(result.Leftover, ", "))
	}
}

// displayValue renders a guessed value for human output. Dates and
// language tags know how to render themselves.
func displayValue(v any) string {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		if b, err := tm.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}

// outputJSON prints a single result as an object, several as an array.
func outputJSON(results []ParseResult) error {
	var output any = results
	if len(results) == 1 {
		output = results[0]
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
