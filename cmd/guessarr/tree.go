package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/guessarr/pkg/guess"
)

var treeCmd = &cobra.Command{
	Use:   "tree <filename>",
	Short: "Show how a file name was carved up",
	Long: `Show the match tree for a file name: which path segment, explicit
group and fragment each piece of text ended up in, and what was left
unmatched. Useful when a guess comes out wrong.`,
	Args: cobra.ExactArgs(1),
	RunE: runTreeCmd,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTreeCmd(cmd *cobra.Command, args []string) error {
	opts, err := matcherOptions()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m := guess.NewMatcher(args[0], opts...)

	if jsonOutput {
		return outputJSON([]ParseResult{{
			Filename: args[0],
			Guess:    m.Guess(),
			Leftover: m.Leftover(),
		}})
	}

	fmt.Println(m.TreeString())
	if leftover := m.Leftover(); len(leftover) > 0 {
		fmt.Printf("\nleftover: %s\n", strings.Join(leftover, ", "))
	}
	return nil
}
