package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/input/key"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <spelling>...",
		Short: "Print the canonical form of key combinations",
		Long: `Print the canonical form of each spelling: segments lowercased,
aliases such as ctrl and esc expanded, and segments sorted.`,
		Example: `  hotkeys normalize Ctrl+Shift+K esc up+ctrl`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, spelling := range args {
				fmt.Fprintf(out, "%s\t%s\n", spelling, key.Normalize(spelling))
			}
		},
	}
}
