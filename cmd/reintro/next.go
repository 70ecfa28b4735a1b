package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fodmaplab/reintro/internal/cli"
)

var nextCmd = &cobra.Command{
	Use:   "next <state.json>",
	Short: "Compute the next protocol step for a snapshot",
	Long: `Reads a protocol snapshot from a JSON file and prints the next action
as JSON on stdout. The decision is computed for --now (RFC 3339), or the
current time when omitted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		now, _ := cmd.Flags().GetString("now")
		pretty, _ := cmd.Flags().GetBool("pretty")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunNext(cli.NextOptions{
			StatePath: args[0],
			Now:       now,
			Pretty:    pretty,
			Debug:     debug,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	nextCmd.Flags().String("now", "", "Decision timestamp (RFC 3339), defaults to the current time")
	nextCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
