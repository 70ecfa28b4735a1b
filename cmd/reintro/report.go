package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fodmaplab/reintro/internal/cli"
	"github.com/fodmaplab/reintro/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <state.json>",
	Short: "Print a protocol progress report",
	Long:  `Builds a markdown report of the protocol so far and renders it for the terminal.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")

		if !plain {
			report.PrintBanner()
		}
		if err := cli.RunReport(cli.ReportOptions{StatePath: args[0], Plain: plain}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("plain", false, "Emit raw markdown instead of terminal rendering")
}
