package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fodmaplab/reintro/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <state.json>",
	Short: "Check a protocol snapshot for consistency",
	Long:  `Validates a snapshot file: field shapes, enumerations and cross-field consistency.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		if err := cli.RunValidate(cli.ValidateOptions{StatePath: args[0], Debug: debug}); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
