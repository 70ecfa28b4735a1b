package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fodmaplab/reintro"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of reintro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reintro version %s\n", strings.TrimSpace(reintro.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
