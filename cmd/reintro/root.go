package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reintro",
	Short: "Reintro is a FODMAP reintroduction protocol decision engine",
	Long: `Reintro computes the next step of a FODMAP reintroduction protocol
from a patient's snapshot: which food to test, which dose to take, or how
long to wait out a washout.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "reintro.yaml", "Path to the server configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
