package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fodmaplab/reintro/internal/cli"
	"github.com/fodmaplab/reintro/internal/config"
	"github.com/fodmaplab/reintro/pkg/ports"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored protocols",
	Long:  `List, inspect, and remove protocol snapshots from the configured store.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List users with a stored protocol",
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := getStore(cmd)
		defer closeStore()

		users, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing protocols: %v\n", err)
			os.Exit(1)
		}

		if len(users) == 0 {
			fmt.Println("No stored protocols found.")
			return
		}

		fmt.Println("Stored protocols:")
		for _, u := range users {
			fmt.Println("- " + u)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <user-id>",
	Short: "Inspect a stored protocol snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID := args[0]
		store, closeStore := getStore(cmd)
		defer closeStore()

		state, err := store.Load(cmd.Context(), userID)
		if err != nil {
			fmt.Printf("Error loading protocol '%s': %v\n", userID, err)
			os.Exit(1)
		}

		// Pretty print JSON
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <user-id>...",
	Short: "Remove one or more stored protocols",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := getStore(cmd)
		defer closeStore()
		hasError := false

		for _, userID := range args {
			if err := store.Delete(cmd.Context(), userID); err != nil {
				fmt.Printf("Error removing '%s': %v\n", userID, err)
				hasError = true
			} else {
				fmt.Printf("Removed protocol for '%s'\n", userID)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
}

func getStore(cmd *cobra.Command) (ports.ProtocolStore, func()) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := cli.NewStore(cfg.Store)
	if err != nil {
		fmt.Printf("Error initializing store: %v\n", err)
		os.Exit(1)
	}
	return store, func() { _ = closeStore() }
}
