/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/eve-task/eve-cli/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Back the data directory up to S3",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local changes to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		err = SyncWithS3(*config, "push")
		if err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}

		log.Println("✅ `eve sync push` completed successfully.")
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download latest changes from S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		err = SyncWithS3(*config, "pull")
		if err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}

		log.Println("✅ `eve sync pull` completed successfully.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show differences between local and S3 files",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		return ShowSyncStatus(*config)
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd, syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
