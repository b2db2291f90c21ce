/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage task dependencies",
}

var depAddCmd = &cobra.Command{
	Use:   "add [task ID] [dependency ID]",
	Short: "Make a task depend on another task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		depID := parseTaskID(args[1])
		manager := newManager()

		updated, err := manager.AddDependency(taskID, depID)
		if err != nil {
			log.Printf("❌ Failed to add dependency: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d now depends on task %d\n", taskID, depID)
		printTask(updated)
	},
}

var depRemoveCmd = &cobra.Command{
	Use:     "rm [task ID] [dependency ID]",
	Short:   "Remove a dependency from a task",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		depID := parseTaskID(args[1])
		manager := newManager()

		updated, err := manager.RemoveDependency(taskID, depID)
		if err != nil {
			log.Printf("❌ Failed to remove dependency: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d no longer depends on task %d\n", taskID, depID)
		printTask(updated)
	},
}

func init() {
	depCmd.AddCommand(depAddCmd)
	depCmd.AddCommand(depRemoveCmd)
	rootCmd.AddCommand(depCmd)
}
