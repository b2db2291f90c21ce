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

var completeCmd = &cobra.Command{
	Use:     "complete [task ID]",
	Short:   "Mark a task as completed",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"done"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		completed, err := manager.Complete(taskID)
		if err != nil {
			log.Printf("❌ Failed to complete task: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d marked as completed\n", completed.ID)
		printTask(completed)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo [task ID]",
	Short: "Mark a completed task as pending again",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		reverted, err := manager.Undo(taskID)
		if err != nil {
			log.Printf("❌ Failed to undo task: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d marked as pending\n", reverted.ID)
		printTask(reverted)
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(undoCmd)
}
