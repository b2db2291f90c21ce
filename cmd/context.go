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

var contextCmd = &cobra.Command{
	Use:     "context",
	Short:   "Manage the contexts a task belongs to",
	Aliases: []string{"ctx"},
}

var contextAddCmd = &cobra.Command{
	Use:   "add [task ID] [name]",
	Short: "Add a context to a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		updated, err := manager.AddContext(taskID, args[1])
		if err != nil {
			log.Printf("❌ Failed to add context: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Context %q added to task %d\n", args[1], taskID)
		printTask(updated)
	},
}

var contextRemoveCmd = &cobra.Command{
	Use:     "rm [task ID] [name]",
	Short:   "Remove a context from a task",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		updated, err := manager.RemoveContext(taskID, args[1])
		if err != nil {
			log.Printf("❌ Failed to remove context: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Context %q removed from task %d\n", args[1], taskID)
		printTask(updated)
	},
}

func init() {
	contextCmd.AddCommand(contextAddCmd)
	contextCmd.AddCommand(contextRemoveCmd)
	rootCmd.AddCommand(contextCmd)
}
