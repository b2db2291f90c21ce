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

var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Manage the projects a task belongs to",
	Aliases: []string{"proj"},
}

var projectAddCmd = &cobra.Command{
	Use:   "add [task ID] [name]",
	Short: "Add a project to a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		updated, err := manager.AddProject(taskID, args[1])
		if err != nil {
			log.Printf("❌ Failed to add project: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Project %q added to task %d\n", args[1], taskID)
		printTask(updated)
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:     "rm [task ID] [name]",
	Short:   "Remove a project from a task",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		updated, err := manager.RemoveProject(taskID, args[1])
		if err != nil {
			log.Printf("❌ Failed to remove project: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Project %q removed from task %d\n", args[1], taskID)
		printTask(updated)
	},
}

func init() {
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectRemoveCmd)
	rootCmd.AddCommand(projectCmd)
}
