/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/eve-task/eve-cli/internal/task"
	"github.com/spf13/cobra"
)

var editTitle string
var editDescription string
var editDue string
var editPriority string
var editCategory string
var editStatus string
var editEisenhower string

var editCmd = &cobra.Command{
	Use:     "edit [task ID]",
	Short:   "Edit a task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		// Only flags the user actually passed become part of the update,
		// so an omitted flag never clears a field. An empty --due or
		// --eisenhower is the explicit clear sentinel.
		var update task.Update
		if cmd.Flags().Changed("title") {
			update.Title = &editTitle
		}
		if cmd.Flags().Changed("description") {
			update.Description = &editDescription
		}
		if cmd.Flags().Changed("due") {
			update.DueDate = &editDue
		}
		if cmd.Flags().Changed("priority") {
			update.Priority = &editPriority
		}
		if cmd.Flags().Changed("category") {
			update.Category = &editCategory
		}
		if cmd.Flags().Changed("status") {
			update.Status = &editStatus
		}
		if cmd.Flags().Changed("eisenhower") {
			update.Eisenhower = &editEisenhower
		}

		if update == (task.Update{}) {
			fmt.Println("No changes supplied, nothing to do.")
			return
		}

		updated, err := manager.Edit(taskID, update)
		if err != nil {
			log.Printf("❌ Failed to edit task: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d updated\n", updated.ID)
		printTask(updated)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (empty sets an empty description)")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD, empty or N/A to remove)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (Low, Medium, High)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New status (Pending, Completed)")
	editCmd.Flags().StringVarP(&editEisenhower, "eisenhower", "e", "", "New Eisenhower quadrant (Q1-Q4, empty or 'none' to remove)")
}
