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

var addDescription string
var addDue string
var addPriority string
var addCategory string
var addEisenhower string
var addDependsOn []int
var addProjects []string
var addContexts []string

var addCmd = &cobra.Command{
	Use:     "add [title]",
	Short:   "Add a new task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		manager := newManager()

		created, err := manager.Add(task.AddParams{
			Title:       args[0],
			Description: addDescription,
			DueDate:     addDue,
			Priority:    addPriority,
			Category:    addCategory,
			Eisenhower:  addEisenhower,
			DependsOn:   addDependsOn,
			Projects:    addProjects,
			Contexts:    addContexts,
		})
		if err != nil {
			log.Printf("❌ Failed to add task: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d created\n", created.ID)
		printTask(created)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (Low, Medium, High)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category")
	addCmd.Flags().StringVarP(&addEisenhower, "eisenhower", "e", "", "Eisenhower quadrant (Q1-Q4)")
	addCmd.Flags().IntSliceVar(&addDependsOn, "depends-on", []int{}, "IDs of tasks this task depends on")
	addCmd.Flags().StringSliceVar(&addProjects, "project", []string{}, "Projects this task belongs to")
	addCmd.Flags().StringSliceVar(&addContexts, "context", []string{}, "Contexts this task belongs to (e.g. @home)")
}
