/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"
	"strconv"

	"github.com/eve-task/eve-cli/internal/store"
	"github.com/eve-task/eve-cli/internal/task"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eve",
	Short: "EVE is a personal task tracker",
	Long: `EVE keeps your to-do list in a single local JSON file.
Add, list, edit, complete and delete tasks, organize them with
priorities, categories, projects, contexts and dependencies, and back
the data directory up to S3.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newManager wires the task manager to the configured tasks.json.
func newManager() *task.Manager {
	config, err := store.LoadConfig()
	if err != nil {
		log.Printf("❌ Error loading config: %v", err)
		os.Exit(1)
	}
	return task.NewManager(store.NewTaskStore(config.TasksFile()))
}

func parseTaskID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		log.Printf("❌ Invalid task ID %q, expected a positive integer", arg)
		os.Exit(1)
	}
	return id
}
