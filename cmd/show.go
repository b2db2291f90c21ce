/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/eve-task/eve-cli/internal/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showRender bool

var showCmd = &cobra.Command{
	Use:     "show [task ID]",
	Short:   "Show task detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		found, err := manager.Get(taskID)
		if err != nil {
			log.Printf("❌ Failed to show task: %v", err)
			os.Exit(1)
		}

		printTask(found)

		// Render the description as markdown unless empty
		if showRender && found.Description != "" {
			renderedContent, err := glamour.Render(found.Description, "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render markdown content: %v", err)
			} else {
				fmt.Println(renderedContent)
			}
		}
	},
}

func printTask(t model.Task) {
	titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
	fieldStyle := color.New(color.FgHiGreen).SprintFunc()

	fmt.Printf("[%v] %v\n", titleStyle(strconv.Itoa(t.ID)), titleStyle(t.Title))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Status: %v\n", fieldStyle(t.Status))
	fmt.Printf("Priority: %v\n", fieldStyle(t.Priority))
	fmt.Printf("Category: %v\n", fieldStyle(t.Category))
	if t.DueDate != nil {
		fmt.Printf("Due: %v\n", fieldStyle(t.DueDate.String()))
	} else {
		fmt.Printf("Due: %v\n", fieldStyle("N/A"))
	}
	if t.Eisenhower != nil {
		fmt.Printf("Eisenhower: %v\n", fieldStyle(*t.Eisenhower))
	}
	if len(t.DependsOn) > 0 {
		fmt.Printf("Depends on: %v\n", fieldStyle(joinIDs(t.DependsOn)))
	}
	if len(t.Projects) > 0 {
		fmt.Printf("Projects: %v\n", fieldStyle(strings.Join(t.Projects, ", ")))
	}
	if len(t.Contexts) > 0 {
		fmt.Printf("Contexts: %v\n", fieldStyle(strings.Join(t.Contexts, ", ")))
	}
	fmt.Printf("Created at: %v\n", fieldStyle(t.CreatedAt.Format("2006-01-02 15:04:05")))
	if t.CompletedAt != nil {
		fmt.Printf("Completed at: %v\n", fieldStyle(t.CompletedAt.Format("2006-01-02 15:04:05")))
	}
	if t.Description != "" {
		fmt.Printf("Description: %v\n", t.Description)
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRender, "render", false, "Render the description as markdown")
}
