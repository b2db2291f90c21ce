/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eve-task/eve-cli/internal/model"
	"github.com/eve-task/eve-cli/internal/task"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var listStatus string
var listPriority string
var listCategory string
var listDue string
var listEisenhower string
var listProject string
var listContext string
var listSortBy string
var listPageSize int

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		manager := newManager()

		tasks, err := manager.List(task.Filters{
			Status:     listStatus,
			Priority:   listPriority,
			Category:   listCategory,
			Due:        listDue,
			Eisenhower: listEisenhower,
			Project:    listProject,
			Context:    listContext,
			SortBy:     listSortBy,
		})
		if err != nil {
			log.Printf("❌ Failed to list tasks: %v", err)
			os.Exit(1)
		}

		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Tasks: %v tasks shown\n", len(tasks))
		fmt.Println(strings.Repeat("=", 30))

		size := effectivePageSize(listPageSize, len(tasks))

		for {
			start := page * size
			end := start + size

			if start >= len(tasks) {
				break
			}
			if end > len(tasks) {
				end = len(tasks)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
				text.FgGreen.Sprintf("Status"),
				text.FgGreen.Sprintf("Priority"),
				text.FgGreen.Sprintf("Due"),
				text.FgGreen.Sprintf("Category"),
				text.FgGreen.Sprintf("Tags"),
			})

			today := model.Today()
			for _, row := range tasks[start:end] {
				statusColored := string(row.Status)
				switch row.Status {
				case model.StatusPending:
					statusColored = text.FgHiYellow.Sprintf("%s", row.Status)
				case model.StatusCompleted:
					statusColored = text.FgHiGreen.Sprintf("%s", row.Status)
				}

				priorityColored := string(row.Priority)
				switch row.Priority {
				case model.PriorityHigh:
					priorityColored = text.FgHiRed.Sprintf("%s", row.Priority)
				case model.PriorityMedium:
					priorityColored = text.FgHiYellow.Sprintf("%s", row.Priority)
				case model.PriorityLow:
					priorityColored = text.FgHiBlue.Sprintf("%s", row.Priority)
				}

				dueStr := ""
				if row.DueDate != nil {
					dueStr = row.DueDate.String()
					if row.Status == model.StatusPending && row.DueDate.Before(today) {
						dueStr = text.FgHiRed.Sprintf("%s", dueStr)
					}
				}

				t.AppendRow(table.Row{
					row.ID,
					row.Title,
					statusColored,
					priorityColored,
					dueStr,
					row.Category,
					formatTags(row),
				})
			}

			t.Render()

			if end >= len(tasks) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}

			page++
		}
	},
}

// effectivePageSize treats any non-positive limit as "everything on one
// page" so the pagination loop always advances.
func effectivePageSize(limit, total int) int {
	if limit <= 0 {
		return total
	}
	return limit
}

func formatTags(t model.Task) string {
	var tags []string
	for _, project := range t.Projects {
		tags = append(tags, "+"+project)
	}
	tags = append(tags, t.Contexts...)
	return strings.Join(tags, " ")
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (Pending, Completed)")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority (Low, Medium, High)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
	listCmd.Flags().StringVar(&listDue, "due", "", "Filter by due date (overdue, today, upcoming)")
	listCmd.Flags().StringVarP(&listEisenhower, "eisenhower", "e", "", "Filter by Eisenhower quadrant (Q1-Q4, or 'none')")
	listCmd.Flags().StringVar(&listProject, "project", "", "Filter by project")
	listCmd.Flags().StringVar(&listContext, "context", "", "Filter by context")
	listCmd.Flags().StringVar(&listSortBy, "sort-by", "", "Sort order (due, priority, created); default is by ID")
	listCmd.Flags().IntVar(&listPageSize, "limit", 20, "Set the number of tasks to display per page (-1 for all)")
}
