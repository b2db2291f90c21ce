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

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete [task ID]",
	Short:   "Delete a task permanently",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := parseTaskID(args[0])
		manager := newManager()

		doomed, err := manager.Get(taskID)
		if err != nil {
			log.Printf("❌ Failed to delete task: %v", err)
			os.Exit(1)
		}

		if !deleteYes {
			printTask(doomed)
			fmt.Print("Are you sure you want to delete this task? [y/N]: ")
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.ToLower(strings.TrimSpace(input))
			if input != "y" && input != "yes" {
				fmt.Println("Deletion cancelled.")
				return
			}
		}

		if err := manager.Delete(taskID); err != nil {
			log.Printf("❌ Failed to delete task: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %d permanently deleted\n", taskID)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")
}
