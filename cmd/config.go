/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eve-task/eve-cli/internal/model"
	"github.com/eve-task/eve-cli/internal/store"
	"github.com/spf13/cobra"
)

type Model struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
}

func newModel(config model.Config) tea.Model {
	return &Model{
		cursor:    0,
		fields:    generateFieldList(),
		config:    config,
		textInput: textinput.New(),
		editMode:  false,
	}
}

func generateFieldList() []string {
	return []string{
		"DataDir",
		"Sync.Platform", "Sync.Bucket", "Sync.AWSProfile", "Sync.AWSRegion",
		"Save & Exit",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				if err := store.SaveConfig(m.config); err != nil {
					log.Printf("⚠️ Failed to save config file: %v", err)
				}
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("📄 Configure eve\n\n")

	for i, field := range generateFieldList() {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		value := m.getFieldValue(field)

		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, value))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + generateFieldList()[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\nUp/Down to move, Enter to edit, Q to quit\n")
	}

	return s.String()
}

func (m Model) getFieldValue(field string) string {
	switch field {
	case "DataDir":
		return m.config.DataDir
	case "Sync.Platform":
		return m.config.Sync.Platform
	case "Sync.Bucket":
		return m.config.Sync.Bucket
	case "Sync.AWSProfile":
		return m.config.Sync.AWSProfile
	case "Sync.AWSRegion":
		return m.config.Sync.AWSRegion
	default:
		return "UNKNOWN"
	}
}

func (m *Model) updateConfig() {
	newValue := m.textInput.Value()

	switch m.fields[m.cursor] {
	case "DataDir":
		m.config.DataDir = newValue
	case "Sync.Platform":
		m.config.Sync.Platform = newValue
	case "Sync.Bucket":
		m.config.Sync.Bucket = newValue
	case "Sync.AWSProfile":
		m.config.Sync.AWSProfile = newValue
	case "Sync.AWSRegion":
		m.config.Sync.AWSRegion = newValue
	}

	if err := store.SaveConfig(m.config); err != nil {
		log.Printf("⚠️ Failed to save config file: %v", err)
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		fmt.Println(configPath)

		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v", err)
		}

		if _, err := tea.NewProgram(newModel(*config)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
