// Dash command launches the interactive dashboard.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/internal/router"
	"github.com/mesh-intelligence/worktop/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		r := router.New(s)
		program := tea.NewProgram(tui.New(s, r), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		return nil
	},
}
