// Project commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	projectAddName     string
	projectAddDivision string

	projectListAll      bool
	projectListDivision string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		project, err := s.AddProject(types.Project{
			Name:       projectAddName,
			DivisionID: projectAddDivision,
		})
		if err != nil {
			return err
		}
		return printResult(project, fmt.Sprintf("Created project: %s", project.ID))
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		activeOnly := !projectListAll
		var projects []types.Project
		if projectListDivision != "" {
			projects = s.GetProjectsByDivision(projectListDivision, activeOnly)
		} else {
			projects = s.GetProjects(activeOnly)
		}
		return printList(projects, func(p types.Project) string {
			state := "active"
			if !p.IsActive {
				state = "inactive"
			}
			return fmt.Sprintf("%s  %s (%s)", p.ID, p.Name, state)
		})
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		name, _ := cmd.Flags().GetString("name")
		division, _ := cmd.Flags().GetString("division")
		active, _ := cmd.Flags().GetBool("active")

		project, err := s.UpdateProject(args[0], types.ProjectUpdate{
			Name:       optString(cmd.Flags().Changed("name"), name),
			DivisionID: optString(cmd.Flags().Changed("division"), division),
			IsActive:   optBool(cmd.Flags().Changed("active"), active),
		})
		if err != nil {
			return err
		}
		return printResult(project, fmt.Sprintf("Updated project: %s", project.ID))
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Long: `Delete removes the project record only. Requests, reports, and other
items referencing it are kept and become unassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteProject(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted project:", args[0])
		return nil
	},
}

var projectCountsCmd = &cobra.Command{
	Use:   "counts <id>",
	Short: "Count items referencing a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		counts := s.CountItemsByProject(args[0])
		return printResult(counts, fmt.Sprintf(
			"requests=%d items=%d reports=%d documents=%d links=%d controls=%d",
			counts.Requests, counts.InProgress, counts.Reports,
			counts.Documents, counts.DashboardLinks, counts.ControlItems))
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectAddName, "name", "", "project name (required)")
	projectAddCmd.Flags().StringVar(&projectAddDivision, "division", "", "parent division ID")
	projectAddCmd.MarkFlagRequired("name")

	projectListCmd.Flags().BoolVar(&projectListAll, "all", false, "include inactive projects")
	projectListCmd.Flags().StringVar(&projectListDivision, "division", "", "filter by division ID")

	projectUpdateCmd.Flags().String("name", "", "new project name")
	projectUpdateCmd.Flags().String("division", "", "new division ID")
	projectUpdateCmd.Flags().Bool("active", true, "set active state")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectCountsCmd)
}
