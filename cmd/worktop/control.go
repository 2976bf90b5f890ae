// Control item commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	controlAddProject     string
	controlAddTitle       string
	controlAddDescription string
	controlAddAssignee    string
	controlAddFrequency   string

	controlListRefresh bool
)

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Manage control and oversight items",
}

var controlAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a control item to a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.AddControlItem(types.ControlItem{
			ProjectID:   controlAddProject,
			Title:       controlAddTitle,
			Description: controlAddDescription,
			Assignee:    controlAddAssignee,
			Frequency:   controlAddFrequency,
		})
		if err != nil {
			return err
		}
		return printResult(item, fmt.Sprintf("Created control item: %s", item.ID))
	},
}

var controlListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's control items, most urgent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if controlListRefresh {
			if err := s.RefreshControlStatuses(args[0]); err != nil {
				return err
			}
		}

		items := s.GetControlItems(args[0])
		return printList(items, func(i types.ControlItem) string {
			due := "no schedule"
			if i.NextDue != nil {
				due = "due " + i.NextDue.Format("2006-01-02")
			}
			return fmt.Sprintf("%s  [%s] %s (%s, %s)", i.ID, i.Status, i.Title, i.Frequency, due)
		})
	},
}

var controlCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a control item completed and schedule its next due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.CompleteControlItem(args[0])
		if err != nil {
			return err
		}
		human := fmt.Sprintf("Completed control item: %s", item.ID)
		if item.NextDue != nil {
			human += " (next due " + item.NextDue.Format("2006-01-02") + ")"
		}
		return printResult(item, human)
	},
}

var controlUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a control item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		assignee, _ := cmd.Flags().GetString("assignee")
		frequency, _ := cmd.Flags().GetString("frequency")

		item, err := s.UpdateControlItem(args[0], types.ControlItemUpdate{
			Title:       optString(cmd.Flags().Changed("title"), title),
			Description: optString(cmd.Flags().Changed("description"), description),
			Assignee:    optString(cmd.Flags().Changed("assignee"), assignee),
			Frequency:   optString(cmd.Flags().Changed("frequency"), frequency),
		})
		if err != nil {
			return err
		}
		return printResult(item, fmt.Sprintf("Updated control item: %s", item.ID))
	},
}

var controlDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a control item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteControlItem(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted control item:", args[0])
		return nil
	},
}

func init() {
	controlAddCmd.Flags().StringVar(&controlAddProject, "project", "", "project ID (required)")
	controlAddCmd.Flags().StringVar(&controlAddTitle, "title", "", "control item title (required)")
	controlAddCmd.Flags().StringVar(&controlAddDescription, "description", "", "control item description")
	controlAddCmd.Flags().StringVar(&controlAddAssignee, "assignee", "", "who owns the obligation")
	controlAddCmd.Flags().StringVar(&controlAddFrequency, "frequency", "", "weekly, monthly, quarterly, annually, or ad-hoc (default ad-hoc)")
	controlAddCmd.MarkFlagRequired("project")
	controlAddCmd.MarkFlagRequired("title")

	controlListCmd.Flags().BoolVar(&controlListRefresh, "refresh", false, "recompute statuses from due dates first")

	controlCmd.AddCommand(controlAddCmd)
	controlCmd.AddCommand(controlListCmd)
	controlCmd.AddCommand(controlCompleteCmd)
	controlCmd.AddCommand(controlUpdateCmd)
	controlCmd.AddCommand(controlDeleteCmd)
}
