// In-progress item commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	itemAddDescription string
	itemAddRequester   string
	itemAddProject     string
	itemAddDivision    string

	itemListProject    string
	itemListUnassigned bool
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage in-progress items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an in-progress item directly, skipping the request queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.AddInProgressItem(types.InProgressItem{
			TaskDescription: itemAddDescription,
			Requester:       itemAddRequester,
			ProjectID:       itemAddProject,
			DivisionID:      itemAddDivision,
		})
		if err != nil {
			return err
		}
		return printResult(item, fmt.Sprintf("Created item: %s", item.ID))
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List in-progress items, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var items []types.InProgressItem
		switch {
		case itemListUnassigned:
			items = s.GetUnassignedInProgressItems()
		case itemListProject != "":
			items = s.GetInProgressItemsByProject(itemListProject)
		default:
			items = s.GetInProgressItems()
		}
		return printList(items, func(i types.InProgressItem) string {
			return fmt.Sprintf("%s  [%s] %s", i.ID, i.Status, i.TaskDescription)
		})
	},
}

var itemStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set an item's status (not-started, in-progress, in-review)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.SetInProgressItemStatus(args[0], args[1])
		if err != nil {
			return err
		}
		return printResult(item, fmt.Sprintf("Item %s is now %s", item.ID, item.Status))
	},
}

var itemCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete an item, removing it from the board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.CompleteInProgressItem(args[0]); err != nil {
			return err
		}
		fmt.Println("Completed item:", args[0])
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteInProgressItem(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted item:", args[0])
		return nil
	},
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddDescription, "description", "", "task description (required)")
	itemAddCmd.Flags().StringVar(&itemAddRequester, "requester", "", "who asked for the work")
	itemAddCmd.Flags().StringVar(&itemAddProject, "project", "", "project ID")
	itemAddCmd.Flags().StringVar(&itemAddDivision, "division", "", "division ID")
	itemAddCmd.MarkFlagRequired("description")

	itemListCmd.Flags().StringVar(&itemListProject, "project", "", "filter by project ID")
	itemListCmd.Flags().BoolVar(&itemListUnassigned, "unassigned", false, "only items with no live project")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemStatusCmd)
	itemCmd.AddCommand(itemCompleteCmd)
	itemCmd.AddCommand(itemDeleteCmd)
}
