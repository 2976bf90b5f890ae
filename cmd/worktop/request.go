// Request commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	requestAddDescription string
	requestAddRequester   string
	requestAddUrgency     string
	requestAddProject     string
	requestAddDivision    string

	requestListProject    string
	requestListUnassigned bool
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Manage incoming work requests",
}

var requestAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		req, err := s.AddRequest(types.Request{
			Description: requestAddDescription,
			Requester:   requestAddRequester,
			Urgency:     requestAddUrgency,
			ProjectID:   requestAddProject,
			DivisionID:  requestAddDivision,
		})
		if err != nil {
			return err
		}
		return printResult(req, fmt.Sprintf("Created request: %s", req.ID))
	},
}

var requestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requests sorted by urgency, newest first within a level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var requests []types.Request
		switch {
		case requestListUnassigned:
			requests = s.GetUnassignedRequests()
		case requestListProject != "":
			requests = s.GetRequestsByProject(requestListProject)
		default:
			requests = s.GetRequests()
		}
		return printList(requests, func(r types.Request) string {
			return fmt.Sprintf("%s  [%s] %s (%s)", r.ID, r.Urgency, r.Description, r.Requester)
		})
	},
}

var requestUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		description, _ := cmd.Flags().GetString("description")
		requester, _ := cmd.Flags().GetString("requester")
		urgency, _ := cmd.Flags().GetString("urgency")
		project, _ := cmd.Flags().GetString("project")

		req, err := s.UpdateRequest(args[0], types.RequestUpdate{
			Description: optString(cmd.Flags().Changed("description"), description),
			Requester:   optString(cmd.Flags().Changed("requester"), requester),
			Urgency:     optString(cmd.Flags().Changed("urgency"), urgency),
			ProjectID:   optString(cmd.Flags().Changed("project"), project),
		})
		if err != nil {
			return err
		}
		return printResult(req, fmt.Sprintf("Updated request: %s", req.ID))
	},
}

var requestPromoteCmd = &cobra.Command{
	Use:   "promote <id>",
	Short: "Promote a request into an in-progress item",
	Long: `Promote copies the request's fields into a new in-progress item and
deletes the request. The new item starts in the not-started status with
its own identity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.PromoteRequest(args[0])
		if err != nil {
			return err
		}
		return printResult(item, fmt.Sprintf("Promoted request to item: %s", item.ID))
	},
}

var requestDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteRequest(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted request:", args[0])
		return nil
	},
}

func init() {
	requestAddCmd.Flags().StringVar(&requestAddDescription, "description", "", "what is being asked for (required)")
	requestAddCmd.Flags().StringVar(&requestAddRequester, "requester", "", "who is asking")
	requestAddCmd.Flags().StringVar(&requestAddUrgency, "urgency", "", "low, medium, or high (default medium)")
	requestAddCmd.Flags().StringVar(&requestAddProject, "project", "", "project ID")
	requestAddCmd.Flags().StringVar(&requestAddDivision, "division", "", "division ID")
	requestAddCmd.MarkFlagRequired("description")

	requestListCmd.Flags().StringVar(&requestListProject, "project", "", "filter by project ID")
	requestListCmd.Flags().BoolVar(&requestListUnassigned, "unassigned", false, "only requests with no live project")

	requestUpdateCmd.Flags().String("description", "", "new description")
	requestUpdateCmd.Flags().String("requester", "", "new requester")
	requestUpdateCmd.Flags().String("urgency", "", "new urgency")
	requestUpdateCmd.Flags().String("project", "", "new project ID")

	requestCmd.AddCommand(requestAddCmd)
	requestCmd.AddCommand(requestListCmd)
	requestCmd.AddCommand(requestUpdateCmd)
	requestCmd.AddCommand(requestPromoteCmd)
	requestCmd.AddCommand(requestDeleteCmd)
}
