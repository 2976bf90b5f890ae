// Dashboard link commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	linkAddProject     string
	linkAddTitle       string
	linkAddURL         string
	linkAddType        string
	linkAddDescription string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage performance dashboard links",
}

var linkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a dashboard link to a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		link, err := s.AddDashboardLink(types.DashboardLink{
			ProjectID:   linkAddProject,
			Title:       linkAddTitle,
			URL:         linkAddURL,
			Type:        linkAddType,
			Description: linkAddDescription,
		})
		if err != nil {
			return err
		}
		return printResult(link, fmt.Sprintf("Created link: %s", link.ID))
	},
}

var linkListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's dashboard links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		links := s.GetDashboardLinksByProject(args[0])
		return printList(links, func(l types.DashboardLink) string {
			return fmt.Sprintf("%s  %s [%s] %s", l.ID, l.Title, l.Type, l.URL)
		})
	},
}

var linkUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a dashboard link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		title, _ := cmd.Flags().GetString("title")
		url, _ := cmd.Flags().GetString("url")
		linkType, _ := cmd.Flags().GetString("type")
		description, _ := cmd.Flags().GetString("description")

		link, err := s.UpdateDashboardLink(args[0], types.DashboardLinkUpdate{
			Title:       optString(cmd.Flags().Changed("title"), title),
			URL:         optString(cmd.Flags().Changed("url"), url),
			Type:        optString(cmd.Flags().Changed("type"), linkType),
			Description: optString(cmd.Flags().Changed("description"), description),
		})
		if err != nil {
			return err
		}
		return printResult(link, fmt.Sprintf("Updated link: %s", link.ID))
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a dashboard link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteDashboardLink(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted link:", args[0])
		return nil
	},
}

func init() {
	linkAddCmd.Flags().StringVar(&linkAddProject, "project", "", "project ID (required)")
	linkAddCmd.Flags().StringVar(&linkAddTitle, "title", "", "link title (required)")
	linkAddCmd.Flags().StringVar(&linkAddURL, "url", "", "dashboard URL (required)")
	linkAddCmd.Flags().StringVar(&linkAddType, "type", "", "performance, valuation, or impairment (default performance)")
	linkAddCmd.Flags().StringVar(&linkAddDescription, "description", "", "link description")
	linkAddCmd.MarkFlagRequired("project")
	linkAddCmd.MarkFlagRequired("title")
	linkAddCmd.MarkFlagRequired("url")

	linkUpdateCmd.Flags().String("title", "", "new title")
	linkUpdateCmd.Flags().String("url", "", "new URL")
	linkUpdateCmd.Flags().String("type", "", "new link type")
	linkUpdateCmd.Flags().String("description", "", "new description")

	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkUpdateCmd)
	linkCmd.AddCommand(linkDeleteCmd)
}
