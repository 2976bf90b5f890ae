// Report commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	reportAddTitle       string
	reportAddDescription string
	reportAddURL         string
	reportAddCategory    string
	reportAddProject     string

	reportListProject    string
	reportListAll        bool
	reportListUnassigned bool
	reportListGrouped    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage published reports",
}

var reportAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		report, err := s.AddReport(types.Report{
			Title:       reportAddTitle,
			Description: reportAddDescription,
			LinkURL:     reportAddURL,
			Category:    reportAddCategory,
			ProjectID:   reportAddProject,
			IsActive:    true,
		})
		if err != nil {
			return err
		}
		return printResult(report, fmt.Sprintf("Created report: %s", report.ID))
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		activeOnly := !reportListAll

		if reportListGrouped {
			groups := s.GetReportsGroupedByProject(activeOnly)
			if flagJSON {
				return printResult(groups, "")
			}
			for name, reports := range groups {
				fmt.Println(name + ":")
				for _, r := range reports {
					fmt.Printf("  %s  %s [%s]\n", r.ID, r.Title, r.Category)
				}
			}
			return nil
		}

		var reports []types.Report
		switch {
		case reportListUnassigned:
			reports = s.GetUnassignedReports(activeOnly)
		case reportListProject != "":
			reports = s.GetReportsByProject(reportListProject, activeOnly)
		default:
			reports = s.GetReports()
		}
		return printList(reports, func(r types.Report) string {
			return fmt.Sprintf("%s  %s [%s] %s", r.ID, r.Title, r.Category,
				r.DatePublished.Format("2006-01-02"))
		})
	},
}

var reportUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		url, _ := cmd.Flags().GetString("url")
		category, _ := cmd.Flags().GetString("category")
		project, _ := cmd.Flags().GetString("project")
		active, _ := cmd.Flags().GetBool("active")

		report, err := s.UpdateReport(args[0], types.ReportUpdate{
			Title:       optString(cmd.Flags().Changed("title"), title),
			Description: optString(cmd.Flags().Changed("description"), description),
			LinkURL:     optString(cmd.Flags().Changed("url"), url),
			Category:    optString(cmd.Flags().Changed("category"), category),
			ProjectID:   optString(cmd.Flags().Changed("project"), project),
			IsActive:    optBool(cmd.Flags().Changed("active"), active),
		})
		if err != nil {
			return err
		}
		return printResult(report, fmt.Sprintf("Updated report: %s", report.ID))
	},
}

var reportDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteReport(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted report:", args[0])
		return nil
	},
}

func init() {
	reportAddCmd.Flags().StringVar(&reportAddTitle, "title", "", "report title (required)")
	reportAddCmd.Flags().StringVar(&reportAddDescription, "description", "", "report description")
	reportAddCmd.Flags().StringVar(&reportAddURL, "url", "", "external link")
	reportAddCmd.Flags().StringVar(&reportAddCategory, "category", "", "legal, pricing, or recurring (default recurring)")
	reportAddCmd.Flags().StringVar(&reportAddProject, "project", "", "project ID")
	reportAddCmd.MarkFlagRequired("title")

	reportListCmd.Flags().StringVar(&reportListProject, "project", "", "filter by project ID")
	reportListCmd.Flags().BoolVar(&reportListAll, "all", false, "include inactive reports")
	reportListCmd.Flags().BoolVar(&reportListUnassigned, "unassigned", false, "only reports with no live project")
	reportListCmd.Flags().BoolVar(&reportListGrouped, "grouped", false, "group by project name")

	reportUpdateCmd.Flags().String("title", "", "new title")
	reportUpdateCmd.Flags().String("description", "", "new description")
	reportUpdateCmd.Flags().String("url", "", "new link")
	reportUpdateCmd.Flags().String("category", "", "new category")
	reportUpdateCmd.Flags().String("project", "", "new project ID")
	reportUpdateCmd.Flags().Bool("active", true, "set active state")

	reportCmd.AddCommand(reportAddCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportUpdateCmd)
	reportCmd.AddCommand(reportDeleteCmd)
}
