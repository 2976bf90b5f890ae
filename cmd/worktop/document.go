// Document commands for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

var (
	documentAddProject     string
	documentAddTitle       string
	documentAddDescription string
	documentAddURL         string
	documentAddCategory    string
	documentAddSource      string

	documentListCategory string
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage project documents",
}

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document to a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		doc, err := s.AddDocument(types.Document{
			ProjectID:   documentAddProject,
			Title:       documentAddTitle,
			Description: documentAddDescription,
			LinkURL:     documentAddURL,
			Category:    documentAddCategory,
			Source:      documentAddSource,
		})
		if err != nil {
			return err
		}
		return printResult(doc, fmt.Sprintf("Created document: %s", doc.ID))
	},
}

var documentListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var docs []types.Document
		if documentListCategory != "" {
			docs = s.GetDocumentsByCategory(args[0], documentListCategory)
		} else {
			docs = s.GetDocumentsByProject(args[0])
		}
		return printList(docs, func(d types.Document) string {
			return fmt.Sprintf("%s  %s [%s] (%s)", d.ID, d.Title, d.Category, d.Source)
		})
	},
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a document",
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
		source, _ := cmd.Flags().GetString("source")

		doc, err := s.UpdateDocument(args[0], types.DocumentUpdate{
			Title:       optString(cmd.Flags().Changed("title"), title),
			Description: optString(cmd.Flags().Changed("description"), description),
			LinkURL:     optString(cmd.Flags().Changed("url"), url),
			Category:    optString(cmd.Flags().Changed("category"), category),
			Source:      optString(cmd.Flags().Changed("source"), source),
		})
		if err != nil {
			return err
		}
		return printResult(doc, fmt.Sprintf("Updated document: %s", doc.ID))
	},
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteDocument(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted document:", args[0])
		return nil
	},
}

func init() {
	documentAddCmd.Flags().StringVar(&documentAddProject, "project", "", "project ID (required)")
	documentAddCmd.Flags().StringVar(&documentAddTitle, "title", "", "document title (required)")
	documentAddCmd.Flags().StringVar(&documentAddDescription, "description", "", "document description")
	documentAddCmd.Flags().StringVar(&documentAddURL, "url", "", "external link")
	documentAddCmd.Flags().StringVar(&documentAddCategory, "category", "", "legal, pricing, or recurring (default recurring)")
	documentAddCmd.Flags().StringVar(&documentAddSource, "source", "", "manual, client-email, or nelnet-created (default manual)")
	documentAddCmd.MarkFlagRequired("project")
	documentAddCmd.MarkFlagRequired("title")

	documentListCmd.Flags().StringVar(&documentListCategory, "category", "", "filter by category")

	documentUpdateCmd.Flags().String("title", "", "new title")
	documentUpdateCmd.Flags().String("description", "", "new description")
	documentUpdateCmd.Flags().String("url", "", "new link")
	documentUpdateCmd.Flags().String("category", "", "new category")
	documentUpdateCmd.Flags().String("source", "", "new source")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentUpdateCmd)
	documentCmd.AddCommand(documentDeleteCmd)
}
