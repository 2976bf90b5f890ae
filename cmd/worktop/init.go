// Init command for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the worktop data store",
	Long: `Init opens the configured backend, creates the data directory if
needed, and brings the persisted schema up to the current version.
Running init on an existing store is safe; migrations are idempotent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := attachStore()
		if err != nil {
			return err
		}
		defer s.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Println("Worktop store initialized at", dataDir)
		return nil
	},
}
