// Version command for the worktop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string.
const version = "v0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the worktop version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("worktop", version)
	},
}
