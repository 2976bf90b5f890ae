// Package main provides the worktop CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worktop/internal/paths"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// Exit codes. User errors are bad input (unknown IDs, invalid field
// values); system errors are backend, config, or filesystem failures.
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configBackend holds the backend value loaded from config.yaml.
var configBackend string

var rootCmd = &cobra.Command{
	Use:   "worktop",
	Short: "Worktop is a local-first operations dashboard",
	Long: `Worktop tracks an operations team's incoming requests, in-progress
work, published reports, documents, performance dashboards, and control
items, organized by division and project. Data lives in a local store
under a versioned schema; run "worktop dash" for the interactive view.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// userErrors are the store sentinels caused by bad input rather than a
// failing environment.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrInvalidData,
	types.ErrInvalidName,
	types.ErrInvalidUrgency,
	types.ErrInvalidStatus,
	types.ErrInvalidCategory,
	types.ErrInvalidSource,
	types.ErrInvalidLinkType,
	types.ErrInvalidFrequency,
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir, e.g. ~/.config/worktop)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.worktop-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(controlCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > WORKTOP_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > WORKTOP_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
