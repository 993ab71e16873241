package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kubie/internal/settings"
	"kubie/pkg/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kubie",
	Short: "Manage multiple kubeconfig files",
	Long: `kubie keeps track of the kubeconfig files on your machine. Config files
are gathered from the KUBECONFIG environment variable and from the
include/exclude patterns of kubie's own settings file, which is kept
out of the resolved set.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, bad settings files)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
}

// For mocking in tests
var userHomeDir = os.UserHomeDir

// newLocator resolves the home directory once and hands it to the settings
// locator; every path expansion goes through that single value.
func newLocator() (*settings.Locator, error) {
	home, err := userHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}
	return settings.NewLocator(home), nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kubie version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newConfigsCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newEditConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
