package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newConfigsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "List the kubeconfig files kubie would use",
		Long: `Resolves the active set of kubeconfig files from the KUBECONFIG
environment variable and the include/exclude patterns of the settings
file, and lists them. Output is a table on terminals and one path per
line otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := newLocator()
			if err != nil {
				return err
			}
			s, err := loc.Load()
			if err != nil {
				return err
			}
			paths, err := loc.KubeconfigPaths(s)
			if err != nil {
				return err
			}

			sorted := paths.Sorted()
			if plain || !stdoutIsTTY() {
				for _, path := range sorted {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderConfigsTable(sorted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one path per line without the table")
	return cmd
}

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
