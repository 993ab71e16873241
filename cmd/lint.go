package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check the settings file and config patterns for problems",
		Long: `Loads the settings file and reports patterns that match no files, as
well as an empty resolved kubeconfig set. A settings file that fails to
parse aborts with the parse error.`,
		RunE: runLint,
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s, err := loc.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "settings file: %s\n", loc.Path())

	warnings := 0
	for _, pattern := range s.Configs.Include {
		matches, err := loc.Glob(pattern)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Fprintf(out, "warning: include pattern %q matches no files\n", pattern)
			warnings++
		}
	}

	paths, err := loc.KubeconfigPaths(s)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(out, "warning: no kubeconfig files found")
		warnings++
	} else {
		fmt.Fprintf(out, "%d kubeconfig file(s) found\n", len(paths))
	}

	if warnings == 0 {
		fmt.Fprintln(out, "ok")
	}
	return nil
}
