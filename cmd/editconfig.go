package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newEditConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-config",
		Short: "Open kubie's own settings file in an editor",
		Long: `Opens the settings file in the editor configured as default_editor,
falling back to $EDITOR and then vi. The file is created by the editor
if it does not exist yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := newLocator()
			if err != nil {
				return err
			}
			s, err := loc.Load()
			if err != nil {
				return err
			}

			editor := s.DefaultEditor
			if editor == "" {
				editor = os.Getenv("EDITOR")
			}
			if editor == "" {
				editor = "vi"
			}

			path := loc.Path()
			c := exec.Command(editor, path)
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			if err := c.Run(); err != nil {
				return fmt.Errorf("failed to run editor %s on %s: %w", editor, path, err)
			}
			return nil
		},
	}
}
