package cli

import (
	"fmt"

	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewWriteCommand creates the 'write' subcommand.
func NewWriteCommand(sess *session) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Regenerate the shell definitions file from the store.",
		Long: `Renders every stored alias as an alias line into the shell definitions file.
The JSON store itself is not modified. With --check the configured shell parses
the result without running it.`,
		Args:        cobra.NoArgs,
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWriteCmd(cmd, check, sess)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Ask the shell to parse the written file.")
	return cmd
}

func runWriteCmd(cmd *cobra.Command, check bool, sess *session) error {
	out := cmd.OutOrStdout()

	path, err := sess.service.WriteDefinitions()
	if err != nil {
		return fmt.Errorf("could not write shell definitions: %w", err)
	}
	fmt.Fprintln(out, ui.SuccessColor("Wrote shell definitions to ")+ui.DetailColor(path))

	if !check {
		return nil
	}
	if err := sess.service.CheckDefinitions(sess.cfg.Shell); err != nil {
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("%s rejected %s.", sess.cfg.Shell, path)))
		return err
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%s parses %s without errors.", sess.cfg.Shell, path)))
	return nil
}
