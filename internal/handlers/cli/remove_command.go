package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(sess *session) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:         "remove <name>",
		Short:       "Remove an alias after confirmation.",
		Args:        cobra.ExactArgs(1),
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args[0], assumeYes, sess)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Remove without asking for confirmation.")
	return cmd
}

func runRemoveCmd(cmd *cobra.Command, name string, assumeYes bool, sess *session) error {
	out := cmd.OutOrStdout()

	entry, err := sess.service.Get(name)
	if err != nil {
		if errors.Is(err, alias.ErrNotFound) {
			fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("No alias named '%s'.", name)))
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Description: %s\n", entry.Description)
	fmt.Fprintf(out, "%s => %s\n", ui.AliasNameColor(entry.Name), ui.AliasCmdColor(entry.Command))

	if !assumeYes {
		p := newPrompter(cmd.InOrStdin(), out)
		confirmed, err := p.confirm(fmt.Sprintf("Are you sure you want to delete %s?", entry.Name))
		if err != nil {
			return fmt.Errorf("could not read confirmation: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Not deleting %s.", entry.Name)))
			return nil
		}
	}

	if _, err := sess.service.RemoveAlias(entry.Name); err != nil {
		return fmt.Errorf("could not remove alias '%s': %w", entry.Name, err)
	}
	sess.logger.Info("alias removed", zap.String("name", entry.Name))
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Deleted %s.", entry.Name)))
	return nil
}
