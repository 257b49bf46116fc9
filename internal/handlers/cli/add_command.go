package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewAddCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively add an alias.",
		Long: `Prompts for a name, command, description and space separated tags,
then saves the store and regenerates the shell definitions file.
Answers may be piped in, one per line.`,
		Args:        cobra.NoArgs,
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, sess)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, sess *session) error {
	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out)

	entry, err := readEntry(p)
	if err != nil {
		return fmt.Errorf("could not read alias: %w", err)
	}

	for _, warning := range nameWarnings(entry.Name) {
		fmt.Fprintln(out, ui.WarningColor("Warning: "+warning))
	}

	if err := sess.service.AddAlias(entry); err != nil {
		if errors.Is(err, alias.ErrDuplicateName) {
			fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Cannot add alias. Already have an alias named '%s'.", entry.Name)))
			return nil
		}
		return fmt.Errorf("could not add alias '%s': %w", entry.Name, err)
	}
	sess.logger.Info("alias added", zap.String("name", entry.Name))

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Added alias %s.", ui.AliasNameColor(entry.Name))))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Saved %s and %s.", sess.service.StorePath(), sess.service.DefinitionsPath())))
	printSourceHint(out, sess.service.DefinitionsPath())
	return nil
}
