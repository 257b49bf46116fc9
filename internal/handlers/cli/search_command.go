package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the 'search' subcommand.
func NewSearchCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "search <tag>...",
		Short:       "Find aliases carrying any of the given tags.",
		Args:        cobra.MinimumNArgs(1),
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchCmd(cmd, args, sess)
		},
	}
	return cmd
}

func runSearchCmd(cmd *cobra.Command, tags []string, sess *session) error {
	out := cmd.OutOrStdout()
	entries, err := sess.service.Search(tags)
	if err != nil {
		return fmt.Errorf("could not search aliases: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases tagged %s.", strings.Join(tags, ", "))))
		return nil
	}
	renderEntryTable(out, entries)
	return nil
}
