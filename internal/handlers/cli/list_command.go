package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List every stored alias.",
		Long:        `Displays all aliases in the store, ordered by name.`,
		Args:        cobra.NoArgs,
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, sess)
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, sess *session) error {
	out := cmd.OutOrStdout()
	entries, err := sess.service.ListEntries()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases stored in %s.", sess.service.StorePath())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (%d):", len(entries))))
	renderEntryTable(out, entries)
	return nil
}

// renderEntryTable prints entries in the order given.
func renderEntryTable(out io.Writer, entries []alias.Entry) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Command", "Description", "Tags"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, e := range entries {
		table.Append([]string{e.Name, e.Command, e.Description, ui.TagColor(strings.Join(e.Tags, " "))})
	}
	table.Render()
}
