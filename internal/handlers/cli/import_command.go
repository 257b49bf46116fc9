package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/ali/internal/adapters/aliaspack"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/AntonioJCosta/ali/internal/repositories/shelldefs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(sess *session, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import aliases from an alias pack or a shell file.",
		Long: `Reads aliases from a YAML alias pack (.yaml or .yml) or from the alias lines
of a shell file such as ~/.bashrc, and adds every alias whose name is not taken yet.`,
		Args:        cobra.ExactArgs(1),
		Annotations: needsStore(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args[0], fs, sess)
		},
	}
	return cmd
}

// sourceFor picks the reader for path by its extension.
func sourceFor(fs afero.Fs, path string) (ports.AliasSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return aliaspack.NewYAMLProvider(fs, path)
	default:
		return shelldefs.NewFileSource(fs, path), nil
	}
}

func runImportCmd(cmd *cobra.Command, path string, fs afero.Fs, sess *session) error {
	out := cmd.OutOrStdout()

	src, err := sourceFor(fs, path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}

	added, skipped, err := sess.service.ImportAliases(src)
	if err != nil {
		return fmt.Errorf("could not import aliases: %w", err)
	}
	sess.logger.Info("import finished",
		zap.String("source", src.Describe()),
		zap.Int("added", added),
		zap.Int("skipped", len(skipped)))

	if added == 0 && len(skipped) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", src.Describe())))
		return nil
	}
	if added > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Imported %d alias(es) from %s.", added, src.Describe())))
	}
	if len(skipped) > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d alias(es) skipped because the name is taken: %s",
			len(skipped), strings.Join(skipped, ", "))))
	}
	if added > 0 {
		printSourceHint(out, sess.service.DefinitionsPath())
	}
	return nil
}
