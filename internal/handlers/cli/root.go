package cli

import (
	"fmt"

	"github.com/AntonioJCosta/ali/internal/config"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/AntonioJCosta/ali/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ServiceFactory builds the management service once configuration is resolved.
type ServiceFactory func(cfg config.Config, logger *zap.Logger) (ports.AliasManagementService, error)

// needsStoreAnnotation marks commands that require the alias store to be loaded
// before they run. Help and completion never touch the store.
const needsStoreAnnotation = "ali/needs-store"

func needsStore() map[string]string {
	return map[string]string{needsStoreAnnotation: "true"}
}

// session holds what PersistentPreRunE resolved for the running command.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	service ports.AliasManagementService
}

func NewRootCommand(
	version string,
	v *viper.Viper,
	fs afero.Fs,
	newService ServiceFactory,
) *cobra.Command {
	sess := &session{}

	rootCmd := &cobra.Command{
		Use:   "ali",
		Short: "ali keeps a tagged catalogue of shell aliases.",
		Long: `ali stores shell aliases with a description and tags in a JSON file,
lets you search them by tag, and renders them into a file your shell can source.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.open(cmd, v, fs, newService)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("store", "", "Path to the JSON alias store.")
	flags.String("definitions", "", "Path to the generated shell definitions file.")
	flags.String("log-level", "", "Diagnostic log level: info, debug or none.")
	flags.String("config", "", "Path to a YAML config file.")

	bindFlags(v, flags)

	rootCmd.AddCommand(NewListCommand(sess))
	rootCmd.AddCommand(NewSearchCommand(sess))
	rootCmd.AddCommand(NewAddCommand(sess))
	rootCmd.AddCommand(NewRemoveCommand(sess))
	rootCmd.AddCommand(NewWriteCommand(sess))
	rootCmd.AddCommand(NewImportCommand(sess, fs))

	return rootCmd
}

// bindFlags makes the persistent flags the highest precedence source for their keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, name := range map[string]string{
		config.KeyStore:       "store",
		config.KeyDefinitions: "definitions",
		config.KeyLogLevel:    "log-level",
	} {
		// Lookup never returns nil for the flags declared in NewRootCommand.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// open resolves configuration, builds the service and, when the command asks
// for it, loads the store. Failures carry their exit code.
func (s *session) open(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, newService ServiceFactory) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, fs, configFile)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}
	logger, err := logging.GetLogger(cfg.LogLevel)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}
	logger.Debug("configuration resolved",
		zap.String("store", cfg.StorePath),
		zap.String("definitions", cfg.DefinitionsPath),
		zap.String("configFile", cfg.ConfigFileUsed))

	svc, err := newService(cfg, logger)
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("could not initialize alias service: %w", err))
	}
	s.cfg, s.logger, s.service = cfg, logger, svc

	if cmd.Annotations[needsStoreAnnotation] == "" {
		return nil
	}
	if err := svc.Load(); err != nil {
		return withExitCode(ExitLoadError, err)
	}
	return nil
}
