package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/ali/internal/adapters/oscommand"
	"github.com/AntonioJCosta/ali/internal/config"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/AntonioJCosta/ali/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/ali/internal/handlers/cli"
	"github.com/AntonioJCosta/ali/internal/handlers/ui"
	"github.com/AntonioJCosta/ali/internal/repositories/aliasfile"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	fs := afero.NewOsFs()
	cmdExec := oscommand.NewOSCommandExecutor()

	newService := func(cfg config.Config, logger *zap.Logger) (ports.AliasManagementService, error) {
		repo, err := aliasfile.NewJSONStoreRepository(fs, cfg.StorePath, cfg.InitIfMissing, logger)
		if err != nil {
			return nil, err
		}
		defs, err := aliasfile.NewDefinitionsWriter(fs, cfg.DefinitionsPath, logger)
		if err != nil {
			return nil, err
		}
		return aliasmanagement.NewService(repo, defs, cmdExec, logger), nil
	}

	rootCmd := cli.NewRootCommand(Version, viper.New(), fs, newService)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(cli.ExitCode(err))
	}
}
