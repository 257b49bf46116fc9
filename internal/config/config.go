// Package config resolves where the alias store and the shell definitions
// live, plus the few settings ali has. Values come from, in increasing order of
// precedence: built-in defaults, a YAML config file, ALI_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppDir is the directory name under XDG_CONFIG_HOME.
	AppDir = "ali"
	// StoreFile is the default alias store file name.
	StoreFile = "aliases.json"
	// DefinitionsFile is the default shell definitions file name.
	DefinitionsFile = "aliases.sh"
	// ConfigName is the config file name searched for, without extension.
	ConfigName = "config"

	// EnvPrefix prefixes every environment variable ali reads.
	EnvPrefix = "ALI"
	// EnvConfigFile names an explicit config file.
	EnvConfigFile = "ALI_CONFIG"
)

// Keys understood by viper. Flags are bound to the same keys.
const (
	KeyStore         = "store"
	KeyDefinitions   = "definitions"
	KeyLogLevel      = "log_level"
	KeyInitIfMissing = "init_if_missing"
	KeyShell         = "shell"
)

// Config is the resolved configuration for one run.
type Config struct {
	StorePath       string
	DefinitionsPath string
	LogLevel        string
	InitIfMissing   bool
	Shell           string
	// ConfigFileUsed is empty when no config file was read.
	ConfigFileUsed string
}

// Dir returns the ali configuration directory.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/ali.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppDir), nil
}

// Load resolves the configuration using v, reading files through fs.
// configFile, when non-empty, names the config file explicitly and must exist;
// otherwise ALI_CONFIG is consulted, then config.yaml in Dir(), which may be absent.
func Load(v *viper.Viper, fs afero.Fs, configFile string) (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v.SetFs(fs)
	v.SetDefault(KeyStore, filepath.Join(dir, StoreFile))
	v.SetDefault(KeyDefinitions, filepath.Join(dir, DefinitionsFile))
	v.SetDefault(KeyLogLevel, "none")
	v.SetDefault(KeyInitIfMissing, true)
	v.SetDefault(KeyShell, defaultShell())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}
	if configFile != "" {
		v.SetConfigFile(ExpandTilde(configFile))
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		StorePath:       ExpandTilde(v.GetString(KeyStore)),
		DefinitionsPath: ExpandTilde(v.GetString(KeyDefinitions)),
		LogLevel:        v.GetString(KeyLogLevel),
		InitIfMissing:   v.GetBool(KeyInitIfMissing),
		Shell:           v.GetString(KeyShell),
		ConfigFileUsed:  v.ConfigFileUsed(),
	}
	if cfg.StorePath == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyStore)
	}
	if cfg.DefinitionsPath == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyDefinitions)
	}
	return cfg, nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func defaultShell() string {
	if shellPath := os.Getenv("SHELL"); shellPath != "" {
		return filepath.Base(shellPath)
	}
	return "sh"
}
