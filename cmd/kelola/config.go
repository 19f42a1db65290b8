package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kelola-aset/kelola/internal/model"
)

// cliConfig holds the TUI-relevant configuration.
type cliConfig struct {
	BaseURL     string `mapstructure:"base-url"`
	PageSize    int    `mapstructure:"page-size"`
	ExportDir   string `mapstructure:"export-dir"`
	ColumnsFile string `mapstructure:"columns-file"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", model.ConfigDirName), nil
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	dir, err := configDir()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("KELOLA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", model.DefaultBaseURL)
	v.SetDefault("page-size", model.DefaultPageSize)
	v.SetDefault("export-dir", ".")
	v.SetDefault("columns-file", filepath.Join(dir, "columns.yml"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(dir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
