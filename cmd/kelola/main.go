package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/export"
	"github.com/kelola-aset/kelola/internal/session"
	"github.com/kelola-aset/kelola/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var baseURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/kelola/config.yml)")
	flag.StringVar(&baseURL, "base-url", "", "override the backend base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Kelola Aset - Admin Client\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	// Local overrides for development; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	overrides, err := export.LoadOverrides(cfg.ColumnsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring column overrides: %v\n", err)
		overrides = export.OverrideFile{}
	}

	if os.Getenv("KELOLA_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "kelola")
		if err != nil {
			return fmt.Errorf("error opening debug log: %w", err)
		}
		defer f.Close()
	}

	store := session.NewStore(dir)
	client := apiclient.New(cfg.BaseURL, store)
	app := tui.BuildApp(client, store, cfg.ExportDir, overrides, cfg.PageSize)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
