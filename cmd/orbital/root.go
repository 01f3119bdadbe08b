package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/registry"
)

//go:embed hubs.toml
var defaultCatalog []byte

// App holds the persistent flags shared by every subcommand
type App struct {
	ConfigPath  string
	CatalogPath string
	KeymapPath  string
	Subject     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "orbital",
		Short:        "Orbital navigation menu: gesture engine, terminal host and tools",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Interactive ring in the terminal
  orbital run

  # Print computed positions for six items
  orbital layout --items 6 --radius 100

  # Replay a scripted gesture and print the effects
  orbital replay testdata/rotate.toml
`),
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "config TOML file (ORBITAL_* env vars also apply)")
	cmd.PersistentFlags().StringVar(&app.CatalogPath, "catalog", "", "hub catalog TOML file (default: built-in sample)")
	cmd.PersistentFlags().StringVar(&app.KeymapPath, "keymap", "", "keymap override TOML file")
	cmd.PersistentFlags().StringVar(&app.Subject, "subject", "", "rollout subject id; selects the variant when rollout.percent is set")

	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newReplayCmd(app))
	return cmd
}

// loadConfig reads config and applies the rollout selection for the subject
func (app *App) loadConfig() (config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	return app.forSubject(cfg), nil
}

func (app *App) forSubject(cfg config.Config) config.Config {
	if app.Subject == "" {
		return cfg
	}
	return cfg.ForSubject(app.Subject)
}

func (app *App) loadCatalog() (*registry.Catalog, error) {
	if app.CatalogPath == "" {
		return registry.ParseCatalog(defaultCatalog)
	}
	return registry.LoadCatalog(app.CatalogPath)
}

// loadKeyTable merges the optional keymap file over the defaults
func (app *App) loadKeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if app.KeymapPath == "" {
		return base, nil
	}
	data, err := os.ReadFile(app.KeymapPath)
	if err != nil {
		return nil, fmt.Errorf("keymap read failed (%s): %w", app.KeymapPath, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", app.KeymapPath, err)
	}
	return base.Merge(override), nil
}
