// Package cli implements the campusnav command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/observability"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/navigator"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// app carries state shared by subcommands once the root pre-run has
// resolved configuration.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "campusnav",
		Short:         "Find walking routes between campus buildings.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./config.yaml)")
	pf.String("graph", "", "edge CSV file (overrides data.graph_file)")
	pf.String("catalog", "", "location YAML file (overrides data.catalog_file)")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRouteCmd(a),
		newLocationsCmd(a),
		newValidateCmd(a),
		newServeCmd(a),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil && ctx.Err() == nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
	}
	observability.Sync()
	return err
}

func (a *app) initialize(cmd *cobra.Command) error {
	// 1. Read file, env and defaults.
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}

	// 2. Flags override everything else.
	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"data.graph_file":   "graph",
		"data.catalog_file": "catalog",
		"logger.level":      "log-level",
	} {
		if f := pf.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}

	// 3. Unmarshal and validate.
	cfg, err := config.NewConfigFromViper(v)
	if err != nil {
		return err
	}
	config.Set(cfg)
	a.v, a.cfg = v, cfg

	// 4. Logger.
	observability.InitializeLogger(cfg.Logger)
	a.logger = observability.GetLogger()
	a.logger.Debug("configuration loaded", zap.String("file", v.ConfigFileUsed()))

	return nil
}

// catalog loads the configured catalog or the built-in map.
func (a *app) catalog() (*campus.Catalog, error) {
	if a.cfg.Data.CatalogFile == "" {
		return campus.Default(), nil
	}
	return campus.LoadFile(a.cfg.Data.CatalogFile)
}

// navigator loads graph and catalog into a ready Navigator.
func (a *app) navigator() (*navigator.Navigator, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	if _, err := loader.LoadFile(a.cfg.Data.GraphFile, g, loader.WithLogger(a.logger.Named("loader"))); err != nil {
		return nil, err
	}

	return navigator.New(g, cat, navigator.WithLogger(a.logger.Named("navigator"))), nil
}
