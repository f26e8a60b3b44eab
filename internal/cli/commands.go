package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/internal/api"
	"github.com/katalvlaran/campusnav/internal/ux"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/navigator"
)

// ErrNotFound is returned by route when no path exists, so the process
// exits non-zero.
var ErrNotFound = errors.New(navigator.NoPathMessage)

func newRouteCmd(a *app) *cobra.Command {
	var (
		algoName   string
		accessible bool
		by         string
	)

	cmd := &cobra.Command{
		Use:   "route <start> <end>",
		Short: "Find a route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo := a.cfg.DefaultAlgorithm()
			if algoName != "" {
				var err error
				if algo, err = navigator.ParseAlgorithm(algoName); err != nil {
					return err
				}
			}

			var opts []navigator.RouteOption
			if accessible || a.cfg.Search.AccessibleOnly {
				opts = append(opts, navigator.AccessibleOnly())
			}
			switch by {
			case "distance":
			case "time":
				opts = append(opts, navigator.ByTime())
			default:
				return fmt.Errorf("--by must be distance or time, got %q", by)
			}

			nav, err := a.navigator()
			if err != nil {
				return err
			}
			r, err := nav.Route(algo, args[0], args[1], opts...)
			if err != nil {
				return err
			}
			if err := ux.RenderRoute(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			if !r.Found {
				return ErrNotFound
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algorithm", "a", "", "bfs, dfs or dijkstra (default from config)")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "use wheelchair-accessible connections only")
	cmd.Flags().StringVar(&by, "by", "distance", "dijkstra weight: distance or time")

	return cmd
}

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the map locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			return ux.RenderLocations(cmd.OutOrStdout(), cat)
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check an edge CSV and report rows that would be skipped",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Data.GraphFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := loader.Validate(path); err != nil {
				return err
			}
			rep, err := loader.LoadFile(path, core.NewGraph(), loader.WithLogger(a.logger.Named("loader")))
			if err != nil {
				return err
			}
			return ux.RenderReport(cmd.OutOrStdout(), path, rep)
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := api.NewServer(nav,
				api.WithLogger(a.logger.Named("api")),
				api.WithDefaults(a.cfg.DefaultAlgorithm(), a.cfg.Search.AccessibleOnly),
				api.WithAllowOrigins(a.cfg.Server.AllowOrigins),
			)
			return srv.Run(cmd.Context(), addr, a.cfg.Server.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
