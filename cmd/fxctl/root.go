package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"fx_dashboard/internal/app/di"
	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/usecase"
	"fx_dashboard/internal/platform/config"
	"fx_dashboard/internal/platform/logger"
	infraredis "fx_dashboard/internal/platform/redis"
)

// app holds what every subcommand needs once the root pre-run has loaded it.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	rdb    *redisv9.Client
	sel    entity.Selection
	useRDB bool
}

func newRootCmd() *cobra.Command {
	a := &app{sel: usecase.DefaultSelection(time.Now())}
	var (
		configFile string
		baseURL    string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "fxctl",
		Short:         "Query the FX API the dashboard uses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				configFile = config.Path()
			}
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if baseURL != "" {
				cfg.Upstream.BaseURL = baseURL
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), cfg.Logging.Level, "text")

			if a.useRDB && cfg.Redis.Enabled() {
				rdb, err := infraredis.NewRedisClient(cmd.Context(), cfg.Redis)
				if err != nil {
					a.log.Warn("Redis unavailable. Running without cache.", "error", err)
				} else {
					a.rdb = rdb
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.rdb != nil {
				return a.rdb.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: $FXDASH_CONFIG or ./config.yaml)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "FX API base URL override")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.useRDB, "cache", true, "use the Redis response cache when configured")

	root.AddCommand(newHistoryCmd(a), newPredictCmd(a), newChartCmd(a), newCacheCmd(a))
	return root
}

// selectionFlags binds the shared selection flags to a.sel.
func selectionFlags(cmd *cobra.Command, a *app, withHorizon bool) {
	f := cmd.Flags()
	f.StringVar((*string)(&a.sel.Base), "base", string(a.sel.Base), "base currency")
	f.StringVar((*string)(&a.sel.Target), "target", string(a.sel.Target), "target currency")
	f.StringVar(&a.sel.Start, "start", a.sel.Start, "first date (YYYY-MM-DD)")
	f.StringVar(&a.sel.End, "end", a.sel.End, "last date (YYYY-MM-DD)")
	if withHorizon {
		f.IntVar(&a.sel.Horizon, "horizon", a.sel.Horizon, fmt.Sprintf("forecast days (%d..%d)", usecase.MinHorizon, usecase.MaxHorizon))
	}
}

func (a *app) dashboard() *usecase.Dashboard {
	return di.NewDashboard(a.cfg, a.rdb, a.log)
}

// load fetches history and, when predict is set, the forecast.
func (a *app) load(ctx context.Context, predict bool) (usecase.View, error) {
	d := a.dashboard()
	if err := d.FetchHistory(ctx, a.sel); err != nil {
		return usecase.View{}, err
	}
	if predict {
		if err := d.FetchPrediction(ctx, a.sel); err != nil {
			return usecase.View{}, err
		}
	}
	return d.View(), nil
}
