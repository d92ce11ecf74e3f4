package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fx_dashboard/internal/app/di"
	"fx_dashboard/internal/feature/fxrates/adapters/chartpng"
	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/usecase"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the normalized history of a currency pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.load(cmd.Context(), false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writePoints(out, v.History); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, summary(v))
			return err
		},
	}
	selectionFlags(cmd, a, false)
	return cmd
}

func newPredictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print history and forecast merged on one date axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.load(cmd.Context(), true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeAxis(out, v.Chart); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, summary(v))
			return err
		},
	}
	selectionFlags(cmd, a, true)
	return cmd
}

func newChartCmd(a *app) *cobra.Command {
	var (
		outPath       string
		withForecast  bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the dashboard chart to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.load(cmd.Context(), withForecast)
			if err != nil {
				return err
			}
			if v.Phase != usecase.PhaseChart {
				return fmt.Errorf("%s: nothing to plot (%s)", v.Pair, v.Phase)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := chartpng.NewRenderer(width, height).Render(f, v); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", outPath, err)
			}
			a.log.Info("chart written", "path", outPath, "pair", v.Pair, "labels", len(v.Chart.Labels))
			return nil
		},
	}
	selectionFlags(cmd, a, true)
	cmd.Flags().StringVarP(&outPath, "out", "o", "chart.png", "output PNG path")
	cmd.Flags().BoolVar(&withForecast, "forecast", true, "include the forecast")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels")
	return cmd
}

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Redis response cache",
	}

	var pair string
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached response of a pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.rdb == nil {
				return errors.New("redis is not configured or unavailable")
			}
			if pair == "" {
				return errors.New("--pair is required")
			}
			n, err := di.NewCache(a.cfg, a.rdb, nil).Purge(cmd.Context(), entity.Pair(pair))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "purged %d entries for %s\n", n, pair)
			return err
		},
	}
	purge.Flags().StringVar(&pair, "pair", "", "currency pair, e.g. USD_KRW")
	cmd.AddCommand(purge)
	return cmd
}

func summary(v usecase.View) string {
	if s := v.Summary(); s != "" {
		return s
	}
	return fmt.Sprintf("%s: no data", v.Pair)
}

func writePoints(w io.Writer, s entity.Series) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tRATE")
	for _, p := range s {
		fmt.Fprintf(tw, "%s\t%s\n", p.Date, rate(p.Value))
	}
	return tw.Flush()
}

func writeAxis(w io.Writer, c usecase.Chart) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "DATE")
	for _, ds := range c.Datasets {
		fmt.Fprintf(tw, "\t%s", ds.Label)
	}
	fmt.Fprintln(tw)
	for i, label := range c.Labels {
		fmt.Fprint(tw, label)
		for _, ds := range c.Datasets {
			fmt.Fprintf(tw, "\t%s", rate(ds.Data[i]))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func rate(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
