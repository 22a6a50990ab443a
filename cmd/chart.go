package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/lifeweeks/internal/config"
	"github.com/papapumpkin/lifeweeks/internal/grid"
	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/locale"
	"github.com/papapumpkin/lifeweeks/internal/profile"
	"github.com/papapumpkin/lifeweeks/internal/ui"
)

var chartCmd = &cobra.Command{
	Use:   "chart [birthdate]",
	Short: "Print the life calendar for a birthdate (YYYY-MM-DD)",
	Long: `Prints one row per year of life and one cell per week.

The birthdate argument overrides the saved profile. With --watch the chart is
redrawn whenever the profile file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	addChartFlags(chartCmd)
	rootCmd.AddCommand(chartCmd)
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().Int("end-year", 0, "number of years to display (default from profile or config)")
	cmd.Flags().String("today", "", "reference date as YYYY-MM-DD (default: today)")
	cmd.Flags().String("locale", "", "BCP 47 tag for date formatting (default from profile or config)")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	cmd.Flags().Bool("watch", false, "redraw when the profile file changes")
}

// chartOptions are the resolved inputs of one chart generation.
type chartOptions struct {
	birthdate string
	horizon   int
	ref       time.Time
	formatter *locale.Formatter
	color     bool
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := resolveChartOptions(cmd, args, cfg)
	if err != nil {
		return err
	}
	printer := ui.New(cmd.OutOrStdout(), opts.color)

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return renderChart(printer, opts)
	}
	return watchChart(cmd, args, cfg, printer)
}

// resolveChartOptions applies precedence: flag or argument, then profile,
// then config.
func resolveChartOptions(cmd *cobra.Command, args []string, cfg config.Config) (chartOptions, error) {
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return chartOptions{}, err
	}

	opts := chartOptions{birthdate: prof.BirthDate, color: cfg.Color}
	if len(args) > 0 {
		opts.birthdate = args[0]
	}

	opts.horizon = cfg.EndYear
	if prof.EndYear > 0 {
		opts.horizon = prof.EndYear
	}
	if cmd.Flags().Changed("end-year") {
		opts.horizon, _ = cmd.Flags().GetInt("end-year")
	}
	opts.horizon = lifechart.ClampHorizon(opts.horizon)

	tag := cfg.Locale
	if prof.Locale != "" {
		tag = prof.Locale
	}
	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		tag = v
	}
	if opts.formatter, err = locale.New(tag); err != nil {
		return chartOptions{}, err
	}

	opts.ref = time.Now()
	if v, _ := cmd.Flags().GetString("today"); v != "" {
		if opts.ref, err = time.ParseInLocation(lifechart.DateLayout, v, time.UTC); err != nil {
			return chartOptions{}, fmt.Errorf("invalid --today %q: want YYYY-MM-DD", v)
		}
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		opts.color = false
	}
	return opts, nil
}

// renderChart computes and prints one chart. An invalid birthdate still
// prints an empty grid of the requested horizon and returns the error marked
// as already reported.
func renderChart(printer *ui.Printer, opts chartOptions) error {
	if opts.birthdate == "" {
		printer.Chart(grid.Empty(opts.horizon))
		printer.Info(`No birthdate given. Pass one as YYYY-MM-DD or save it with "lifeweeks profile set".`)
		return nil
	}

	chart, err := lifechart.ComputeFor(opts.birthdate, opts.horizon, opts.ref)
	if err != nil {
		printer.Error("Please enter a valid past birthdate.")
		printer.Chart(grid.Empty(opts.horizon))
		return reported(err)
	}

	logger.Debug("chart computed",
		zap.String("birthdate", opts.birthdate),
		zap.Int("horizon", chart.Horizon),
		zap.Int("weeks_lived", chart.Summary.TotalWeeksLived),
		zap.Int("weeks_until_birthday", chart.Summary.WeeksUntilNextBirthday),
	)

	printer.Chart(grid.FromChart(chart))
	printer.Legend()
	printer.Summary(lifechart.Describe(chart, opts.formatter))
	return nil
}

// watchChart redraws on every profile change until interrupted. Each redraw
// recomputes from scratch with a fresh reference date.
func watchChart(cmd *cobra.Command, args []string, cfg config.Config, printer *ui.Printer) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := profile.NewWatcher(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.ProfilePath, err)
	}

	redraw := func() {
		opts, err := resolveChartOptions(cmd, args, cfg)
		if err != nil {
			printer.Error(err.Error())
			return
		}
		if err := renderChart(printer, opts); err != nil && !errors.Is(err, lifechart.ErrInvalidBirthDate) {
			printer.Error(err.Error())
		}
	}

	redraw()
	printer.Info("watching " + w.Path + " (Ctrl-C to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			logger.Debug("profile changed", zap.String("file", change.File), zap.Int("kind", int(change.Kind)))
			redraw()
		}
	}
}
