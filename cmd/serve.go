package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/lifeweeks/internal/config"
	"github.com/papapumpkin/lifeweeks/internal/locale"
	"github.com/papapumpkin/lifeweeks/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the life calendar over HTTP",
	Long: `Serves an HTML life calendar at / and its JSON form at /api/chart.
Both read the birthdate and endYear query parameters.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.Serve.Addr
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		addr = v
	}
	formatter, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}

	srv := web.NewServer(web.Options{
		Logger:    logger,
		Formatter: formatter,
		Horizon:   cfg.EndYear,
		BaseURL:   cfg.Serve.BaseURL,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, addr)
}
