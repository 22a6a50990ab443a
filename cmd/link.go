package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/lifeweeks/internal/config"
	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/profile"
	"github.com/papapumpkin/lifeweeks/internal/share"
	"github.com/papapumpkin/lifeweeks/internal/ui"
)

var linkCmd = &cobra.Command{
	Use:   "link [birthdate]",
	Short: "Print a shareable URL for a chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLink,
}

func init() {
	linkCmd.Flags().Int("end-year", 0, "number of years to display (omitted from the link when 0)")
	linkCmd.Flags().String("base-url", "", "base URL of the web view (default from config)")
	linkCmd.Flags().Bool("copy", false, "copy the link to the clipboard")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return err
	}

	params := prof.Params()
	if len(args) > 0 {
		params.BirthDate = args[0]
	}
	if cmd.Flags().Changed("end-year") {
		params.EndYear, _ = cmd.Flags().GetInt("end-year")
	}
	if params.BirthDate == "" {
		return fmt.Errorf("no birthdate given; pass one or run \"lifeweeks profile set\"")
	}
	if _, err := lifechart.ParseBirthDate(params.BirthDate); err != nil {
		return err
	}

	base := cfg.Serve.BaseURL
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		base = v
	}
	link, err := share.Link(base, params)
	if err != nil {
		return err
	}

	copied := false
	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		if err := clipboard.WriteAll(link); err != nil {
			return fmt.Errorf("copy link: %w", err)
		}
		copied = true
	}

	ui.New(cmd.OutOrStdout(), cfg.Color).Link(link, copied)
	return nil
}
