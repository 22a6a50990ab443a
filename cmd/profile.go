package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/lifeweeks/internal/config"
	"github.com/papapumpkin/lifeweeks/internal/locale"
	"github.com/papapumpkin/lifeweeks/internal/profile"
	"github.com/papapumpkin/lifeweeks/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the saved birthdate and display settings",
}

var profileSetCmd = &cobra.Command{
	Use:   "set <birthdate>",
	Short: "Save a birthdate (YYYY-MM-DD) and optional settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSet,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

func init() {
	profileSetCmd.Flags().Int("end-year", 0, "number of years to display (0 keeps the current value)")
	profileSetCmd.Flags().String("locale", "", "BCP 47 tag for date formatting")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return err
	}

	prof.BirthDate = args[0]
	if n, _ := cmd.Flags().GetInt("end-year"); n > 0 {
		prof.EndYear = n
	}
	if tag, _ := cmd.Flags().GetString("locale"); tag != "" {
		if _, err := locale.New(tag); err != nil {
			return err
		}
		prof.Locale = tag
	}

	now := time.Now()
	if err := prof.Validate(now); err != nil {
		return err
	}
	stamp := now.UTC().Truncate(time.Second)
	prof.Updated = &stamp

	if err := profile.Save(cfg.ProfilePath, prof); err != nil {
		return err
	}
	ui.New(cmd.OutOrStdout(), cfg.Color).ProfileSaved(cfg.ProfilePath)
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return err
	}
	ui.New(cmd.OutOrStdout(), cfg.Color).ProfileShow(cfg.ProfilePath, prof.BirthDate, prof.EndYear, prof.Locale)
	return nil
}
