package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/lifeweeks/internal/logging"
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = logging.Nop()

var rootCmd = &cobra.Command{
	Use:   "lifeweeks [birthdate]",
	Short: "Your life in weeks",
	Long: `lifeweeks draws a life calendar: one row per year of life, one cell per week.
Weeks already lived are filled; weeks left until your next birthday are marked.

Run without a birthdate to use the one saved with "lifeweeks profile set".`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	RunE: runChart,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := errorMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

// reportedError marks an error the command already showed to the user.
// Execute exits non-zero without printing it again.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return reportedError{err: err}
}

// errorMessage returns the text Execute prints for err, or "" when the
// command has already reported it.
func errorMessage(err error) string {
	var r reportedError
	if errors.As(err, &r) {
		return ""
	}
	return err.Error()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .lifeweeks.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	addChartFlags(rootCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lifeweeks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LIFEWEEKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func setupLogger(*cobra.Command, []string) error {
	l, err := logging.New(viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("config loaded", zap.String("file", viper.ConfigFileUsed()))
	return nil
}
