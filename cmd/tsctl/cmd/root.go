package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tsctl/internal/config"
	"tsctl/internal/logger"
	"tsctl/internal/store"
)

var cfgFile string

// configReadErr holds a fatal error from reading the config file. It has to
// be carried out of initConfig because cobra.OnInitialize cannot fail.
var configReadErr error

// appContext carries everything a command needs: the immutable config, the
// run logger, and the single-use connection facade. Built once per
// invocation before the command runs.
type appContext struct {
	cfg  *config.Config
	log  *slog.Logger
	conn *store.Conn
}

var app *appContext

var rootCmd = &cobra.Command{
	Use:   "tsctl",
	Short: "tsctl is a command line client for an InfluxDB-compatible time-series store",
	Long: `tsctl is a single-shot command line client for an InfluxDB-compatible
time-series store. It connects once, runs one command, and exits.

Commands:

  Backfill a series with synthetic points:
    tsctl backfill cpu 2024-01-01 2024-01-02 60000 '{"host":"server1"}'

  Drop a series:
    tsctl dropseries cpu

  List series names:
    tsctl series

  Run a query and print its result tables:
    tsctl query 'SELECT * FROM cpu LIMIT 10'

Configuration:
  Connection settings are read from a YAML config file ($HOME/.tsctl.yaml or
  ./.tsctl.yaml, override with --config) with fields host, port, user,
  password, and database. Environment variables with the TSCTL_ prefix
  override file values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configReadErr != nil {
			return fmt.Errorf("load config: %w", configReadErr)
		}
		cfg, err := config.FromViper()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log := logger.ForRun(logger.New())
		app = &appContext{cfg: cfg, log: log, conn: store.New(cfg, log)}
		return nil
	},
}

// Execute runs the CLI and returns the process exit status: 0 on success,
// 2 for invalid input (with usage output), 1 for config, connection, or
// request failures.
func Execute() int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

	// Argument problems and unresolved commands get usage output; cobra
	// hands back the root command when it could not match a subcommand.
	var argErr *ArgumentError
	if errors.As(err, &argErr) || cmd == rootCmd {
		cmd.Usage()
		return 2
	}
	return 1
}

func initConfig() {
	configReadErr = nil

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".tsctl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "TSCTL_VARNAME"
	viper.SetEnvPrefix("TSCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file in the default search paths is fine as long as the
		// environment supplies the values; an explicit --config file must
		// exist, and a malformed file is always fatal.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configReadErr = err
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.tsctl.yaml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ArgumentError{msg: err.Error()}
	})

	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(dropseriesCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(queryCmd)
}
