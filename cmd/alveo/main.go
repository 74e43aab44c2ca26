// Package main is the entry point for the alveo CLI, the command-line
// front end of the Alveograph exporter. It collects input instrument
// files and an output path, then drives the parse, align and export
// pipeline.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"alveocli/internal/config"
	"alveocli/internal/infrastructure"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appPaths resolves every file location relative to the executable.
	appPaths *config.Paths
	// appConfig is the process configuration (logging, export defaults).
	appConfig *config.Config
	// store holds the persisted parsing parameters for this run.
	store config.Store
	// storeLoadErr records a corrupt-store load so commands can report
	// it after logging is up; defaults are used in memory and the file
	// is left untouched.
	storeLoadErr error
)

// rootCmd is the base command for the alveo CLI.
var rootCmd = &cobra.Command{
	Use:   "alveo",
	Short: "Process Alveograph instrument output into a spreadsheet",
	Long: `alveo processes txt files produced by the Alveograph program and
exports their measurements as rows of a single formatted worksheet.

Each input file is parsed into labeled numeric measurements, the whole
batch is checked for a consistent column layout, and only then is the
workbook written. A misordered or malformed input file fails the batch
before anything reaches the output path.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appPaths, err = config.GetPaths()
		if err != nil {
			return fmt.Errorf("failed to initialize paths: %w", err)
		}

		configFile, _ := cmd.Flags().GetString("config")
		if configFile == "" {
			configFile = appPaths.ConfigFile
		}
		appConfig, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if appConfig.Logging.Output != "console" {
			appConfig.Logging.FilePath = appPaths.GetLogPath("alveo.log")
		}

		logger, err := infrastructure.InitializeLogger(appConfig.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		store, storeLoadErr = config.LoadStoreOrInit(appPaths.StoreFile)
		if storeLoadErr != nil {
			logger.Warn("Failed to load config store, using defaults",
				slog.String("path", appPaths.StoreFile),
				slog.String("error", storeLoadErr.Error()))
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "application config file (default: alveo.yaml next to the executable)")
}

func main() {
	defer infrastructure.CloseLogFile()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
}
