package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"alveocli/internal/config"
	"alveocli/internal/infrastructure"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the persisted parsing parameters",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current config store values",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(store)
		if err != nil {
			return fmt.Errorf("failed to render config store: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config store to its documented defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := config.DefaultStore()
		if err := defaults.Save(appPaths.StoreFile); err != nil {
			return err
		}
		store = defaults

		infrastructure.GetLogger().Info("Config store reset to defaults",
			slog.String("path", appPaths.StoreFile))
		fmt.Fprintf(cmd.OutOrStdout(), "Config reset: %s\n", appPaths.StoreFile)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
