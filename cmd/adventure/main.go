// Package main is the entry point for the adventure game
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
)

var (
	configPath string
	envFile    string
	logLevel   string

	// appConfig is loaded once per invocation by the root pre-run hook
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "RPG Adventure",
	Long:  `A console role-playing game: create a hero, pick a weapon and defeat every boss.`,

	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $ADVENTURE_CONFIG or config.json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(rollCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(envFile); err != nil {
		return err
	}

	appConfig = config.Load(config.ResolvePath(configPath))
	appConfig.ApplyEnv()

	level := appConfig.LogLevel()
	if logLevel != "" {
		level = config.ParseLevel(logLevel)
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), appConfig.Game.Logging.Format, level))

	return nil
}
