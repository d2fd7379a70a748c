package snakless

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "snakless",
	Short: "snakless tracks intermittent fasting, weight, and hydration",
	Long:  "snakless is a local-first intermittent fasting tracker with weight and hydration logs, streak achievements, and weekly stats, backed by a SQLite database on this device.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
}
