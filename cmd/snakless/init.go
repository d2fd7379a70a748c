package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/app"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/config"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local database and seed the achievement catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if err := app.EnsureDir(cfg.DBPath); err != nil {
			return err
		}

		gw := db.New(cfg.DBPath, nil)
		defer gw.Close()
		if err := gw.Init(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized snakless database at %s\n", cfg.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
