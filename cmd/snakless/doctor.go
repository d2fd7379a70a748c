package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var doctorRepair bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check achievement table integrity and optionally repair it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			warn, err := s.CheckAchievementIntegrity()
			if err != nil {
				return err
			}
			if warn == nil {
				fmt.Fprintln(out, "Achievement table looks healthy.")
				return nil
			}
			fmt.Fprintf(out, "Achievement table has %d rows, expected %d.\n", warn.RowCount, warn.SeedCount)
			if !doctorRepair {
				fmt.Fprintln(out, "Run again with --repair to deduplicate and reseed.")
				return nil
			}
			if err := s.RepairAchievements(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Repaired: duplicates removed, canonical rows reseeded.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorRepair, "repair", false, "deduplicate and reseed achievements")
}
