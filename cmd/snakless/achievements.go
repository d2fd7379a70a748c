package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"badges"},
	Short:   "List achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			st := s.Snapshot()
			out := cmd.OutOrStdout()
			if len(st.Achievements) == 0 {
				fmt.Fprintln(out, "No achievements found. Run `snakless doctor` to check the database.")
				return nil
			}
			for _, a := range st.Achievements {
				mark := " "
				when := ""
				if a.IsUnlocked {
					mark = "x"
					if a.UnlockedAt != nil {
						when = " (" + a.UnlockedAt.Format("2006-01-02") + ")"
					}
				}
				fmt.Fprintf(out, "[%s] %-16s %s%s\n", mark, a.Title, a.Description, when)
			}
			return nil
		})
	},
}

var achievementsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-evaluate streak and milestone achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.CheckStreakAchievements(); err != nil {
				return err
			}
			if err := s.CheckWeightMilestone(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Achievements re-evaluated.")
			return nil
		})
	},
}

var achievementsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Lock all achievements again",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ResetAchievements(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All achievements locked.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.AddCommand(achievementsCheckCmd, achievementsResetCmd)
}
