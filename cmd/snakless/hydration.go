package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var hydrationCmd = &cobra.Command{
	Use:   "hydration",
	Short: "Track daily hydration",
}

var hydrationAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add hydration for today (negative values correct earlier entries)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.AddHydration(amount); err != nil {
				return err
			}
			st := s.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f / %.0f ml\n", st.DailyHydration, st.HydrationGoal)
			return nil
		})
	},
}

var hydrationTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's hydration total",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.LoadDailyHydration(); err != nil {
				return err
			}
			st := s.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f / %.0f ml\n", st.DailyHydration, st.HydrationGoal)
			return nil
		})
	},
}

var hydrationGoalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily hydration goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := parseFloatArg("goal", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.SetHydrationGoal(goal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hydration goal set to %.0f ml\n", goal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(hydrationCmd)
	hydrationCmd.AddCommand(hydrationAddCmd, hydrationTodayCmd, hydrationGoalCmd)
}
