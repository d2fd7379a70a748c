package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the trailing 7-day summary and daily charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.LoadWeeklyStats(); err != nil {
				return err
			}
			if err := s.LoadWeeklyChartData(); err != nil {
				return err
			}
			st := s.Snapshot()
			out := cmd.OutOrStdout()

			ws := st.WeeklyStats
			if ws == nil {
				fmt.Fprintln(out, "No stats available yet.")
				return nil
			}
			fmt.Fprintln(out, "Last 7 days")
			fmt.Fprintf(out, "  Fasts completed: %d\n", ws.Fasting.TotalSessions)
			fmt.Fprintf(out, "  Total fasting:   %.1f h (avg %.1f h)\n", ws.Fasting.TotalHours, ws.Fasting.AvgDurationHours)
			fmt.Fprintf(out, "  Weight change:   %+.1f %s\n", ws.WeightChange, st.Settings.WeightUnit)
			fmt.Fprintf(out, "  Hydration:       %.0f %s\n", ws.TotalHydration, st.Settings.HydrationUnit)
			fmt.Fprintf(out, "  Current streak:  %d day(s)\n", ws.CurrentStreak)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Fasting hours per day")
			for _, d := range st.WeeklyFasting {
				fmt.Fprintf(out, "  %s  %5.1f h\n", d.Date, d.Total)
			}
			fmt.Fprintln(out, "Hydration per day")
			for _, d := range st.WeeklyHydration {
				fmt.Fprintf(out, "  %s  %5.0f %s\n", d.Date, d.Total, st.Settings.HydrationUnit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
