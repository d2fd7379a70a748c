package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var (
	settingsWeightUnit    string
	settingsHydrationUnit string
	settingsReminderTime  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show persisted preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			st := s.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Weight unit:    %s\n", st.Settings.WeightUnit)
			fmt.Fprintf(out, "Hydration unit: %s\n", st.Settings.HydrationUnit)
			fmt.Fprintf(out, "Reminder time:  %s\n", st.Settings.ReminderTime)
			fmt.Fprintf(out, "Hydration goal: %.0f ml\n", st.HydrationGoal)
			if st.TargetWeight > 0 {
				fmt.Fprintf(out, "Target weight:  %.1f %s\n", st.TargetWeight, st.Settings.WeightUnit)
			}
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			patch := store.SettingsPatch{
				WeightUnit:    settingsWeightUnit,
				HydrationUnit: settingsHydrationUnit,
				ReminderTime:  settingsReminderTime,
			}
			if err := s.UpdateSettings(patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsSetCmd.Flags().StringVar(&settingsWeightUnit, "weight-unit", "", "kg or lb")
	settingsSetCmd.Flags().StringVar(&settingsHydrationUnit, "hydration-unit", "", "ml or oz")
	settingsSetCmd.Flags().StringVar(&settingsReminderTime, "reminder", "", "daily reminder time, HH:MM")
}
