package snakless

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Start, end, and watch fasting sessions",
}

var fastStartCmd = &cobra.Command{
	Use:   "start <preset>",
	Short: "Start a fasting session (16:8, 18:6, 20:4, 24h, extended)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			session, err := s.StartFasting(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s fast (session %d) at %s\n",
				session.PresetType, session.ID, session.StartTime.Local().Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var fastEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the open fasting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			snap, ok := s.FastingTimer()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasting session is open")
				return nil
			}
			if err := s.EndFasting(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ended %s fast after %s\n",
				snap.PresetType, formatDuration(snap.ElapsedSeconds))
			return nil
		})
	},
}

var fastFollow bool

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fasting timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			snap, ok := s.FastingTimer()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasting session is open")
				return nil
			}
			printTimer(cmd, snap)
			if !fastFollow {
				return nil
			}

			ticker := s.StartTicker(time.Second, func(snap derive.TimerSnapshot) {
				printTimer(cmd, snap)
			})
			defer ticker.Stop()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)
			<-interrupt
			return nil
		})
	},
}

var fastPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List fasting presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			presets := s.Presets()
			names := make([]string, 0, len(presets))
			for name := range presets {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(cmd.OutOrStdout(), "PRESET\tFAST_HOURS\tEAT_HOURS")
			for _, name := range names {
				p := presets[name]
				if p.IsExtended() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tunlimited\t-\n", name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\n", name, p.FastHours, p.EatHours)
			}
			return nil
		})
	},
}

func printTimer(cmd *cobra.Command, snap derive.TimerSnapshot) {
	if snap.IsExtended {
		fmt.Fprintf(cmd.OutOrStdout(), "%s fast: %s elapsed (no target)\n",
			snap.PresetType, formatDuration(snap.ElapsedSeconds))
		return
	}
	state := "in progress"
	if snap.IsCompleted {
		state = "target reached"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s fast: %s elapsed, %s remaining (%s)\n",
		snap.PresetType, formatDuration(snap.ElapsedSeconds), formatDuration(snap.RemainingSeconds), state)
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd, fastEndCmd, fastStatusCmd, fastPresetsCmd)
	fastStatusCmd.Flags().BoolVar(&fastFollow, "follow", false, "Refresh every second until interrupted")
}
