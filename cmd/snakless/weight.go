package snakless

import (
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var (
	weightDate  string
	weightLimit int
)

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		date, err := parseDate(weightDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.AddWeightEntry(value, date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", value, date)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entries := s.Snapshot().WeightEntries
			if weightLimit > 0 && weightLimit < len(entries) {
				entries = entries[:weightLimit]
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT_KG")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f\n", e.ID, e.Date, e.Weight)
			}
			return nil
		})
	},
}

var weightTargetCmd = &cobra.Command{
	Use:   "target <kg>",
	Short: "Set the target weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloatArg("target weight", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.SetTargetWeight(value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target weight set to %.1f kg\n", value)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightTargetCmd)
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
	weightListCmd.Flags().IntVar(&weightLimit, "limit", 30, "Result limit")
}
