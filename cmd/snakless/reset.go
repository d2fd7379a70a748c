package snakless

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and reseed the achievement catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes every session, weight, hydration, and profile row. Type 'yes' to continue: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}
		return withStore(func(s *store.Store) error {
			if err := s.ClearAllData(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared. Achievements reseeded and locked.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}
