package snakless

import (
	"fmt"
	"strconv"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"github.com/spf13/cobra"
)

var (
	profileName   string
	profileAge    int
	profileHeight float64
	profileGender string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user profile and BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			st := s.Snapshot()
			out := cmd.OutOrStdout()
			if st.Profile == nil {
				fmt.Fprintln(out, "No profile yet. Set one with `snakless profile set`.")
				return nil
			}
			p := st.Profile
			fmt.Fprintf(out, "Name:   %s\n", p.Name)
			fmt.Fprintf(out, "Age:    %d\n", p.Age)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.Height)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			if bmi, band := s.BMI(); band != derive.BandUnknown {
				fmt.Fprintf(out, "BMI:    %.1f (%s)\n", bmi, band)
			}
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			patch := db.ProfilePatch{
				Name:   profileName,
				Age:    profileAge,
				Height: profileHeight,
				Gender: profileGender,
			}
			p, err := s.UpdateProfile(patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved: %s, age %d, %s cm\n",
				p.Name, p.Age, strconv.FormatFloat(p.Height, 'f', -1, 64))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender")
}
