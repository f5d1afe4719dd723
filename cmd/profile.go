package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Validate the learner profile and show the resolved policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, prof, err := loadPolicy(cmd)
		if err != nil {
			return err
		}

		if prof == nil {
			fmt.Println(theme.Hint.Render("No profile file found; defaults apply."))
		} else {
			path, _ := cmd.Flags().GetString("profile")
			fmt.Println(theme.Correct.Render("Profile valid: " + path))
			if len(prof.Learner.Diagnoses) > 0 {
				fmt.Println("  Diagnoses: " + strings.Join(prof.Learner.Diagnoses, ", "))
			}
		}

		fmt.Println()
		fmt.Println(theme.Body.Render("Resolved policy"))
		fmt.Printf("  Score weights: accuracy %.2f, hints %.2f, time %.2f\n",
			pol.Weights.Accuracy, pol.Weights.Hints, pol.Weights.Time)
		fmt.Printf("  Session: %d minutes, up to %d hints per item\n", pol.SessionMinutes, pol.MaxHints)
		if len(pol.TopTargets) > 0 {
			fmt.Println("  Top targets: " + strings.Join(pol.TopTargets, ", "))
		}
		if len(pol.Reduce) > 0 {
			fmt.Println("  Reduce: " + strings.Join(pol.Reduce, ", "))
		}
		var focus []string
		if pol.ErrorFocus.OmissionErrors {
			focus = append(focus, "omission")
		}
		if pol.ErrorFocus.AdditionErrors {
			focus = append(focus, "addition")
		}
		if pol.ErrorFocus.VisualGuessing {
			focus = append(focus, "visual guessing")
		}
		if len(focus) > 0 {
			fmt.Println("  Error focus: " + strings.Join(focus, ", "))
		}
		fmt.Println("  Game weighting:")
		for _, gt := range content.AllGameTypes() {
			fmt.Printf("    %-16s %.2f\n", content.GameDisplayName(gt), pol.GameWeights[gt])
		}
		return nil
	},
}
