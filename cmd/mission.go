package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mission"
	"github.com/anika/decodequest/internal/store"
	"github.com/anika/decodequest/internal/ui/theme"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Show today's practice plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, _, err := loadPolicy(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		progress, err := loadProgress(cmd, st)
		if err != nil {
			return err
		}

		minutes, _ := cmd.Flags().GetInt("minutes")
		if minutes <= 0 {
			minutes = pol.SessionMinutes
		}

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		rounds := mission.Build(pol, progress.GameProgress, minutes, rng)

		fmt.Println(theme.Title.Render("Today's Mission"))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d minutes, %d rounds", minutes, len(rounds))))
		fmt.Println()
		for i, gt := range rounds {
			difficulty := progress.Progress(gt).CurrentDifficulty
			fmt.Printf("  %d. %s  %s\n", i+1,
				theme.Body.Render(content.GameDisplayName(gt)),
				theme.Hint.Render(fmt.Sprintf("(level %d) %s", difficulty, content.GameDescription(gt))))
		}
		return nil
	},
}

func init() {
	missionCmd.Flags().Int("minutes", 0, "Session length in minutes (defaults to the profile recommendation)")
}
