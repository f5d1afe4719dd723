package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/store"
	"github.com/anika/decodequest/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Println(theme.Title.Render("Progress"))
		fmt.Printf("  %s   %s\n",
			theme.XP.Render(fmt.Sprintf("%d XP", progress.TotalXP)),
			theme.Streak.Render(fmt.Sprintf("Day streak: %d (best %d)", progress.CurrentStreak, progress.LongestStreak)))
		fmt.Printf("  Sessions: %d   Attempts on record: %d\n", len(progress.SessionHistory), len(progress.RecentAttempts))

		fmt.Println()
		fmt.Println(theme.Body.Render("Games"))
		for _, gt := range content.AllGameTypes() {
			gp := progress.Progress(gt)
			fmt.Printf("  %-16s level %d   %3d%% recent   %d XP\n",
				content.GameDisplayName(gt), gp.CurrentDifficulty, gp.RecentAccuracy, gp.TotalXP)
		}

		if len(progress.SkillMasteries) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println(theme.Body.Render("Skills"))
		keys := make([]string, 0, len(progress.SkillMasteries))
		for k := range progress.SkillMasteries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sm := progress.SkillMasteries[k]
			label := fmt.Sprintf("%s (%s)", sm.Skill, sm.Pattern)
			line := fmt.Sprintf("  %-28s %s", label, theme.Mastery(sm.Mastery).Render(fmt.Sprintf("%3d", sm.Mastery)))
			if sm.NeedsReview {
				line += theme.Hint.Render("  needs review")
			}
			fmt.Println(line)
		}
		return nil
	},
}
