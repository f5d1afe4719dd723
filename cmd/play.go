package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/mission"
	"github.com/anika/decodequest/internal/profile"
	"github.com/anika/decodequest/internal/selection"
	"github.com/anika/decodequest/internal/session"
	"github.com/anika/decodequest/internal/store"
	"github.com/anika/decodequest/internal/ui/theme"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
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

		return runSession(cmd, st, pol, progress)
	},
}

func runSession(cmd *cobra.Command, st *store.Store, pol profile.Policy, progress *session.ProgressData) error {
	ctx := cmd.Context()
	events := st.EventRepo()
	recorder := session.NewRecorder(pol)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	reader := bufio.NewReader(os.Stdin)

	sessionID := uuid.NewString()
	rounds := mission.Build(pol, progress.GameProgress, pol.SessionMinutes, rng)

	games := make([]string, len(rounds))
	for i, gt := range rounds {
		games[i] = string(gt)
	}
	err := events.AppendSession(ctx, store.SessionEventData{
		SessionID:   sessionID,
		Action:      "start",
		GamesPlayed: games,
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.Title.Render("DecodeQuest"))
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d rounds today. Type ? for a hint, q to stop early.", len(rounds))))

	start := time.Now()
	var totalItems, correctItems, hintsTotal, xpEarned int
	touched := make(map[string]bool)

stop:
	for i, gt := range rounds {
		difficulty := progress.Progress(gt).CurrentDifficulty
		fmt.Println()
		fmt.Println(theme.Header.Render(fmt.Sprintf("Round %d/%d: %s (level %d)", i+1, len(rounds), content.GameDisplayName(gt), difficulty)))

		items := selection.SelectItems(content.AllItems(), gt, difficulty,
			progress.SkillMasteries, progress.RecentAttempts, pol,
			selection.ItemsPerRound, time.Now(), rng)

		for _, item := range items {
			outcome, quit := playItem(reader, item, pol.MaxHints, rng)
			if quit {
				break stop
			}

			base := item.Base()
			attempt := mastery.ItemAttempt{
				ItemID:    base.ID,
				Game:      base.Game,
				Timestamp: time.Now(),
				Correct:   outcome.correct,
				HintsUsed: outcome.hints,
				TimeMs:    outcome.timeMs,
			}
			res := recorder.RecordAttempt(progress, attempt, base.Skill, base.Pattern, outcome.userTokens, outcome.correctTokens)

			err := events.AppendAttempt(ctx, store.AttemptEventData{
				SessionID:   sessionID,
				ItemID:      base.ID,
				GameType:    string(base.Game),
				Skill:       base.Skill,
				Pattern:     base.Pattern,
				Correct:     outcome.correct,
				HintsUsed:   outcome.hints,
				TimeMs:      outcome.timeMs,
				Score:       res.Score,
				XP:          res.XP,
				ErrorType:   string(res.Detection.ErrorType),
				WasGuessing: res.Detection.IsGuessing,
				Timestamp:   attempt.Timestamp,
			})
			if err != nil {
				return err
			}

			totalItems++
			hintsTotal += outcome.hints
			xpEarned += res.XP
			touched[mastery.Key(base.Skill, base.Pattern)] = true

			if outcome.correct {
				correctItems++
				fmt.Printf("%s %s\n", theme.Correct.Render("Correct!"), theme.XP.Render(fmt.Sprintf("+%d XP", res.XP)))
				if res.Mastery.Streak > 0 && res.Mastery.Streak%3 == 0 {
					fmt.Println(theme.Feedback.Render(content.RandomMessage(rng, content.MsgMastery, res.Mastery.Mastery)))
				}
			} else {
				fmt.Printf("%s The answer was %s\n", theme.Incorrect.Render("Not quite."), theme.Word.Render(outcome.answer))
				if res.Detection.Feedback != "" {
					fmt.Println(theme.Feedback.Render(res.Detection.Feedback))
				} else {
					fmt.Println(theme.Feedback.Render(content.RandomMessage(rng, content.MsgEncouragement, res.Mastery.Mastery)))
				}
			}
		}
	}

	summary := session.SessionSummary{
		ID:           sessionID,
		Date:         time.Now(),
		Duration:     time.Since(start),
		GamesPlayed:  rounds,
		TotalItems:   totalItems,
		CorrectItems: correctItems,
		HintsUsed:    hintsTotal,
		XPEarned:     xpEarned,
	}
	for key := range touched {
		sm := progress.SkillMasteries[key]
		if sm.NeedsReview {
			summary.NextFocus = append(summary.NextFocus, sm.Skill+" ("+sm.Pattern+")")
		} else if sm.Mastery >= 80 {
			summary.Improvements = append(summary.Improvements, sm.Skill+" ("+sm.Pattern+")")
		}
	}
	recorder.FinishSession(progress, summary, time.Now())

	err = events.AppendSession(ctx, store.SessionEventData{
		SessionID:    sessionID,
		Action:       "end",
		TotalItems:   totalItems,
		CorrectItems: correctItems,
		HintsUsed:    hintsTotal,
		XPEarned:     xpEarned,
		DurationSecs: int(summary.Duration.Seconds()),
	})
	if err != nil {
		return err
	}
	if err := saveProgress(cmd, st, progress); err != nil {
		return err
	}

	printSummary(progress, summary, rng)
	return nil
}

type itemOutcome struct {
	correct       bool
	hints         int
	timeMs        int
	answer        string
	userTokens    []string
	correctTokens []string
}

// playItem shows one item, reads the answer, and handles the hint ladder.
// quit is true when the learner types q.
func playItem(reader *bufio.Reader, item content.Item, maxHints int, rng *rand.Rand) (itemOutcome, bool) {
	prompt, answer, correctTokens := renderItem(item, rng)
	fmt.Println()
	fmt.Println(prompt)

	start := time.Now()
	hints := 0
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return itemOutcome{}, true
		}
		input := strings.TrimSpace(line)

		switch {
		case input == "q":
			return itemOutcome{}, true
		case input == "?":
			if hints >= maxHints {
				fmt.Println(theme.Hint.Render("No hints left. Give it your best try."))
				continue
			}
			hints++
			fmt.Println(theme.Hint.Render(hintFor(item, hints)))
			continue
		case input == "":
			continue
		}

		return itemOutcome{
			correct:       strings.EqualFold(input, answer),
			hints:         hints,
			timeMs:        int(time.Since(start).Milliseconds()),
			answer:        answer,
			userTokens:    answerTokens(item, input),
			correctTokens: correctTokens,
		}, false
	}
}

// renderItem builds the question text, the expected answer, and the token
// form of the correct answer used by error classification.
func renderItem(item content.Item, rng *rand.Rand) (prompt, answer string, tokens []string) {
	switch it := item.(type) {
	case *content.SoundSnapItem:
		if it.Mode == content.GraphemeToSound {
			prompt = fmt.Sprintf("Which sound do the letters %s make? (as in %s)",
				theme.Word.Render(it.Target), it.Word)
			answer = it.TargetPronunciation
		} else {
			prompt = fmt.Sprintf("Which letters make the sound %s? (as in %s)",
				theme.Word.Render(it.TargetPronunciation), it.Word)
			answer = it.Target
		}
		tokens = splitChars(answer)
	case *content.BlendBuilderItem:
		tiles := append(append([]string(nil), it.Phonemes...), it.DistractorPhonemes...)
		rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
		prompt = fmt.Sprintf("Blend these sounds into a word: %s",
			theme.Word.Render(strings.Join(tiles, "  ")))
		if it.IsNonword {
			prompt += theme.Hint.Render("  (made-up word)")
		}
		answer = it.TargetWord
		tokens = splitChars(answer)
	case *content.SyllableSprintItem:
		prompt = fmt.Sprintf("Split %s into syllables with hyphens (e.g. ta-ble)",
			theme.Word.Render(it.Word))
		answer = strings.Join(it.Syllables, "-")
		tokens = it.Syllables
	case *content.MorphemeMatchItem:
		prompt = fmt.Sprintf("Join these word parts into one word: %s",
			theme.Word.Render(strings.Join(it.Morphemes, " + ")))
		answer = it.TargetWord
		tokens = splitChars(answer)
	}
	return prompt, answer, tokens
}

// answerTokens converts the learner's raw input into the token form used
// by error classification, matching the granularity of the correct answer.
func answerTokens(item content.Item, input string) []string {
	if _, ok := item.(*content.SyllableSprintItem); ok {
		return strings.Split(strings.ToLower(input), "-")
	}
	return splitChars(strings.ToLower(input))
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range strings.ToLower(s) {
		out = append(out, string(r))
	}
	return out
}

// hintFor walks the hint ladder: pattern, then a game-specific scaffold,
// then the first letter, then the answer length.
func hintFor(item content.Item, level int) string {
	base := item.Base()
	switch level {
	case 1:
		return fmt.Sprintf("This one practices %s: look for the %q pattern.", base.Skill, base.Pattern)
	case 2:
		switch it := item.(type) {
		case *content.BlendBuilderItem:
			return "Say it slowly: " + it.SlowBlend
		case *content.SyllableSprintItem:
			return fmt.Sprintf("It has %d syllables.", len(it.Syllables))
		case *content.MorphemeMatchItem:
			return "It means: " + it.Meaning
		case *content.SoundSnapItem:
			return "It appears in the word: " + it.Word
		}
	case 3:
		if answerStart := hintAnswer(item); answerStart != "" {
			return "It starts with " + string(answerStart[0])
		}
	}
	if a := hintAnswer(item); a != "" {
		return fmt.Sprintf("It has %d letters.", len(a))
	}
	return "Take your time and sound it out."
}

func hintAnswer(item content.Item) string {
	switch it := item.(type) {
	case *content.SoundSnapItem:
		if it.Mode == content.GraphemeToSound {
			return it.TargetPronunciation
		}
		return it.Target
	case *content.BlendBuilderItem:
		return it.TargetWord
	case *content.SyllableSprintItem:
		return it.Word
	case *content.MorphemeMatchItem:
		return it.TargetWord
	}
	return ""
}

func printSummary(progress *session.ProgressData, summary session.SessionSummary, rng *rand.Rand) {
	fmt.Println()
	fmt.Println(theme.Title.Render("Session Complete"))
	fmt.Printf("  Items: %d   Correct: %d   Hints: %d\n", summary.TotalItems, summary.CorrectItems, summary.HintsUsed)
	fmt.Printf("  %s   Total: %s\n",
		theme.XP.Render(fmt.Sprintf("+%d XP", summary.XPEarned)),
		theme.XP.Render(fmt.Sprintf("%d XP", progress.TotalXP)))
	fmt.Printf("  %s\n", theme.Streak.Render(fmt.Sprintf("Day streak: %d (best %d)", progress.CurrentStreak, progress.LongestStreak)))
	if len(summary.Improvements) > 0 {
		fmt.Println("  Going strong: " + strings.Join(summary.Improvements, ", "))
	}
	if len(summary.NextFocus) > 0 {
		fmt.Println("  Next focus: " + strings.Join(summary.NextFocus, ", "))
	}
	fmt.Println()
	fmt.Println(theme.Feedback.Render(content.RandomMessage(rng, content.MsgProgress, 0)))
}
