package selection

import (
	"testing"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

var selNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testItem(id string, difficulty content.Difficulty, skill, pattern string) content.Item {
	return &content.SoundSnapItem{
		BaseItem: content.BaseItem{ID: id, Game: content.GameSoundSnap, Difficulty: difficulty, Skill: skill, Pattern: pattern},
	}
}

func TestItemPriority_UnseenSkill(t *testing.T) {
	it := testItem("x", 3, "digraphs", "sh")
	// difficulty fit 30 + unseen 30 = 60
	got := ItemPriority(it, 3, nil, nil, profile.DefaultPolicy(), selNow)
	if got != 60 {
		t.Errorf("ItemPriority = %v, want 60", got)
	}
}

func TestItemPriority_DifficultyMismatch(t *testing.T) {
	near := ItemPriority(testItem("a", 3, "digraphs", "sh"), 3, nil, nil, profile.DefaultPolicy(), selNow)
	far := ItemPriority(testItem("b", 1, "digraphs", "sh"), 3, nil, nil, profile.DefaultPolicy(), selNow)
	if far != near-20 {
		t.Errorf("two units of mismatch should cost 20: near=%v far=%v", near, far)
	}
}

func TestItemPriority_MasteryGap(t *testing.T) {
	it := testItem("x", 3, "digraphs", "sh")
	masteries := map[string]mastery.SkillMastery{
		mastery.Key("digraphs", "sh"): {Skill: "digraphs", Pattern: "sh", Mastery: 40, NeedsReview: true},
	}
	// 30 + (100-40)*0.5 + 20 = 80
	got := ItemPriority(it, 3, masteries, nil, profile.DefaultPolicy(), selNow)
	if got != 80 {
		t.Errorf("ItemPriority = %v, want 80", got)
	}
}

func TestItemPriority_HighMasteryLowPriority(t *testing.T) {
	it := testItem("x", 3, "digraphs", "sh")
	strong := map[string]mastery.SkillMastery{
		mastery.Key("digraphs", "sh"): {Mastery: 95},
	}
	weak := map[string]mastery.SkillMastery{
		mastery.Key("digraphs", "sh"): {Mastery: 10},
	}
	pol := profile.DefaultPolicy()
	if ItemPriority(it, 3, strong, nil, pol, selNow) >= ItemPriority(it, 3, weak, nil, pol, selNow) {
		t.Error("a weak skill must outrank a strong one")
	}
}

func TestItemPriority_RecentMissUrgent(t *testing.T) {
	it := testItem("x", 3, "digraphs", "sh")
	oneHourAgo := selNow.Add(-time.Hour)
	recent := []mastery.ItemAttempt{
		{ItemID: "x", Game: content.GameSoundSnap, Correct: false, Timestamp: oneHourAgo},
	}
	// 30 + 30 + min(40, 40-1*2)=38 -> 98
	got := ItemPriority(it, 3, nil, recent, profile.DefaultPolicy(), selNow)
	if got != 98 {
		t.Errorf("ItemPriority = %v, want 98", got)
	}
}

func TestItemPriority_CorrectItemRegainsPrioritySlowly(t *testing.T) {
	it := testItem("x", 3, "digraphs", "sh")
	pol := profile.DefaultPolicy()

	recentHit := []mastery.ItemAttempt{{ItemID: "x", Correct: true, Timestamp: selNow.Add(-time.Hour)}}
	oldHit := []mastery.ItemAttempt{{ItemID: "x", Correct: true, Timestamp: selNow.Add(-40 * time.Hour)}}

	fresh := ItemPriority(it, 3, nil, recentHit, pol, selNow)
	stale := ItemPriority(it, 3, nil, oldHit, pol, selNow)
	if stale <= fresh {
		t.Errorf("older correct attempts should raise priority: fresh=%v stale=%v", fresh, stale)
	}
	// Capped at +10: 30 + 30 + 10 = 70
	if stale != 70 {
		t.Errorf("stale priority = %v, want 70 (recency capped at 10)", stale)
	}
}

func TestItemPriority_TopTargetBonus(t *testing.T) {
	it := testItem("x", 3, "vowel_teams", "ai")
	p := &profile.LearnerProfile{}
	p.InstructionalPriorities.TopTargets = []string{"vowel-teams"}
	pol := profile.ResolvePolicy(p)

	with := ItemPriority(it, 3, nil, nil, pol, selNow)
	without := ItemPriority(it, 3, nil, nil, profile.DefaultPolicy(), selNow)
	if with != without+15 {
		t.Errorf("top-target bonus: with=%v without=%v, want +15", with, without)
	}
}
