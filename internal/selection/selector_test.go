package selection

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func itemPool() []content.Item {
	var pool []content.Item
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		pool = append(pool, &content.SoundSnapItem{
			BaseItem: content.BaseItem{
				ID: "ss-" + id, Game: content.GameSoundSnap,
				Difficulty: content.Difficulty(i%5 + 1),
				Skill:      "digraphs", Pattern: "sh",
			},
		})
	}
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		pool = append(pool, &content.BlendBuilderItem{
			BaseItem: content.BaseItem{
				ID: "bb-" + id, Game: content.GameBlendBuilder,
				Difficulty: 2, Skill: "blending", Pattern: "cvc",
			},
		})
	}
	return pool
}

func TestSelectItems_OnlyRequestedGameType(t *testing.T) {
	got := SelectItems(itemPool(), content.GameSoundSnap, 3, nil, nil, profile.DefaultPolicy(), 5, selNow, testRNG())
	if len(got) == 0 {
		t.Fatal("expected a non-empty selection")
	}
	for _, it := range got {
		if it.Base().Game != content.GameSoundSnap {
			t.Errorf("selected %s of game %s, want sound_snap only", it.Base().ID, it.Base().Game)
		}
	}
}

func TestSelectItems_NeverExceedsCount(t *testing.T) {
	got := SelectItems(itemPool(), content.GameSoundSnap, 3, nil, nil, profile.DefaultPolicy(), 5, selNow, testRNG())
	if len(got) > 5 {
		t.Errorf("selected %d items, want <= 5", len(got))
	}
}

func TestSelectItems_EmptyPool(t *testing.T) {
	got := SelectItems(itemPool(), content.GameMorphemeMatch, 3, nil, nil, profile.DefaultPolicy(), 5, selNow, testRNG())
	if len(got) != 0 {
		t.Errorf("selected %d items from an empty pool, want 0", len(got))
	}
}

func TestSelectItems_PartialWhenPoolSmall(t *testing.T) {
	got := SelectItems(itemPool(), content.GameBlendBuilder, 2, nil, nil, profile.DefaultPolicy(), 5, selNow, testRNG())
	if len(got) != 3 {
		t.Errorf("selected %d items, want all 3 available", len(got))
	}
}

func TestSelectItems_MissedItemResurfaces(t *testing.T) {
	pool := itemPool()
	recent := []mastery.ItemAttempt{
		{ItemID: "ss-a", Game: content.GameSoundSnap, Correct: false, Timestamp: selNow.Add(-time.Hour)},
	}

	got := SelectItems(pool, content.GameSoundSnap, 3, nil, recent, profile.DefaultPolicy(), 5, selNow, testRNG())
	found := false
	for _, it := range got {
		if it.Base().ID == "ss-a" {
			found = true
		}
	}
	if !found {
		t.Error("a recently missed item must appear in the next selection")
	}
}

func TestSelectItems_NoDuplicates(t *testing.T) {
	// An item that is both recently missed and top priority is a candidate
	// in every pass; the shared used-set must keep it unique.
	pool := itemPool()
	recent := []mastery.ItemAttempt{
		{ItemID: "ss-a", Game: content.GameSoundSnap, Correct: false, Timestamp: selNow.Add(-time.Minute)},
		{ItemID: "ss-b", Game: content.GameSoundSnap, Correct: false, Timestamp: selNow.Add(-time.Minute)},
	}

	got := SelectItems(pool, content.GameSoundSnap, 3, nil, recent, profile.DefaultPolicy(), 8, selNow, testRNG())
	seen := make(map[string]bool)
	for _, it := range got {
		id := it.Base().ID
		if seen[id] {
			t.Errorf("item %s selected twice", id)
		}
		seen[id] = true
	}
}

func TestSelectItems_ShuffleDoesNotLoseItems(t *testing.T) {
	got := SelectItems(itemPool(), content.GameSoundSnap, 3, nil, nil, profile.DefaultPolicy(), 12, selNow, testRNG())
	if len(got) != 12 {
		t.Errorf("selected %d items, want the full pool of 12", len(got))
	}
}
