package selection

import (
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

// ItemsPerRound is the default batch size for one game round.
const ItemsPerRound = 5

// Slot caps for the three selection passes, as fractions of the requested
// count: missed material first, then new items near the target difficulty.
const (
	missedFraction = 0.4
	newFraction    = 0.8
)

type scoredItem struct {
	item  content.Item
	score float64
}

// SelectItems assembles up to count items of one game type for a round.
// Selection order is priority-driven; the returned batch is shuffled so the
// presentation order never reveals the ranking to the learner. Returns an
// empty slice when no items of the game type exist, and fewer than count
// when the pool is too small.
func SelectItems(allItems []content.Item, gt content.GameType, difficulty content.Difficulty, masteries map[string]mastery.SkillMastery, recentAttempts []mastery.ItemAttempt, pol profile.Policy, count int, now time.Time, rng *rand.Rand) []content.Item {
	var gameItems []content.Item
	for _, it := range allItems {
		if it.Base().Game == gt {
			gameItems = append(gameItems, it)
		}
	}
	if len(gameItems) == 0 {
		return nil
	}

	scored := make([]scoredItem, len(gameItems))
	for i, it := range gameItems {
		scored[i] = scoredItem{item: it, score: ItemPriority(it, difficulty, masteries, recentAttempts, pol, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	// Partitions are by membership test and not mutually exclusive with the
	// final catch-all pass; the shared used-set guarantees dedup by id.
	missedRecently := func(id string) bool {
		last := mastery.LatestForItem(recentAttempts, id)
		return last != nil && !last.Correct
	}
	notSeen := func(id string) bool {
		return mastery.LatestForItem(recentAttempts, id) == nil
	}

	selected := make([]content.Item, 0, count)
	used := make(map[string]bool)
	take := func(it content.Item) {
		id := it.Base().ID
		if !used[id] {
			used[id] = true
			selected = append(selected, it)
		}
	}

	// Pass 1: recently missed items, highest priority first.
	missedCap := int(math.Ceil(float64(count) * missedFraction))
	for _, s := range scored {
		if len(selected) >= missedCap {
			break
		}
		if missedRecently(s.item.Base().ID) {
			take(s.item)
		}
	}

	// Pass 2: unseen items near the target difficulty.
	newCap := int(math.Ceil(float64(count) * newFraction))
	for _, s := range scored {
		if len(selected) >= newCap {
			break
		}
		base := s.item.Base()
		if notSeen(base.ID) && absInt(int(base.Difficulty)-int(difficulty)) <= 1 {
			take(s.item)
		}
	}

	// Pass 3: fill remaining slots from the full priority order.
	for _, s := range scored {
		if len(selected) >= count {
			break
		}
		take(s.item)
	}

	if len(selected) > count {
		selected = selected[:count]
	}
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
