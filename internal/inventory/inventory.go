package inventory

import (
	"sort"

	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/progression"
)

// Ranked returns the player's cards in the canonical player-facing order:
// rarity descending, then level descending, then creation time descending
// (newest first, by snowflake ID). Inventory content changes between
// commands, so the order is recomputed on every call; it is a strict total
// order because instance IDs are unique.
func Ranked(p *game.Player) []game.CardInstance {
	out := make([]game.CardInstance, len(p.Inventory))
	copy(out, p.Inventory)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rarity.Rank() != out[j].Rarity.Rank() {
			return out[i].Rarity.Rank() > out[j].Rarity.Rank()
		}
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// ByRankedIndex resolves a 1-based index in the ranked order to an instance
// ID. Returns false when the index is outside [1, len(inventory)].
func ByRankedIndex(p *game.Player, index int) (int64, bool) {
	ranked := Ranked(p)
	if index < 1 || index > len(ranked) {
		return 0, false
	}
	return ranked[index-1].ID, true
}

// Filter narrows enhancement candidates. Zero values match everything.
type Filter struct {
	Rarity game.Rarity
	Name   string
}

func (f Filter) matches(c *game.CardInstance) bool {
	if f.Rarity != "" && c.Rarity != f.Rarity {
		return false
	}
	if f.Name != "" && c.Name != f.Name {
		return false
	}
	return true
}

// EnhanceResult reports what an enhancement did.
type EnhanceResult struct {
	Consumed      int     `json:"consumed"`
	ExperienceAdd int     `json:"experience_added"`
	LevelsGained  int     `json:"levels_gained"`
	FinalLevel    int     `json:"final_level"`
	ConsumedIDs   []int64 `json:"consumed_ids"`
}

// Enhance sacrifices the first count inventory cards (acquisition order)
// matching the filter, excluding the target itself, and grants their
// combined enhancement experience to the target, cascading level-ups up to
// the target's max level. Nothing mutates unless enough candidates exist.
// Returns false when fewer than count cards match.
func Enhance(p *game.Player, targetID int64, f Filter, count int) (EnhanceResult, bool) {
	target := p.Card(targetID)
	if target == nil || count < 1 {
		return EnhanceResult{}, false
	}

	victims := make([]int64, 0, count)
	total := 0
	for i := range p.Inventory {
		c := &p.Inventory[i]
		if c.ID == targetID || !f.matches(c) {
			continue
		}
		victims = append(victims, c.ID)
		total += progression.EnhanceExperience(c.Rarity)
		if len(victims) == count {
			break
		}
	}
	if len(victims) < count {
		return EnhanceResult{}, false
	}

	for _, id := range victims {
		p.RemoveCard(id)
	}
	// RemoveCard may have shifted the backing slice; re-resolve the target.
	target = p.Card(targetID)
	gained := progression.ApplyCardExperience(target, total)
	return EnhanceResult{
		Consumed:      count,
		ExperienceAdd: total,
		LevelsGained:  gained,
		FinalLevel:    target.Level,
		ConsumedIDs:   victims,
	}, true
}
