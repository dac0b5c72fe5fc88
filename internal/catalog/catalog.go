package catalog

import (
	"math/rand"

	"github.com/ogrande/tower-cards/internal/game"
)

// The catalog is fixed, code-defined configuration: character templates,
// the rarity -> max-level table and the rarity drop weights. It is read-only
// at runtime.

var templates = []game.CharacterTemplate{
	{ID: 1, Name: "Stonewall Golem", Base: game.Stats{HitPoints: 89, Attack: 65, Defense: 92, Speed: 65}, Ability: game.AbilityDefBoost, AbilityName: "Granite Guard", Image: "cards/stonewall_golem.png"},
	{ID: 2, Name: "Ember Duelist", Base: game.Stats{HitPoints: 78, Attack: 88, Defense: 54, Speed: 72}, Ability: game.AbilityAtkBoost, AbilityName: "Flame Surge", Image: "cards/ember_duelist.png"},
	{ID: 3, Name: "Gale Dancer", Base: game.Stats{HitPoints: 70, Attack: 74, Defense: 48, Speed: 95}, Ability: game.AbilitySpdBoost, AbilityName: "Tailwind Step", Image: "cards/gale_dancer.png"},
	{ID: 4, Name: "Frost Warden", Base: game.Stats{HitPoints: 96, Attack: 58, Defense: 84, Speed: 50}, Ability: game.AbilityDefBoost, AbilityName: "Glacier Wall", Image: "cards/frost_warden.png"},
	{ID: 5, Name: "Thorn Stalker", Base: game.Stats{HitPoints: 74, Attack: 92, Defense: 44, Speed: 80}, Ability: game.AbilityAtkBoost, AbilityName: "Barbed Lunge", Image: "cards/thorn_stalker.png"},
	{ID: 6, Name: "Tide Caller", Base: game.Stats{HitPoints: 84, Attack: 70, Defense: 66, Speed: 68}, Ability: game.AbilitySpdBoost, AbilityName: "Riptide Rush", Image: "cards/tide_caller.png"},
	{ID: 7, Name: "Iron Vanguard", Base: game.Stats{HitPoints: 102, Attack: 62, Defense: 88, Speed: 42}, Ability: game.AbilityDefBoost, AbilityName: "Bulwark Oath", Image: "cards/iron_vanguard.png"},
	{ID: 8, Name: "Shade Piercer", Base: game.Stats{HitPoints: 66, Attack: 96, Defense: 40, Speed: 88}, Ability: game.AbilityAtkBoost, AbilityName: "Night Edge", Image: "cards/shade_piercer.png"},
	{ID: 9, Name: "Storm Herald", Base: game.Stats{HitPoints: 80, Attack: 82, Defense: 58, Speed: 90}, Ability: game.AbilitySpdBoost, AbilityName: "Thunder Stride", Image: "cards/storm_herald.png"},
	{ID: 10, Name: "Sun Sentinel", Base: game.Stats{HitPoints: 92, Attack: 76, Defense: 74, Speed: 60}, Ability: game.AbilityDefBoost, AbilityName: "Radiant Aegis", Image: "cards/sun_sentinel.png"},
}

var maxLevelByRarity = map[game.Rarity]int{
	game.RarityCommon:    20,
	game.RarityRare:      30,
	game.RarityEpic:      40,
	game.RarityLegendary: 50,
}

// Drop weights are relative and need not sum to 100.
var rarityWeights = []struct {
	rarity game.Rarity
	weight int
}{
	{game.RarityCommon, 60},
	{game.RarityRare, 25},
	{game.RarityEpic, 10},
	{game.RarityLegendary, 5},
}

// Templates returns the full template list in catalog order.
func Templates() []game.CharacterTemplate {
	out := make([]game.CharacterTemplate, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID returns the template with the given catalog ID, or nil.
func TemplateByID(id uint) *game.CharacterTemplate {
	for i := range templates {
		if templates[i].ID == id {
			t := templates[i]
			return &t
		}
	}
	return nil
}

// MaxLevel returns the level cap an instance of the given rarity is frozen
// with at creation time.
func MaxLevel(r game.Rarity) int {
	if ml, ok := maxLevelByRarity[r]; ok {
		return ml
	}
	return maxLevelByRarity[game.RarityCommon]
}

// RollRarity draws a rarity from the weighted distribution using the
// provided random source.
func RollRarity(rng *rand.Rand) game.Rarity {
	total := 0
	for _, w := range rarityWeights {
		total += w.weight
	}
	n := rng.Intn(total)
	for _, w := range rarityWeights {
		if n < w.weight {
			return w.rarity
		}
		n -= w.weight
	}
	return game.RarityCommon
}

// RollTemplate picks a template uniformly at random. Template choice is
// independent of the rarity roll.
func RollTemplate(rng *rand.Rand) game.CharacterTemplate {
	return templates[rng.Intn(len(templates))]
}
