package progression

import "github.com/ogrande/tower-cards/internal/game"

const (
	// StaminaPerLevel is the stamina bonus granted per user level gained.
	// Stamina has no ceiling; leveling is the only capacity mechanism.
	StaminaPerLevel = 5

	// BattleStaminaCost is charged up front when a battle starts, before
	// resolution.
	BattleStaminaCost = 5

	// DefeatStaminaPenalty applies on Defeat only, never on Draw.
	DefeatStaminaPenalty = 3

	enhanceBaseExperience = 50
)

// Threshold returns the experience required to go from level L to L+1.
// Users and cards share the same formula.
func Threshold(level int) int {
	return 100 * level
}

// ApplyUserExperience adds experience to the player and applies the level-up
// cascade: a single large grant may cross several levels. Each level gained
// grants the stamina bonus. Returns the number of levels gained.
func ApplyUserExperience(p *game.Player, exp int) int {
	p.Experience += exp
	gained := 0
	for p.Experience >= Threshold(p.Level) {
		p.Experience -= Threshold(p.Level)
		p.Level++
		p.Stamina += StaminaPerLevel
		gained++
	}
	return gained
}

// ApplyCardExperience adds experience to the card and cascades level-ups,
// stopping hard at the card's max level. Excess experience above the cap is
// retained unchanged but has no further effect. Returns levels gained.
func ApplyCardExperience(c *game.CardInstance, exp int) int {
	c.Experience += exp
	gained := 0
	for c.Level < c.MaxLevel && c.Experience >= Threshold(c.Level) {
		c.Experience -= Threshold(c.Level)
		c.Level++
		gained++
	}
	return gained
}

// Reward sizing as a function of floor depth.
func GoldReward(floor int) int    { return 50 + 10*floor }
func UserExpReward(floor int) int { return 30 + 5*floor }
func CardExpReward(floor int) int { return 40 + 10*floor }

// ApplyDefeatPenalty deducts the loss penalty, flooring stamina at zero.
func ApplyDefeatPenalty(p *game.Player) {
	p.Stamina -= DefeatStaminaPenalty
	if p.Stamina < 0 {
		p.Stamina = 0
	}
}

// EnhanceExperience returns the experience granted by sacrificing one card
// of the given rarity. Fractional results truncate.
func EnhanceExperience(r game.Rarity) int {
	switch r {
	case game.RarityLegendary:
		return enhanceBaseExperience * 3
	case game.RarityEpic:
		return enhanceBaseExperience * 2
	case game.RarityRare:
		return int(float64(enhanceBaseExperience) * 1.5)
	default:
		return enhanceBaseExperience
	}
}
