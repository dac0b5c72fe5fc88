package game

import "time"

// Rarity is the drop tier of a card. It controls the instance's maximum
// level and its drop probability.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank orders rarities for the canonical inventory sort (higher is better).
func (r Rarity) Rank() int {
	switch r {
	case RarityLegendary:
		return 3
	case RarityEpic:
		return 2
	case RarityRare:
		return 1
	default:
		return 0
	}
}

// AbilityKind identifies a template's one-shot first-turn ability. Abilities
// are fixed at catalog-definition time; battle behavior never derives from
// display text.
type AbilityKind string

const (
	AbilityDefBoost AbilityKind = "def_boost"
	AbilitySpdBoost AbilityKind = "spd_boost"
	AbilityAtkBoost AbilityKind = "atk_boost"
)

// Stats is the base stat block shared by templates, card instances and
// enemy encounters.
type Stats struct {
	HitPoints int `json:"hp"`
	Attack    int `json:"atk"`
	Defense   int `json:"def"`
	Speed     int `json:"spd"`
}

// CharacterTemplate is an immutable catalog entry. Identity is the catalog
// ID; templates never mutate at runtime.
type CharacterTemplate struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Base        Stats       `json:"base"`
	Ability     AbilityKind `json:"ability"`
	AbilityName string      `json:"ability_name"`
	Image       string      `json:"image"`
}

// CardInstance is a player-owned copy of a template with its own identity,
// level and experience. Template stats and ability are copied at creation so
// catalog edits never rewrite owned cards.
type CardInstance struct {
	// ID is a snowflake: globally unique and ordered by creation time to
	// millisecond granularity. Newest-first ordering compares IDs descending.
	ID         int64       `json:"id"`
	TemplateID uint        `json:"template_id"`
	Name       string      `json:"name"`
	Rarity     Rarity      `json:"rarity"`
	Level      int         `json:"level"`
	Experience int         `json:"experience"`
	// MaxLevel is derived from rarity at creation time and frozen.
	MaxLevel int         `json:"max_level"`
	Base     Stats       `json:"base"`
	Ability  AbilityKind `json:"ability"`
}

// Player is the durable per-player record. Records are created lazily on
// first reference and never removed.
type Player struct {
	PlayerID   string `json:"player_id"`
	Stamina    int    `json:"stamina"`
	Gold       int    `json:"gold"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`

	// CurrentFloor <= UnlockedFloor always; UnlockedFloor >= 1.
	CurrentFloor  int `json:"current_floor"`
	UnlockedFloor int `json:"unlocked_floor"`

	// SelectedCardID is 0 when no card is selected. When set it must
	// reference an owned instance.
	SelectedCardID int64 `json:"selected_card_id"`

	// Inventory keeps acquisition order; player-facing indexes use the
	// ranked order instead (see internal/inventory).
	Inventory []CardInstance `json:"inventory"`

	LastHourlyAt time.Time `json:"last_hourly_at"`
	LastDropAt   time.Time `json:"last_drop_at"`
	LastFarmAt   time.Time `json:"last_farm_at"`
}

// NewPlayer returns a fresh record with starting resources.
func NewPlayer(id string) *Player {
	return &Player{
		PlayerID:      id,
		Stamina:       20,
		Gold:          0,
		Level:         1,
		Experience:    0,
		CurrentFloor:  1,
		UnlockedFloor: 1,
		Inventory:     make([]CardInstance, 0),
	}
}

// Card returns a pointer to the owned instance with the given ID, or nil.
func (p *Player) Card(id int64) *CardInstance {
	for i := range p.Inventory {
		if p.Inventory[i].ID == id {
			return &p.Inventory[i]
		}
	}
	return nil
}

// RemoveCard deletes the owned instance with the given ID, preserving
// acquisition order. Removing the selected card clears the selection.
func (p *Player) RemoveCard(id int64) bool {
	for i := range p.Inventory {
		if p.Inventory[i].ID == id {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			if p.SelectedCardID == id {
				p.SelectedCardID = 0
			}
			return true
		}
	}
	return false
}

// EnemyEncounter is derived from the floor number for a single battle and
// never persisted.
type EnemyEncounter struct {
	Name  string `json:"name"`
	Floor int    `json:"floor"`
	Stats Stats  `json:"stats"`
}

// BattleOutcome is the terminal result of a battle resolution.
type BattleOutcome string

const (
	OutcomeVictory BattleOutcome = "victory"
	OutcomeDefeat  BattleOutcome = "defeat"
	// OutcomeDraw happens only when the round cap is reached with both
	// combatants alive. Draws carry no stamina penalty.
	OutcomeDraw BattleOutcome = "draw"
)
