package engine

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/ogrande/tower-cards/internal/game"
)

// Phase tracks the resolver state machine.
type Phase string

const (
	PhaseInit       Phase = "init"
	PhaseAbility    Phase = "ability_resolution"
	PhaseInitiative Phase = "initiative"
	PhaseRound      Phase = "round"
	PhaseResolved   Phase = "resolved"
)

// MaxRounds is the hard cap; reaching it with both sides alive is a Draw.
const MaxRounds = 40

// Combatant holds effective battle stats, derived fresh per battle and
// never stored.
type Combatant struct {
	Name      string `json:"name"`
	HitPoints int    `json:"hp"`
	Attack    int    `json:"atk"`
	Defense   int    `json:"def"`
	Speed     int    `json:"spd"`
}

// RoundSnapshot is what an observer sees after each completed round. The
// observer is presentation-only: resolution runs to the authoritative final
// state whether or not anyone watches.
type RoundSnapshot struct {
	Round    int      `json:"round"`
	Phase    Phase    `json:"phase"`
	PlayerHP int      `json:"player_hp"`
	EnemyHP  int      `json:"enemy_hp"`
	Events   []string `json:"events"`
}

// Observer receives per-round snapshots during resolution. May be nil.
type Observer func(RoundSnapshot)

// Result is the terminal outcome of a battle.
type Result struct {
	Outcome     game.BattleOutcome `json:"outcome"`
	Rounds      int                `json:"rounds"`
	PlayerHP    int                `json:"player_hp"`
	EnemyHP     int                `json:"enemy_hp"`
	PlayerFirst bool               `json:"player_first"`
	Log         []string           `json:"log"`
}

// CardCombatant derives the player side from a card instance: template base
// stats scaled by 1 + 0.03*(level-1), truncated to integers.
func CardCombatant(c *game.CardInstance) Combatant {
	mult := 1.0 + 0.03*float64(c.Level-1)
	scale := func(v int) int { return int(float64(v) * mult) }
	return Combatant{
		Name:      c.Name,
		HitPoints: scale(c.Base.HitPoints),
		Attack:    scale(c.Base.Attack),
		Defense:   scale(c.Base.Defense),
		Speed:     scale(c.Base.Speed),
	}
}

// EnemyCombatant derives the enemy side from a floor encounter.
func EnemyCombatant(e game.EnemyEncounter) Combatant {
	return Combatant{
		Name:      e.Name,
		HitPoints: e.Stats.HitPoints,
		Attack:    e.Stats.Attack,
		Defense:   e.Stats.Defense,
		Speed:     e.Stats.Speed,
	}
}

// Damage applies the battle damage formula: max(1, floor(atk - def*0.5)).
// Never less than 1 for any non-negative inputs.
func Damage(atk, def int) int {
	d := int(math.Floor(float64(atk) - float64(def)*0.5))
	if d < 1 {
		d = 1
	}
	return d
}

// battleState carries a running resolution.
type battleState struct {
	player Combatant
	enemy  Combatant

	// One-shot ability bookkeeping: the buffed stat reverts to its unbuffed
	// value immediately after the player's first attack resolves, regardless
	// of who acts first.
	buffConsumed bool
	revert       func()

	round  int
	events []string
	log    []string
	obs    Observer
}

func (b *battleState) add(msg string) {
	b.events = append(b.events, msg)
	b.log = append(b.log, msg)
}

func (b *battleState) emit(phase Phase) {
	if b.obs == nil {
		return
	}
	b.obs(RoundSnapshot{
		Round:    b.round,
		Phase:    phase,
		PlayerHP: b.player.HitPoints,
		EnemyHP:  b.enemy.HitPoints,
		Events:   b.events,
	})
	b.events = nil
}

// applyAbility installs the card's one-shot modifier and remembers how to
// revert it. Runs before initiative so a speed boost participates in turn
// order.
func (b *battleState) applyAbility(kind game.AbilityKind) {
	switch kind {
	case game.AbilityDefBoost:
		prev := b.player.Defense
		b.player.Defense *= 2
		b.revert = func() { b.player.Defense = prev }
		b.add(b.player.Name + " braces: Defense doubled for the opening exchange")
	case game.AbilitySpdBoost:
		prev := b.player.Speed
		b.player.Speed *= 2
		b.revert = func() { b.player.Speed = prev }
		b.add(b.player.Name + " accelerates: Speed doubled for the opening exchange")
	case game.AbilityAtkBoost:
		prev := b.player.Attack
		b.player.Attack = int(float64(b.player.Attack) * 1.5)
		b.revert = func() { b.player.Attack = prev }
		b.add(b.player.Name + " surges: Attack x1.5 for the opening strike")
	}
}

func (b *battleState) consumeBuff() {
	if b.buffConsumed {
		return
	}
	b.buffConsumed = true
	if b.revert != nil {
		b.revert()
	}
}

// attack resolves one action. Returns false when the defender dropped to 0.
func (b *battleState) attack(attacker, defender *Combatant) bool {
	dmg := Damage(attacker.Attack, defender.Defense)
	defender.HitPoints -= dmg
	if defender.HitPoints < 0 {
		defender.HitPoints = 0
	}
	b.add(attacker.Name + " hits " + defender.Name + " for " + strconv.Itoa(dmg) + " damage (HP " + strconv.Itoa(defender.HitPoints) + " left)")
	if attacker == &b.player {
		b.consumeBuff()
	}
	return defender.HitPoints > 0
}

// Resolve runs a battle to a terminal state. The RNG is injectable so speed
// ties resolve reproducibly under test; it is consulted at most once, for
// the initiative coin flip, which fixes turn order for the whole battle.
func Resolve(card *game.CardInstance, enemy game.EnemyEncounter, rng *rand.Rand, obs Observer) Result {
	b := &battleState{
		player: CardCombatant(card),
		enemy:  EnemyCombatant(enemy),
		obs:    obs,
	}

	b.applyAbility(card.Ability)
	b.emit(PhaseAbility)

	playerFirst := b.player.Speed > b.enemy.Speed
	if b.player.Speed == b.enemy.Speed {
		playerFirst = rng.Intn(2) == 0
	}
	if playerFirst {
		b.add(b.player.Name + " moves first")
	} else {
		b.add(b.enemy.Name + " moves first")
	}
	b.emit(PhaseInitiative)

	outcome := game.OutcomeDraw
	rounds := 0
	for round := 1; round <= MaxRounds; round++ {
		b.round = round
		rounds = round
		alive := true
		if playerFirst {
			alive = b.attack(&b.player, &b.enemy)
			if alive {
				alive = b.attack(&b.enemy, &b.player)
			}
		} else {
			alive = b.attack(&b.enemy, &b.player)
			if alive {
				alive = b.attack(&b.player, &b.enemy)
			}
		}
		b.emit(PhaseRound)
		if !alive {
			break
		}
	}

	switch {
	case b.enemy.HitPoints == 0:
		outcome = game.OutcomeVictory
		b.add(b.enemy.Name + " is defeated!")
	case b.player.HitPoints == 0:
		outcome = game.OutcomeDefeat
		b.add(b.player.Name + " is defeated!")
	default:
		b.add("Neither side fell within " + strconv.Itoa(MaxRounds) + " rounds: draw")
	}
	b.emit(PhaseResolved)

	return Result{
		Outcome:     outcome,
		Rounds:      rounds,
		PlayerHP:    b.player.HitPoints,
		EnemyHP:     b.enemy.HitPoints,
		PlayerFirst: playerFirst,
		Log:         b.log,
	}
}
