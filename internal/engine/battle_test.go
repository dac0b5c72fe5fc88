package engine

import (
	"math/rand"
	"testing"

	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/tower"
)

func testCard(stats game.Stats, ability game.AbilityKind, level int) *game.CardInstance {
	return &game.CardInstance{
		ID:       1,
		Name:     "Test Card",
		Rarity:   game.RarityCommon,
		Level:    level,
		MaxLevel: 20,
		Base:     stats,
		Ability:  ability,
	}
}

func TestDamage_NeverBelowOne(t *testing.T) {
	cases := []struct {
		atk, def, want int
	}{
		{65, 10, 60},
		{25, 92, 1},
		{0, 0, 1},
		{10, 20, 1},
		{10, 3, 8}, // floor(10 - 1.5)
	}
	for _, tc := range cases {
		if got := Damage(tc.atk, tc.def); got != tc.want {
			t.Fatalf("Damage(%d, %d) = %d, want %d", tc.atk, tc.def, got, tc.want)
		}
	}
}

func TestCardCombatant_LevelScalingTruncates(t *testing.T) {
	// Level 5 -> multiplier 1.12; 89*1.12 = 99.68 -> 99.
	c := testCard(game.Stats{HitPoints: 89, Attack: 65, Defense: 92, Speed: 65}, game.AbilityDefBoost, 5)
	cb := CardCombatant(c)
	if cb.HitPoints != 99 {
		t.Fatalf("expected truncated hp 99, got %d", cb.HitPoints)
	}
	if cb.Attack != 72 { // 65*1.12 = 72.8
		t.Fatalf("expected truncated atk 72, got %d", cb.Attack)
	}
}

// Hand-computed floor-1 exchange: DEF ability doubles 92 -> 184 for the
// opening only. Player spd 65 beats enemy spd 20, so the player opens:
// 65 - 10*0.5 = 60 damage (enemy 120 -> 60), buff consumed. Enemy answers:
// max(1, 25 - 92*0.5) = 1 (player 89 -> 88). Round 2 repeats the exchange
// and the enemy falls at 0.
func TestResolve_DefBoostFloorOne(t *testing.T) {
	c := testCard(game.Stats{HitPoints: 89, Attack: 65, Defense: 92, Speed: 65}, game.AbilityDefBoost, 1)
	enemy := tower.EnemyForFloor(1)
	if enemy.Stats != (game.Stats{HitPoints: 120, Attack: 25, Defense: 10, Speed: 20}) {
		t.Fatalf("unexpected floor-1 enemy stats: %+v", enemy.Stats)
	}

	res := Resolve(c, enemy, rand.New(rand.NewSource(1)), nil)

	if res.Outcome != game.OutcomeVictory {
		t.Fatalf("expected victory, got %s", res.Outcome)
	}
	if !res.PlayerFirst {
		t.Fatalf("expected the player to move first on speed 65 vs 20")
	}
	if res.Rounds != 2 {
		t.Fatalf("expected the enemy to fall in round 2, got %d", res.Rounds)
	}
	if res.EnemyHP != 0 {
		t.Fatalf("expected enemy at 0 HP, got %d", res.EnemyHP)
	}
	if res.PlayerHP != 88 {
		t.Fatalf("expected player at 88 HP after one answered hit, got %d", res.PlayerHP)
	}
}

func TestResolve_AtkBoostAppliesToFirstStrikeOnly(t *testing.T) {
	// atk 40 -> 60 for the opening strike: 60 - 5 = 55 damage, then the
	// buff reverts and later strikes deal 35.
	c := testCard(game.Stats{HitPoints: 200, Attack: 40, Defense: 50, Speed: 50}, game.AbilityAtkBoost, 1)
	res := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(1)), nil)

	if res.Outcome != game.OutcomeVictory {
		t.Fatalf("expected victory, got %s", res.Outcome)
	}
	// 120 -> 65 -> 30 -> 0: opening 55 then 35 per round, dead in round 3.
	if res.Rounds != 3 {
		t.Fatalf("expected victory in round 3, got %d", res.Rounds)
	}
}

func TestResolve_SpdBoostAffectsInitiative(t *testing.T) {
	// Base spd 15 loses to enemy 20; doubled to 30 it wins initiative with
	// no coin flip involved.
	c := testCard(game.Stats{HitPoints: 100, Attack: 80, Defense: 50, Speed: 15}, game.AbilitySpdBoost, 1)
	res := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(1)), nil)
	if !res.PlayerFirst {
		t.Fatalf("expected doubled speed to win initiative")
	}
}

func TestResolve_SpeedTieCoinFlipIsSeedDeterministic(t *testing.T) {
	// Effective speed exactly matches the enemy's 20; order comes from the
	// injected RNG and must be stable for a fixed seed.
	c := testCard(game.Stats{HitPoints: 100, Attack: 80, Defense: 50, Speed: 20}, game.AbilityAtkBoost, 1)

	first := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(7)), nil)
	for i := 0; i < 5; i++ {
		again := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(7)), nil)
		if again.PlayerFirst != first.PlayerFirst {
			t.Fatalf("coin flip changed across runs with the same seed")
		}
	}
}

func TestResolve_RoundCapDraw(t *testing.T) {
	// Both sides chip 1 damage per round; nobody falls within the cap.
	c := testCard(game.Stats{HitPoints: 2000, Attack: 6, Defense: 50, Speed: 30}, game.AbilityDefBoost, 1)
	res := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(1)), nil)

	if res.Outcome != game.OutcomeDraw {
		t.Fatalf("expected draw at the round cap, got %s", res.Outcome)
	}
	if res.Rounds != MaxRounds {
		t.Fatalf("expected %d rounds, got %d", MaxRounds, res.Rounds)
	}
	if res.PlayerHP == 0 || res.EnemyHP == 0 {
		t.Fatalf("draw requires both sides alive, got player %d enemy %d", res.PlayerHP, res.EnemyHP)
	}
}

func TestResolve_Defeat(t *testing.T) {
	// Enemy moves first (spd 20 vs 1) and lands 25 per strike; the player
	// falls in round 2 and never acts that round.
	c := testCard(game.Stats{HitPoints: 50, Attack: 11, Defense: 0, Speed: 1}, game.AbilityAtkBoost, 1)
	res := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(1)), nil)

	if res.Outcome != game.OutcomeDefeat {
		t.Fatalf("expected defeat, got %s", res.Outcome)
	}
	if res.PlayerHP != 0 {
		t.Fatalf("expected player at 0 HP, got %d", res.PlayerHP)
	}
	if res.PlayerFirst {
		t.Fatalf("expected enemy initiative")
	}
}

func TestResolve_ObserverDoesNotChangeOutcome(t *testing.T) {
	c := testCard(game.Stats{HitPoints: 89, Attack: 65, Defense: 92, Speed: 65}, game.AbilityDefBoost, 1)

	silent := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(3)), nil)

	snapshots := 0
	lastPhase := Phase("")
	observed := Resolve(c, tower.EnemyForFloor(1), rand.New(rand.NewSource(3)), func(s RoundSnapshot) {
		snapshots++
		lastPhase = s.Phase
	})

	if silent.Outcome != observed.Outcome || silent.PlayerHP != observed.PlayerHP || silent.EnemyHP != observed.EnemyHP || silent.Rounds != observed.Rounds {
		t.Fatalf("observer changed the outcome: %+v vs %+v", silent, observed)
	}
	if snapshots == 0 {
		t.Fatalf("expected the observer to receive snapshots")
	}
	if lastPhase != PhaseResolved {
		t.Fatalf("expected the final snapshot in the resolved phase, got %s", lastPhase)
	}
}
