package tower

import (
	"testing"

	"github.com/ogrande/tower-cards/internal/game"
)

func TestEnemyForFloor_Scaling(t *testing.T) {
	one := EnemyForFloor(1)
	if one.Stats != (game.Stats{HitPoints: 120, Attack: 25, Defense: 10, Speed: 20}) {
		t.Fatalf("floor 1 stats wrong: %+v", one.Stats)
	}
	five := EnemyForFloor(5)
	if five.Stats != (game.Stats{HitPoints: 440, Attack: 65, Defense: 30, Speed: 28}) {
		t.Fatalf("floor 5 stats wrong: %+v", five.Stats)
	}
	if one.Name == "" || five.Name == "" || one.Name == five.Name {
		t.Fatalf("expected distinct per-floor enemy names, got %q and %q", one.Name, five.Name)
	}
}

func TestAdvance_RequiresUnlockedNextFloor(t *testing.T) {
	p := game.NewPlayer("p1")
	p.CurrentFloor = 3
	p.UnlockedFloor = 3

	if err := Advance(p); err == nil {
		t.Fatalf("expected advance to fail when the next floor is locked")
	}
	if p.CurrentFloor != 3 {
		t.Fatalf("current floor changed on failed advance: %d", p.CurrentFloor)
	}

	p.UnlockedFloor = 4
	if err := Advance(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentFloor != 4 {
		t.Fatalf("expected floor 4, got %d", p.CurrentFloor)
	}
}

func TestAdvance_StopsAtTop(t *testing.T) {
	p := game.NewPlayer("p1")
	p.CurrentFloor = MaxFloor
	p.UnlockedFloor = MaxFloor
	if err := Advance(p); err == nil {
		t.Fatalf("expected advance to fail at the top floor")
	}
}

func TestSet_Bounds(t *testing.T) {
	p := game.NewPlayer("p1")
	p.CurrentFloor = 2
	p.UnlockedFloor = 5

	if err := Set(p, 0); err == nil {
		t.Fatalf("expected floor 0 to be rejected")
	}
	if err := Set(p, 6); err == nil {
		t.Fatalf("expected a floor above the unlocked ceiling to be rejected")
	}
	if err := Set(p, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentFloor != 5 {
		t.Fatalf("expected floor 5, got %d", p.CurrentFloor)
	}
}

func TestUnlockNext_FrontierOnly(t *testing.T) {
	p := game.NewPlayer("p1")
	p.UnlockedFloor = 4

	// Clearing a floor below the frontier unlocks nothing.
	if UnlockNext(p, 2) {
		t.Fatalf("expected no unlock for a re-cleared floor")
	}
	if p.UnlockedFloor != 4 {
		t.Fatalf("unlocked floor changed: %d", p.UnlockedFloor)
	}

	if !UnlockNext(p, 4) {
		t.Fatalf("expected frontier clear to unlock the next floor")
	}
	if p.UnlockedFloor != 5 {
		t.Fatalf("expected unlocked floor 5, got %d", p.UnlockedFloor)
	}
}

func TestUnlockNext_CapsAtTop(t *testing.T) {
	p := game.NewPlayer("p1")
	p.UnlockedFloor = MaxFloor
	if UnlockNext(p, MaxFloor) {
		t.Fatalf("expected no unlock past the top floor")
	}
	if p.UnlockedFloor != MaxFloor {
		t.Fatalf("unlocked floor moved past the cap: %d", p.UnlockedFloor)
	}
}
