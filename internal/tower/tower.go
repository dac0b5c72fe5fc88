package tower

import (
	"fmt"

	"github.com/ogrande/tower-cards/internal/game"
)

// MaxFloor is the top of the tower.
const MaxFloor = 10

var enemyNames = []string{
	"Gate Slime",
	"Cellar Rat King",
	"Hollow Knight",
	"Bone Archer",
	"Mire Troll",
	"Gloom Harpy",
	"Rust Colossus",
	"Pale Lich",
	"Storm Drake",
	"Tower Sovereign",
}

// EnemyForFloor derives the encounter for a floor. Encounters are ephemeral:
// computed fresh per battle, never persisted.
func EnemyForFloor(floor int) game.EnemyEncounter {
	name := enemyNames[len(enemyNames)-1]
	if floor >= 1 && floor <= len(enemyNames) {
		name = enemyNames[floor-1]
	}
	return game.EnemyEncounter{
		Name:  name,
		Floor: floor,
		Stats: game.Stats{
			HitPoints: 120 + 80*(floor-1),
			Attack:    25 + 10*(floor-1),
			Defense:   10 + 5*(floor-1),
			Speed:     20 + 2*(floor-1),
		},
	}
}

// Advance moves the player up one floor. The next floor must already be
// unlocked; being below the cap alone is not sufficient.
func Advance(p *game.Player) error {
	if p.CurrentFloor >= MaxFloor {
		return fmt.Errorf("already at the top floor (%d)", MaxFloor)
	}
	if p.CurrentFloor >= p.UnlockedFloor {
		return fmt.Errorf("floor %d is not unlocked yet", p.CurrentFloor+1)
	}
	p.CurrentFloor++
	return nil
}

// Set jumps to a floor the player has already unlocked.
func Set(p *game.Player, floor int) error {
	if floor < 1 || floor > p.UnlockedFloor {
		return fmt.Errorf("floor must be between 1 and %d", p.UnlockedFloor)
	}
	p.CurrentFloor = floor
	return nil
}

// UnlockNext records a floor clear: progression advances by exactly one
// floor and only when the cleared floor is the current frontier. Returns
// true when a new floor was unlocked.
func UnlockNext(p *game.Player, clearedFloor int) bool {
	if clearedFloor != p.UnlockedFloor || clearedFloor >= MaxFloor {
		return false
	}
	p.UnlockedFloor = clearedFloor + 1
	return true
}
