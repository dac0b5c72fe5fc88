package service

import (
	"fmt"

	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/tower"
)

// FloorInfo is the floor query payload: where the player stands, how high
// they may go, and who guards the current floor.
type FloorInfo struct {
	CurrentFloor  int                 `json:"current_floor"`
	UnlockedFloor int                 `json:"unlocked_floor"`
	MaxFloor      int                 `json:"max_floor"`
	Enemy         game.EnemyEncounter `json:"enemy"`
}

// Floor reports the player's floor state.
func (s *Service) Floor(playerID string) FloorInfo {
	var info FloorInfo
	s.store.View(playerID, func(p *game.Player) {
		info = FloorInfo{
			CurrentFloor:  p.CurrentFloor,
			UnlockedFloor: p.UnlockedFloor,
			MaxFloor:      tower.MaxFloor,
			Enemy:         tower.EnemyForFloor(p.CurrentFloor),
		}
	})
	return info
}

// FloorNext moves up one floor; the next floor must already be unlocked.
func (s *Service) FloorNext(playerID string) (FloorInfo, error) {
	return s.changeFloor(playerID, tower.Advance)
}

// FloorSet jumps to any floor in [1, unlocked].
func (s *Service) FloorSet(playerID string, floor int) (FloorInfo, error) {
	return s.changeFloor(playerID, func(p *game.Player) error {
		return tower.Set(p, floor)
	})
}

func (s *Service) changeFloor(playerID string, move func(*game.Player) error) (FloorInfo, error) {
	var info FloorInfo
	err := s.store.Update(playerID, func(p *game.Player) error {
		if err := move(p); err != nil {
			return fmt.Errorf("%w: %v", ErrFloorOutOfRange, err)
		}
		info = FloorInfo{
			CurrentFloor:  p.CurrentFloor,
			UnlockedFloor: p.UnlockedFloor,
			MaxFloor:      tower.MaxFloor,
			Enemy:         tower.EnemyForFloor(p.CurrentFloor),
		}
		return nil
	})
	if err != nil {
		return FloorInfo{}, err
	}
	return info, nil
}
