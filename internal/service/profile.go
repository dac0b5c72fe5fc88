package service

import (
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/progression"
)

// Profile is the read-only player summary shown by the stats command.
type Profile struct {
	PlayerID       string `json:"player_id"`
	Level          int    `json:"level"`
	Experience     int    `json:"experience"`
	NextLevelExp   int    `json:"next_level_exp"`
	Stamina        int    `json:"stamina"`
	Gold           int    `json:"gold"`
	CurrentFloor   int    `json:"current_floor"`
	UnlockedFloor  int    `json:"unlocked_floor"`
	CardCount      int    `json:"card_count"`
	SelectedCardID int64  `json:"selected_card_id"`
}

// Profile returns the player summary, creating the record on first
// reference like every other command.
func (s *Service) Profile(playerID string) Profile {
	var out Profile
	s.store.View(playerID, func(p *game.Player) {
		out = Profile{
			PlayerID:       p.PlayerID,
			Level:          p.Level,
			Experience:     p.Experience,
			NextLevelExp:   progression.Threshold(p.Level),
			Stamina:        p.Stamina,
			Gold:           p.Gold,
			CurrentFloor:   p.CurrentFloor,
			UnlockedFloor:  p.UnlockedFloor,
			CardCount:      len(p.Inventory),
			SelectedCardID: p.SelectedCardID,
		}
	})
	return out
}
