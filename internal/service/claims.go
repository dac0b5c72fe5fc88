package service

import (
	"time"

	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/progression"
)

// ClaimResult reports what a timed resource command granted.
type ClaimResult struct {
	Gold         int `json:"gold"`
	Stamina      int `json:"stamina"`
	UserExp      int `json:"user_exp"`
	LevelsGained int `json:"levels_gained"`
}

// Hourly grants the hourly stipend, gated by its own cooldown clock.
func (s *Service) Hourly(playerID string) (ClaimResult, error) {
	return s.claim(playerID, "hourly", constants.HourlyCooldown,
		func(p *game.Player) time.Time { return p.LastHourlyAt },
		func(p *game.Player, now time.Time) ClaimResult {
			p.LastHourlyAt = now
			p.Gold += constants.HourlyGold
			p.Stamina += constants.HourlyStamina
			return ClaimResult{Gold: constants.HourlyGold, Stamina: constants.HourlyStamina}
		})
}

// Farm grants a smaller stipend plus user experience on a shorter window.
func (s *Service) Farm(playerID string) (ClaimResult, error) {
	return s.claim(playerID, "farm", constants.FarmCooldown,
		func(p *game.Player) time.Time { return p.LastFarmAt },
		func(p *game.Player, now time.Time) ClaimResult {
			p.LastFarmAt = now
			p.Gold += constants.FarmGold
			gained := progression.ApplyUserExperience(p, constants.FarmUserExp)
			return ClaimResult{Gold: constants.FarmGold, UserExp: constants.FarmUserExp, LevelsGained: gained}
		})
}

func (s *Service) claim(playerID, command string, window time.Duration, last func(*game.Player) time.Time, grant func(*game.Player, time.Time) ClaimResult) (ClaimResult, error) {
	var result ClaimResult
	err := s.store.Update(playerID, func(p *game.Player) error {
		now := s.now()
		if elapsed := now.Sub(last(p)); elapsed < window {
			return &CooldownError{Command: command, Remaining: window - elapsed}
		}
		result = grant(p, now)
		return nil
	})
	if err != nil {
		return ClaimResult{}, err
	}
	return result, nil
}
