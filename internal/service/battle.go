package service

import (
	"math/rand"

	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/engine"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/logging"
	"github.com/ogrande/tower-cards/internal/progression"
	"github.com/ogrande/tower-cards/internal/tower"
)

// BattleReport summarizes a resolved battle and every state change it
// caused.
type BattleReport struct {
	Result engine.Result       `json:"result"`
	Enemy  game.EnemyEncounter `json:"enemy"`
	Floor  int                 `json:"floor"`

	StaminaSpent   int `json:"stamina_spent"`
	StaminaPenalty int `json:"stamina_penalty"`

	GoldGained       int `json:"gold_gained"`
	UserExpGained    int `json:"user_exp_gained"`
	CardExpGained    int `json:"card_exp_gained"`
	UserLevelsGained int `json:"user_levels_gained"`
	CardLevelsGained int `json:"card_levels_gained"`

	NewFloorUnlocked bool `json:"new_floor_unlocked"`
	UnlockedFloor    int  `json:"unlocked_floor"`
}

// Battle runs one battle on the player's current floor with the selected
// card. The stamina cost is charged and persisted before resolution starts;
// a crash mid-battle leaves it spent with no rollback (accepted behavior,
// not masked). obs may be nil; the final state is identical either way.
func (s *Service) Battle(playerID string, obs engine.Observer) (*BattleReport, error) {
	var card game.CardInstance
	var floor int

	// Phase one: validate preconditions and charge stamina. The persist
	// inside Update makes the charge durable before any combat math runs.
	err := s.store.Update(playerID, func(p *game.Player) error {
		if p.SelectedCardID == 0 {
			return ErrNoCardSelected
		}
		selected := p.Card(p.SelectedCardID)
		if selected == nil {
			return ErrUnknownCard
		}
		if p.CurrentFloor > p.UnlockedFloor {
			return ErrFloorLocked
		}
		if p.Stamina < progression.BattleStaminaCost {
			return ErrInsufficientStamina
		}
		p.Stamina -= progression.BattleStaminaCost
		card = *selected
		floor = p.CurrentFloor
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Resolution is pure: no I/O until the authoritative outcome exists.
	enemy := tower.EnemyForFloor(floor)
	var result engine.Result
	s.roll(func(rng *rand.Rand) {
		result = engine.Resolve(&card, enemy, rng, obs)
	})

	report := &BattleReport{
		Result:       result,
		Enemy:        enemy,
		Floor:        floor,
		StaminaSpent: progression.BattleStaminaCost,
	}

	// Phase two: apply rewards or penalty from the final outcome.
	err = s.store.Update(playerID, func(p *game.Player) error {
		switch result.Outcome {
		case game.OutcomeVictory:
			report.GoldGained = progression.GoldReward(floor)
			report.UserExpGained = progression.UserExpReward(floor)
			report.CardExpGained = progression.CardExpReward(floor)
			p.Gold += report.GoldGained
			report.UserLevelsGained = progression.ApplyUserExperience(p, report.UserExpGained)
			// The card may have been sacrificed by a concurrent enhance while
			// the battle resolved; skip its experience in that case.
			if c := p.Card(card.ID); c != nil {
				report.CardLevelsGained = progression.ApplyCardExperience(c, report.CardExpGained)
			}
			report.NewFloorUnlocked = tower.UnlockNext(p, floor)
		case game.OutcomeDefeat:
			report.StaminaPenalty = progression.DefeatStaminaPenalty
			progression.ApplyDefeatPenalty(p)
		}
		// Draw: no penalty, no reward.
		report.UnlockedFloor = p.UnlockedFloor
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("battle resolved", logging.Fields{
		constants.LogFieldPlayerID: playerID,
		constants.LogFieldCardID:   card.ID,
		constants.LogFieldFloor:    floor,
		constants.LogFieldOutcome:  result.Outcome,
		"rounds":                   result.Rounds,
	})
	return report, nil
}
