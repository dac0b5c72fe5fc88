package service

import (
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/inventory"
	"github.com/ogrande/tower-cards/internal/logging"
)

// TargetRef names a card either by instance ID or by 1-based position in
// the ranked order. ID takes precedence when both are set.
type TargetRef struct {
	ID    int64 `json:"id"`
	Index int   `json:"index"`
}

func resolveTarget(p *game.Player, ref TargetRef) (int64, error) {
	if ref.ID != 0 {
		if p.Card(ref.ID) == nil {
			return 0, ErrUnknownCard
		}
		return ref.ID, nil
	}
	id, ok := inventory.ByRankedIndex(p, ref.Index)
	if !ok {
		return 0, ErrInvalidIndex
	}
	return id, nil
}

// Enhance sacrifices count cards matching the filter to grant their
// combined experience to the target card. The target never matches itself
// even when it satisfies the filter; nothing mutates unless enough
// candidates exist.
func (s *Service) Enhance(playerID string, target TargetRef, filter inventory.Filter, count int) (inventory.EnhanceResult, error) {
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return inventory.EnhanceResult{}, ErrInvalidCount
	}

	var result inventory.EnhanceResult
	err := s.store.Update(playerID, func(p *game.Player) error {
		targetID, err := resolveTarget(p, target)
		if err != nil {
			return err
		}
		res, ok := inventory.Enhance(p, targetID, filter, count)
		if !ok {
			return ErrNotEnoughMatches
		}
		result = res
		return nil
	})
	if err != nil {
		return inventory.EnhanceResult{}, err
	}
	logging.Info("card enhanced", logging.Fields{
		constants.LogFieldPlayerID: playerID,
		"consumed":                 result.Consumed,
		"experience":               result.ExperienceAdd,
		"final_level":              result.FinalLevel,
	})
	return result, nil
}
