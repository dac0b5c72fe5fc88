package service

import (
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/inventory"
)

// SelectCard binds the player's battle selection to the card at the given
// 1-based position in the ranked order.
func (s *Service) SelectCard(playerID string, index int) (game.CardInstance, error) {
	var selected game.CardInstance
	err := s.store.Update(playerID, func(p *game.Player) error {
		id, ok := inventory.ByRankedIndex(p, index)
		if !ok {
			return ErrInvalidIndex
		}
		p.SelectedCardID = id
		selected = *p.Card(id)
		return nil
	})
	if err != nil {
		return game.CardInstance{}, err
	}
	return selected, nil
}

// RankedCards returns the inventory in the canonical player-facing order.
func (s *Service) RankedCards(playerID string) []game.CardInstance {
	var cards []game.CardInstance
	s.store.View(playerID, func(p *game.Player) {
		cards = inventory.Ranked(p)
	})
	return cards
}
