package service

import (
	"math/rand"

	"github.com/ogrande/tower-cards/internal/catalog"
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/logging"
)

// Drop rolls a rarity and a template, mints a new card instance and appends
// it to the player's inventory. Gated by the drop cooldown window.
func (s *Service) Drop(playerID string) (game.CardInstance, error) {
	var card game.CardInstance
	err := s.store.Update(playerID, func(p *game.Player) error {
		now := s.now()
		if elapsed := now.Sub(p.LastDropAt); elapsed < constants.DropCooldown {
			return &CooldownError{Command: "drop", Remaining: constants.DropCooldown - elapsed}
		}

		var rarity game.Rarity
		var tpl game.CharacterTemplate
		s.roll(func(rng *rand.Rand) {
			rarity = catalog.RollRarity(rng)
			tpl = catalog.RollTemplate(rng)
		})

		card = s.factory.Create(tpl, rarity)
		p.Inventory = append(p.Inventory, card)
		p.LastDropAt = now
		return nil
	})
	if err != nil {
		return game.CardInstance{}, err
	}
	logging.Info("card dropped", logging.Fields{
		constants.LogFieldPlayerID: playerID,
		constants.LogFieldCardID:   card.ID,
		"rarity":                   card.Rarity,
		"template":                 card.Name,
	})
	return card, nil
}
