package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogrande/tower-cards/internal/catalog"
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/inventory"
)

func TestDrop_MintsOwnedCard(t *testing.T) {
	svc := newTestService(t, nil)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	card, err := svc.Drop("alice")
	require.NoError(t, err)

	assert.NotZero(t, card.ID)
	assert.Equal(t, 1, card.Level)
	assert.NotNil(t, catalog.TemplateByID(card.TemplateID), "dropped card must reference a catalog template")
	assert.Equal(t, catalog.MaxLevel(card.Rarity), card.MaxLevel)

	svc.store.View("alice", func(p *game.Player) {
		require.Len(t, p.Inventory, 1)
		assert.Equal(t, card.ID, p.Inventory[0].ID)
	})
}

func TestDrop_Cooldown(t *testing.T) {
	svc := newTestService(t, nil)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Drop("alice")
	require.NoError(t, err)

	_, err = svc.Drop("alice")
	var cooldown *CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.Equal(t, "drop", cooldown.Command)

	svc.now = func() time.Time { return base.Add(constants.DropCooldown) }
	_, err = svc.Drop("alice")
	require.NoError(t, err)

	svc.store.View("alice", func(p *game.Player) {
		assert.Len(t, p.Inventory, 2)
	})
}

func TestSelectCard_ByRankedIndex(t *testing.T) {
	svc := newTestService(t, nil)
	require.NoError(t, svc.store.Update("alice", func(p *game.Player) error {
		p.Inventory = append(p.Inventory,
			game.CardInstance{ID: 1, Name: "Old Common", Rarity: game.RarityCommon, Level: 1, MaxLevel: 20},
			game.CardInstance{ID: 2, Name: "Shiny", Rarity: game.RarityLegendary, Level: 1, MaxLevel: 50},
		)
		return nil
	}))

	// Ranked position 1 is the legendary, not the first acquired card.
	card, err := svc.SelectCard("alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), card.ID)

	_, err = svc.SelectCard("alice", 3)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = svc.SelectCard("alice", 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestEnhance_ByIndexAndByID(t *testing.T) {
	svc := newTestService(t, nil)
	require.NoError(t, svc.store.Update("alice", func(p *game.Player) error {
		p.Inventory = append(p.Inventory,
			game.CardInstance{ID: 1, Name: "Fodder", Rarity: game.RarityCommon, Level: 1, MaxLevel: 20},
			game.CardInstance{ID: 2, Name: "Fodder", Rarity: game.RarityCommon, Level: 1, MaxLevel: 20},
			game.CardInstance{ID: 3, Name: "Keeper", Rarity: game.RarityEpic, Level: 1, MaxLevel: 40},
		)
		return nil
	}))

	commons := inventory.Filter{Rarity: game.RarityCommon}

	// Target by ID, default count of one.
	result, err := svc.Enhance("alice", TargetRef{ID: 3}, commons, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Consumed)
	assert.Equal(t, 50, result.ExperienceAdd)

	// Target by ranked index: position 1 is the epic keeper.
	result, err = svc.Enhance("alice", TargetRef{Index: 1}, commons, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, result.ExperienceAdd)
	assert.Equal(t, 2, result.FinalLevel) // 100 total exp crosses level 1

	// Not enough fodder left.
	_, err = svc.Enhance("alice", TargetRef{ID: 3}, commons, 1)
	assert.ErrorIs(t, err, ErrNotEnoughMatches)

	_, err = svc.Enhance("alice", TargetRef{ID: 999}, commons, 1)
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestFloorCommands(t *testing.T) {
	svc := newTestService(t, nil)

	info := svc.Floor("alice")
	assert.Equal(t, 1, info.CurrentFloor)
	assert.Equal(t, 1, info.UnlockedFloor)
	assert.NotEmpty(t, info.Enemy.Name)

	_, err := svc.FloorNext("alice")
	assert.ErrorIs(t, err, ErrFloorOutOfRange)

	require.NoError(t, svc.store.Update("alice", func(p *game.Player) error {
		p.UnlockedFloor = 3
		return nil
	}))

	next, err := svc.FloorNext("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, next.CurrentFloor)

	set, err := svc.FloorSet("alice", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, set.CurrentFloor)

	_, err = svc.FloorSet("alice", 4)
	assert.ErrorIs(t, err, ErrFloorOutOfRange)
}
