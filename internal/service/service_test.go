package service

import (
	"encoding/json"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ogrande/tower-cards/internal/cardgen"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/storage"
)

// snapshotBackend records every snapshot the store writes, in order. Used
// to assert what was durable at each point of a command.
type snapshotBackend struct {
	snapshots [][]byte
}

func (b *snapshotBackend) Load() ([]byte, error) { return nil, nil }

func (b *snapshotBackend) Save(snapshot []byte) error {
	cp := make([]byte, len(snapshot))
	copy(cp, snapshot)
	b.snapshots = append(b.snapshots, cp)
	return nil
}

func (b *snapshotBackend) decode(t *testing.T, index int) map[string]*game.Player {
	t.Helper()
	require.Greater(t, len(b.snapshots), index)
	var players map[string]*game.Player
	require.NoError(t, json.Unmarshal(b.snapshots[index], &players))
	return players
}

func newTestService(t *testing.T, backend storage.Backend) *Service {
	t.Helper()
	if backend == nil {
		fb, err := storage.NewFileBackend(filepath.Join(t.TempDir(), "tower.json"))
		require.NoError(t, err)
		backend = fb
	}
	factory, err := cardgen.NewFactory(1)
	require.NoError(t, err)

	svc := NewService(storage.Open(backend), factory)
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

// seedCard injects a card with chosen stats and selects it.
func seedCard(t *testing.T, svc *Service, playerID string, stats game.Stats, ability game.AbilityKind) int64 {
	t.Helper()
	card := game.CardInstance{
		ID:       100,
		Name:     "Seeded",
		Rarity:   game.RarityCommon,
		Level:    1,
		MaxLevel: 20,
		Base:     stats,
		Ability:  ability,
	}
	require.NoError(t, svc.store.Update(playerID, func(p *game.Player) error {
		p.Inventory = append(p.Inventory, card)
		p.SelectedCardID = card.ID
		return nil
	}))
	return card.ID
}
