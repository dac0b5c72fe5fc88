package cardgen

import (
	"github.com/bwmarrin/snowflake"

	"github.com/ogrande/tower-cards/internal/catalog"
	"github.com/ogrande/tower-cards/internal/game"
)

// Factory mints owned card instances from catalog templates. Instance IDs
// are snowflakes: unique across the process and ordered by creation time to
// millisecond granularity, with a node+sequence suffix breaking same-tick
// ties.
type Factory struct {
	node *snowflake.Node
}

// NewFactory creates a factory minting IDs for the given snowflake node
// number (0..1023).
func NewFactory(nodeID int64) (*Factory, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Factory{node: node}, nil
}

// Create stamps a level-1 instance of the template at the rolled rarity.
// Template stats, ability and name are copied so the instance is immune to
// later catalog changes; the max level is frozen from the rarity table.
func (f *Factory) Create(tpl game.CharacterTemplate, rarity game.Rarity) game.CardInstance {
	return game.CardInstance{
		ID:         f.node.Generate().Int64(),
		TemplateID: tpl.ID,
		Name:       tpl.Name,
		Rarity:     rarity,
		Level:      1,
		Experience: 0,
		MaxLevel:   catalog.MaxLevel(rarity),
		Base:       tpl.Base,
		Ability:    tpl.Ability,
	}
}
