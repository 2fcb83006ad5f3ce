// Package setup builds a new hunt: the cave, the starting inventory and the
// seeded placement of the Wumpus, pits and bats.
package setup

import (
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/content"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// Default hazard counts
const (
	DefaultPits = 2
	DefaultBats = 2

	maxPlacementAttempts = 100
)

// Config holds configuration for a new game
type Config struct {
	Seed int64
	Pits int
	Bats int
}

// NewGame creates a game from a content table and places its hazards
func NewGame(table *content.Table, cfg Config) (*state.Game, error) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		g, err := build(table, cfg, attempt)
		if err != nil {
			return nil, err
		}
		if Solvable(g) {
			return g, nil
		}
		slog.Debug("hazard placement not solvable, retrying", "seed", cfg.Seed, "attempt", attempt)
	}
	return nil, fmt.Errorf("no solvable hazard placement for seed %d", cfg.Seed)
}

func build(table *content.Table, cfg Config, attempt int) (*state.Game, error) {
	cave, err := content.BuildCave(table)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(cfg.Seed)
	g.Cave = cave
	g.Content = table
	// Retries draw from a different stream but stay reproducible for the seed
	for i := 0; i < attempt; i++ {
		g.Rand.Int63()
	}

	for _, s := range table.StartingInventory {
		g.Grant(s.ID, s.Quantity)
	}

	PlaceStaticHazards(g)

	avoid := SafeZone(g)
	PlaceWumpus(g, avoid)
	if g.WumpusRoom != 0 {
		avoid.Put(g.WumpusRoom)
	}

	// Pits and bats also stay out of rooms holding items
	cave.ForEachRoom(func(r *world.Room) {
		if r.ItemsOnFloor.Size() > 0 {
			avoid.Put(r.ID)
		}
	})
	placeHazards(g, avoid, entities.HazardPit, cfg.Pits)
	placeHazards(g, avoid, entities.HazardBats, cfg.Bats)

	g.MoveTo(cave.StartRoom())
	return g, nil
}

// PlaceStaticHazards places the hazards declared in the content table
func PlaceStaticHazards(g *state.Game) {
	g.Cave.ForEachRoom(func(r *world.Room) {
		for _, key := range r.Hazards {
			if h, ok := entities.ParseHazard(key); ok {
				g.PlaceHazard(r.ID, h)
			}
		}
	})
}

// SafeZone returns the rooms no random hazard may occupy: the start room,
// its neighbours, special rooms and rooms that are closed off
func SafeZone(g *state.Game) world.RoomSet {
	avoid := mapset.New[int]()
	start := g.Cave.StartRoom()
	avoid.Put(start)
	for _, n := range g.Cave.Neighbors(start) {
		avoid.Put(n)
	}
	g.Cave.ForEachRoom(func(r *world.Room) {
		if entities.IsSpecialRoom(r.ID) || len(r.Exits) == 0 || len(g.HazardsIn(r.ID)) > 0 {
			avoid.Put(r.ID)
		}
	})
	return avoid
}

// PlaceWumpus puts the Wumpus in a random room outside the safe zone
func PlaceWumpus(g *state.Game, avoid world.RoomSet) {
	candidates := candidateRooms(g, avoid)
	if len(candidates) == 0 {
		g.WumpusRoom = 0
		return
	}
	g.WumpusRoom = candidates[g.Rand.Intn(len(candidates))]
}

// placeHazards puts n hazards of type h in distinct random rooms outside avoid,
// adding each chosen room to avoid
func placeHazards(g *state.Game, avoid world.RoomSet, h entities.HazardType, n int) {
	for i := 0; i < n; i++ {
		candidates := candidateRooms(g, avoid)
		if len(candidates) == 0 {
			slog.Warn("no room left for hazard", "hazard", h.String(), "placed", i, "wanted", n)
			return
		}
		room := candidates[g.Rand.Intn(len(candidates))]
		g.PlaceHazard(room, h)
		avoid.Put(room)
	}
}

func candidateRooms(g *state.Game, avoid world.RoomSet) []int {
	var out []int
	for _, id := range g.Cave.IDs() {
		if !avoid.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
