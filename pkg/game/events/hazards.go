package events

import (
	"context"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

var wumpusEvent = Event{
	Name: "wumpus",
	Applies: func(g *state.Game, room int) bool {
		return g.HasHazard(room, entities.HazardWumpus)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		logMessage(g, "HAZARD{%s}", entities.HazardTypes[entities.HazardWumpus].EnterMessage)
		g.Flags.Set(entities.FlagWumpusAwake, true)

		if !MoveWumpus(g) {
			g.Kill(entities.DeathWumpus)
			return Step{Stop: true}
		}
		logMessage(g, "The Wumpus snorts and lumbers off into the darkness.")
		return Step{}
	},
}

// MoveWumpus gives the startled Wumpus a 3 in 4 chance to move to an adjacent room.
// Returns false if it stays put.
func MoveWumpus(g *state.Game) bool {
	if g.Rand.Intn(4) == 3 {
		return false
	}
	exits := g.Cave.Neighbors(g.WumpusRoom)
	if len(exits) == 0 {
		return false
	}
	g.WumpusRoom = exits[g.Rand.Intn(len(exits))]
	return true
}

var pitEvent = Event{
	Name: "pit",
	Applies: func(g *state.Game, room int) bool {
		return g.HasHazard(room, entities.HazardPit)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		logMessage(g, "HAZARD{%s}", entities.HazardTypes[entities.HazardPit].EnterMessage)

		if g.Inventory.IsEquipped("rope") {
			g.Inventory.Remove("rope")
			logMessage(g, "Your ITEM{rope} snags on a ledge and holds! You climb back out, but the rope is lost.")
			back := retreatRoom(g)
			if back == 0 {
				return Step{Stop: true}
			}
			return Step{MoveTo: back}
		}

		g.Kill(entities.DeathPit)
		return Step{Stop: true}
	},
}

var batsEvent = Event{
	Name: "bats",
	Applies: func(g *state.Game, room int) bool {
		return g.HasHazard(room, entities.HazardBats)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		logMessage(g, "HAZARD{%s}", entities.HazardTypes[entities.HazardBats].EnterMessage)

		var targets []int
		for _, id := range g.Cave.IDs() {
			if id == room || len(g.Cave.Neighbors(id)) == 0 ||
				g.HasHazard(id, entities.HazardBats) || g.HasHazard(id, entities.HazardWumpus) {
				continue
			}
			targets = append(targets, id)
		}
		if len(targets) == 0 {
			return Step{Stop: true}
		}
		target := targets[g.Rand.Intn(len(targets))]
		logMessage(g, "The bats drop you in ROOM{room %d}.", target)
		return Step{MoveTo: target}
	},
}
