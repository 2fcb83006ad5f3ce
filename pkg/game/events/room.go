package events

import (
	"context"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/state"
)

// DarkTurnsToStumble is how many dark entries next to a pit the player survives
const DarkTurnsToStumble = 3

var darknessEvent = Event{
	Name: "darkness",
	Applies: func(g *state.Game, room int) bool {
		return true
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		if g.CanSee() {
			g.DarkTurns = 0
			return Step{}
		}

		logMessage(g, "%s", locale.T("TOO_DARK"))

		if nearPit(g, room) {
			g.DarkTurns++
			if g.DarkTurns >= DarkTurnsToStumble {
				g.Kill(entities.DeathDarkness)
			}
		} else {
			g.DarkTurns = 0
		}
		// Nothing is picked up in the dark
		return Step{Stop: true}
	},
}

func nearPit(g *state.Game, room int) bool {
	for _, n := range g.Cave.Neighbors(room) {
		if g.HasHazard(n, entities.HazardPit) {
			return true
		}
	}
	return false
}

var pickupEvent = Event{
	Name: "pickup",
	Applies: func(g *state.Game, room int) bool {
		r := g.Cave.Room(room)
		return r != nil && r.ItemsOnFloor.Size() > 0
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		PickUpAll(g, g.Cave.Room(room))
		return Step{}
	},
}

// PickUpAll moves every item on the floor of r into the inventory
func PickUpAll(g *state.Game, r *world.Room) {
	for _, id := range world.SortedItems(r.ItemsOnFloor) {
		r.ItemsOnFloor.Remove(id)
		item := g.Grant(id, 0)
		if item.Treasure {
			g.AddTreasure(id)
			g.ShowOverlay(entities.OverlayTreasure)
			logMessage(g, "You found a treasure: TREASURE{%s}!", item.Name)
			continue
		}
		logMessage(g, "You pick up the ITEM{%s}.", item.Name)
	}
}
