package setup

import (
	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// deadlyRooms returns the rooms a careful player never needs to enter: pits and the sand creature's lair
func deadlyRooms(g *state.Game) world.RoomSet {
	deadly := mapset.New[int]()
	for room := range g.Hazards {
		if g.HasHazard(room, entities.HazardPit) || g.HasHazard(room, entities.HazardSand) {
			deadly.Put(room)
		}
	}
	return deadly
}

// RequiredRooms lists the rooms the player must be able to reach: every room
// holding an item plus the rooms with puzzles
func RequiredRooms(g *state.Game) []int {
	var out []int
	g.Cave.ForEachRoom(func(r *world.Room) {
		if r.ItemsOnFloor.Size() > 0 || r.ID == entities.RoomWizard || r.ID == entities.RoomTunnel {
			out = append(out, r.ID)
		}
	})
	return out
}

// Solvable reports whether every required room can be reached from the start
// without walking into a pit or the sand pit
func Solvable(g *state.Game) bool {
	start := g.Cave.StartRoom()
	reachable := g.Cave.Reachable(start, deadlyRooms(g))

	for _, room := range RequiredRooms(g) {
		if !reachable.Has(room) {
			return false
		}
	}
	if g.WumpusRoom == 0 {
		return false
	}
	return reachable.Has(g.WumpusRoom) || hasNeighbourIn(g, g.WumpusRoom, reachable)
}

// hasNeighbourIn returns true if the Wumpus can be shot at from a reachable room
func hasNeighbourIn(g *state.Game, room int, reachable world.RoomSet) bool {
	for _, n := range g.Cave.Neighbors(room) {
		if reachable.Has(n) {
			return true
		}
	}
	return false
}
