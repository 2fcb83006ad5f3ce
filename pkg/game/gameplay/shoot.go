package gameplay

import (
	"strconv"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/events"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/state"
)

// MaxArrowRange is the number of rooms a crooked arrow can fly through
const MaxArrowRange = 5

// ParsePath reads up to MaxArrowRange room numbers
func ParsePath(args []string) ([]int, bool) {
	if len(args) == 0 || len(args) > MaxArrowRange {
		return nil, false
	}
	path := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, false
		}
		path = append(path, n)
	}
	return path, true
}

// Shoot fires an arrow along the typed path
func (s *Session) Shoot(args []string) {
	g := s.Game

	path, ok := ParsePath(args)
	if !ok {
		logMessage(g, "Shoot where? Type ACTION{shoot} and up to %d room numbers.", MaxArrowRange)
		return
	}
	if g.Inventory.Quantity(items.ItemArrows) == 0 {
		logMessage(g, "You have no arrows.")
		return
	}

	g.Inventory.Consume(items.ItemArrows, 1)
	flight := FlyArrow(g, path)
	s.log().Info("arrow shot", "path", path, "flight", flight, "wumpus", g.WumpusRoom)

	switch {
	case g.Status == state.Won:
		logMessage(g, "Aha! You got the HAZARD{Wumpus}! Its death cry echoes through the cave.")
	case g.Status == state.Dead:
		logMessage(g, "Ouch! The arrow curves back and hits you.")
	default:
		logMessage(g, "Your arrow clatters into the dark. Missed!")
		s.wakeWumpus()
		if !g.IsOver() && g.Inventory.Quantity(items.ItemArrows) == 0 {
			logMessage(g, "Your quiver is empty.")
			g.Kill(entities.DeathOutOfArrows)
		}
	}

	s.endTurn()
}

// FlyArrow moves an arrow from the player's room along path and applies the
// outcome. A room that is not adjacent to the arrow's position sends it down a
// random tunnel instead. Returns the rooms the arrow passed through.
func FlyArrow(g *state.Game, path []int) []int {
	at := g.Position.Current
	prev := 0
	var flight []int

	for _, want := range path {
		next := want
		// An arrow cannot double straight back
		if !g.Cave.IsAdjacent(at, want) || want == prev {
			exits := forwardExits(g.Cave.Neighbors(at), prev)
			if len(exits) == 0 {
				break
			}
			next = exits[g.Rand.Intn(len(exits))]
		}
		prev, at = at, next
		flight = append(flight, at)

		if g.HasHazard(at, entities.HazardWumpus) {
			g.Win()
			return flight
		}
		if at == g.Position.Current {
			g.Kill(entities.DeathOwnArrow)
			return flight
		}
	}
	return flight
}

// forwardExits drops prev from exits unless it is the only way on
func forwardExits(exits []int, prev int) []int {
	if len(exits) < 2 {
		return exits
	}
	out := exits[:0]
	for _, e := range exits {
		if e != prev {
			out = append(out, e)
		}
	}
	return out
}

// wakeWumpus lets the Wumpus react to a missed shot
func (s *Session) wakeWumpus() {
	g := s.Game
	g.Flags.Set(entities.FlagWumpusAwake, true)

	if !events.MoveWumpus(g) {
		return
	}
	if g.WumpusRoom == g.Position.Current {
		logMessage(g, "HAZARD{The noise wakes the Wumpus. It charges into your room!}")
		g.Kill(entities.DeathWumpus)
	}
}
