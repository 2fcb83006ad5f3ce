package gameplay

import (
	"strconv"

	"wumpus/pkg/game/events"
	"wumpus/pkg/game/locale"
)

// Move walks through an exit to the room typed by the player
func (s *Session) Move(arg string) {
	g := s.Game

	room, err := strconv.Atoi(arg)
	if err != nil {
		logMessage(g, "Move where? Type ACTION{move} and a room number.")
		return
	}
	if room == g.Position.Current {
		logMessage(g, "You are already in ROOM{room %d}.", room)
		return
	}
	if !g.Cave.IsAdjacent(g.Position.Current, room) {
		logMessage(g, "%s", locale.T("NO_EXIT"))
		return
	}

	s.enter(room)
}

// Back returns to the room the player came from, if there is still an exit to it
func (s *Session) Back() {
	g := s.Game

	prev, ok := g.Position.Previous()
	if !ok || !g.Cave.IsAdjacent(g.Position.Current, prev) {
		logMessage(g, "%s", locale.T("NO_PREVIOUS_ROOM"))
		return
	}

	s.enter(prev)
}

// enter runs the room events for the new room and ends the turn
func (s *Session) enter(room int) {
	g := s.Game
	from := g.Position.Current

	events.Enter(s.ctx, g, room)
	s.log().Debug("moved", "from", from, "to", room, "now", g.Position.Current)

	s.endTurn()
}
