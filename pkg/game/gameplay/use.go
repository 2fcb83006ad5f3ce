package gameplay

import (
	"wumpus/pkg/game/events"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/locale"
)

// UseItem dispatches the item the player named to its handler
func (s *Session) UseItem(query string) {
	g := s.Game

	id, ok := items.Resolve(g, query)
	if !ok {
		logMessage(g, "%s", locale.T("ITEM_NOT_CARRIED"))
		return
	}

	res := s.Items.Dispatch(s.ctx, g, id)
	if res.Message != "" {
		logMessage(g, "%s", res.Message)
	}
	if res.MoveTo != 0 && !g.IsOver() {
		events.Enter(s.ctx, g, res.MoveTo)
	}

	s.endTurn()
}

// Drop leaves an item on the floor. Items with charges, stacks and
// treasures stay in the pack since picking them up again would reset them.
func (s *Session) Drop(query string) {
	g := s.Game

	id, ok := items.Resolve(g, query)
	if !ok {
		logMessage(g, "%s", locale.T("ITEM_NOT_CARRIED"))
		return
	}
	item := g.Inventory.Get(id)

	switch {
	case item.Treasure:
		logMessage(g, "You are not leaving the TREASURE{%s} behind.", item.Name)
		return
	case item.Stackable, item.Uses >= 0:
		logMessage(g, "You had better hold on to the ITEM{%s}.", item.Name)
		return
	}

	g.Inventory.Remove(id)
	g.CurrentRoom().ItemsOnFloor.Put(id)
	logMessage(g, "You drop the ITEM{%s}.", item.Name)

	s.endTurn()
}
