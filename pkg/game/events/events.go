// Package events runs the handlers triggered when the player enters a room.
package events

import (
	"context"

	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
	"wumpus/pkg/logger"
)

// MaxRelocations caps how often one move can carry the player onwards
const MaxRelocations = 5

// Step is the result of one room event
type Step struct {
	Stop   bool // No further events run in this room
	MoveTo int  // Room the player is carried to, 0 to stay
}

// Event is a rule evaluated when the player enters a room
type Event struct {
	Name    string
	Applies func(g *state.Game, room int) bool
	Run     func(ctx context.Context, g *state.Game, room int) Step
}

// Events is the ordered rule table. The first event that stops or moves the player ends the entry.
var Events = []Event{
	wumpusEvent,
	pitEvent,
	batsEvent,
	sandEvent,
	heartEvent,
	wizardEvent,
	tunnelEvent,
	vaultEvent,
	darknessEvent,
	pickupEvent,
}

// Enter moves the player into room and runs its events, following any relocation
func Enter(ctx context.Context, g *state.Game, room int) {
	log := logger.FromContext(ctx)

	for hops := 0; ; hops++ {
		g.MoveTo(room)
		log.Debug("entered room", "room", room, "hop", hops)

		next := run(ctx, g, room)
		if next == 0 || g.IsOver() {
			return
		}
		if hops+1 >= MaxRelocations {
			log.Warn("relocation limit reached", "room", room, "next", next)
			return
		}
		room = next
	}
}

// run evaluates the rule table for one room and returns where the player is carried, if anywhere
func run(ctx context.Context, g *state.Game, room int) int {
	for _, ev := range Events {
		if !ev.Applies(g, room) {
			continue
		}
		step := ev.Run(ctx, g, room)
		if g.IsOver() {
			logger.FromContext(ctx).Info("game over", "event", ev.Name, "room", room, "cause", string(g.Death))
			return 0
		}
		if step.MoveTo != 0 {
			return step.MoveTo
		}
		if step.Stop {
			return 0
		}
	}
	return 0
}

func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}

// retreatRoom is where the player is thrown back to: the room they came from,
// or the cave's start room
func retreatRoom(g *state.Game) int {
	if prev, ok := g.Position.Previous(); ok && prev != g.Position.Current {
		return prev
	}
	if start := g.Cave.StartRoom(); start != g.Position.Current {
		return start
	}
	if n := g.Cave.Neighbors(g.Position.Current); len(n) > 0 {
		return n[0]
	}
	return 0
}
