package events

import (
	"context"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

var sandEvent = Event{
	Name: "sand",
	Applies: func(g *state.Game, room int) bool {
		if g.Flags.Is(entities.FlagSandCreatureDefeated) {
			return false
		}
		return room == entities.RoomSandPit || g.HasHazard(room, entities.HazardSand)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		if g.Flags.Is(entities.FlagSandCreatureActive) {
			logMessage(g, "HAZARD{The sand creature was waiting for you.}")
			g.Kill(entities.DeathSand)
			return Step{Stop: true}
		}

		g.Flags.Set(entities.FlagSandCreatureActive, true)
		logMessage(g, "HAZARD{%s}", entities.HazardTypes[entities.HazardSand].EnterMessage)
		logMessage(g, "A creature of living sand rises and hurls you back the way you came!")

		back := retreatRoom(g)
		if back == 0 {
			return Step{Stop: true}
		}
		return Step{MoveTo: back}
	},
}

var heartEvent = Event{
	Name: "heart",
	Applies: func(g *state.Game, room int) bool {
		return room == entities.RoomSandPit &&
			g.Flags.Is(entities.FlagSandCreatureDefeated) &&
			!g.Flags.Is(entities.FlagHeartFound)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		g.Flags.Set(entities.FlagHeartFound, true)
		grantTreasure(g, "heart", "Something glints in the drying mud. You pull out the TREASURE{%s}!")
		return Step{}
	},
}

var wizardEvent = Event{
	Name: "wizard",
	Applies: func(g *state.Game, room int) bool {
		return room == entities.RoomWizard
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		freed := g.Flags.Is(entities.FlagWizardFreed)
		switch {
		case freed && g.CanSee():
			logMessage(g, "The wizard nods at you over his teacup.")
		case freed:
			logMessage(g, "Somewhere in the dark, a teacup clinks.")
		case g.CanSee():
			logMessage(g, "A muffled voice pleads from inside the crystal: \"Free me!\"")
		default:
			logMessage(g, "A muffled voice pleads from somewhere in the dark: \"Free me!\"")
		}
		return Step{}
	},
}

var tunnelEvent = Event{
	Name: "tunnel",
	Applies: func(g *state.Game, room int) bool {
		return room == entities.RoomTunnel && !g.Flags.Is(entities.FlagTunnelCleared)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		logMessage(g, "Rubble blocks a tunnel to the east. You'd need something to break it.")
		return Step{}
	},
}

var vaultEvent = Event{
	Name: "vault",
	Applies: func(g *state.Game, room int) bool {
		return room == entities.RoomVault && !g.Flags.Is(entities.FlagCrownFound)
	},
	Run: func(ctx context.Context, g *state.Game, room int) Step {
		g.Flags.Set(entities.FlagCrownFound, true)
		grantTreasure(g, "crown", "On a pedestal at the back of the vault rests the TREASURE{%s}. You take it.")
		return Step{}
	},
}

func grantTreasure(g *state.Game, id, msg string) {
	item := g.Grant(id, 1)
	g.AddTreasure(id)
	g.ShowOverlay(entities.OverlayTreasure)
	logMessage(g, msg, item.Name)
}
