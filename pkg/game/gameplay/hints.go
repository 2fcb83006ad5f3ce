package gameplay

import (
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/state"
)

// hintRule is a hint that applies in some situations
type hintRule struct {
	Applies func(g *state.Game) bool
	Text    string
}

// hintRules are checked in order; the first match is shown
var hintRules = []hintRule{
	{
		Applies: func(g *state.Game) bool {
			return !g.CanSee() && g.Inventory.Has(items.ItemLantern) && !g.Flags.Is(entities.FlagLanternLit)
		},
		Text: "It is dark. Try ACTION{use lantern}.",
	},
	{
		Applies: func(g *state.Game) bool {
			return g.Position.Current == entities.RoomWizard && !g.Flags.Is(entities.FlagWizardFreed) && g.Inventory.Has(items.ItemChisel)
		},
		Text: "That crystal looks brittle. Your ITEM{chisel} might crack it.",
	},
	{
		Applies: func(g *state.Game) bool {
			return g.Position.Current == entities.RoomTunnel && !g.Flags.Is(entities.FlagTunnelCleared) && g.Inventory.Has(items.ItemPickaxe)
		},
		Text: "The rubble could be broken with a ITEM{pickaxe}.",
	},
	{
		Applies: func(g *state.Game) bool {
			return g.Flags.Is(entities.FlagSandCreatureActive) && g.Inventory.Has(items.ItemWater) && g.Cave.IsAdjacent(g.Position.Current, entities.RoomSandPit)
		},
		Text: "Sand hates water. Try ACTION{use water} from here.",
	},
	{
		Applies: func(g *state.Game) bool {
			return g.Inventory.Has(items.ItemWizardMap) && !g.HasMap
		},
		Text: "The wizard gave you a map. ACTION{use} it, then type ACTION{map}.",
	},
	{
		Applies: func(g *state.Game) bool {
			return g.Inventory.Has(items.ItemRope) && !g.Inventory.IsEquipped(items.ItemRope)
		},
		Text: "Tie on your ITEM{rope} with ACTION{use rope}. It could save you from a fall.",
	},
}

// InitHints fills the general hints shown when no situation applies
func InitHints(g *state.Game) {
	g.Hints = nil
	g.AddHint("Type a room number to walk there. ACTION{back} returns the way you came.")
	g.AddHint("HAZARD{You feel a draft.} means a pit is in a neighbouring room.")
	g.AddHint("HAZARD{You hear bats.} means bats nearby. They will carry you off.")
	g.AddHint("HAZARD{You smell a Wumpus.} means it is one room away. ACTION{shoot} into that room.")
	g.AddHint("Arrows fly through up to five rooms: ACTION{shoot 3 4 5}.")
	g.AddHint("A trapped wizard is said to live somewhere in the cave.")
}

// Hint returns the most useful hint for the current situation
func Hint(g *state.Game) string {
	for _, rule := range hintRules {
		if rule.Applies(g) {
			return rule.Text
		}
	}
	if len(g.Hints) == 0 {
		return "You are on your own, hunter."
	}
	return g.Hints[g.Rand.Intn(len(g.Hints))]
}

// ShowHint logs a hint
func ShowHint(g *state.Game) {
	logMessage(g, "%s", Hint(g))
}
