package gameplay

import (
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/state"
)

// LanternLowWarning is the fuel level at which the player is warned
const LanternLowWarning = 5

// BurnLantern uses one charge of a lit lantern and puts it out when empty
func BurnLantern(g *state.Game) {
	if !g.Flags.Is(entities.FlagLanternLit) {
		return
	}
	lantern := g.Inventory.Get(items.ItemLantern)
	if lantern == nil {
		g.Flags.Set(entities.FlagLanternLit, false)
		return
	}

	g.Inventory.UseCharge(items.ItemLantern)

	switch {
	case !lantern.HasUses():
		g.Flags.Set(entities.FlagLanternLit, false)
		lantern.Equipped = false
		logMessage(g, "Your ITEM{lantern} sputters and goes out.")
	case lantern.Uses == LanternLowWarning:
		logMessage(g, "Your ITEM{lantern} flickers. It is running low on oil.")
	}
}
