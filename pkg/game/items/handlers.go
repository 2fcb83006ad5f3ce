package items

import (
	"context"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// Item ids known to the handlers
const (
	ItemArrows    = "arrows"
	ItemLantern   = "lantern"
	ItemRope      = "rope"
	ItemIncense   = "incense"
	ItemChisel    = "chisel"
	ItemWater     = "water"
	ItemPickaxe   = "pickaxe"
	ItemMushroom  = "mushroom"
	ItemScroll    = "scroll"
	ItemWizardMap = "wizard_map"
	ItemIdol      = "idol"
	ItemHeart     = "heart"
	ItemCrown     = "crown"
)

// ArrowsHandler reminds the player how to shoot
type ArrowsHandler struct{}

func (h *ArrowsHandler) CanHandle(itemID string) bool {
	return itemID == ItemArrows
}

func (h *ArrowsHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	return Result{Message: "Arrows are for shooting. Try ACTION{shoot} followed by up to five room numbers."}
}

// LanternHandler lights or shades the lantern
type LanternHandler struct{}

func (h *LanternHandler) CanHandle(itemID string) bool {
	return itemID == ItemLantern
}

func (h *LanternHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	if g.Flags.Is(entities.FlagLanternLit) {
		g.Flags.Set(entities.FlagLanternLit, false)
		item.Equipped = false
		return Result{Message: "You shade the ITEM{lantern}. Darkness closes in."}
	}
	if !item.HasUses() {
		return Result{Message: "The ITEM{lantern} is out of oil."}
	}
	g.Flags.Set(entities.FlagLanternLit, true)
	item.Equipped = true
	return Result{Message: "The ITEM{lantern} flickers to life."}
}

// RopeHandler ties the rope on or coils it away
type RopeHandler struct{}

func (h *RopeHandler) CanHandle(itemID string) bool {
	return itemID == ItemRope
}

func (h *RopeHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	item.Equipped = !item.Equipped
	if item.Equipped {
		return Result{Message: "You tie the ITEM{rope} around your waist. It should catch one fall."}
	}
	return Result{Message: "You coil the ITEM{rope} over your shoulder."}
}

// IncenseHandler drives the bats out of one room: the current room when it
// holds bats, otherwise the first bat room among its exits.
type IncenseHandler struct{}

func (h *IncenseHandler) CanHandle(itemID string) bool {
	return itemID == ItemIncense
}

func (h *IncenseHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	here := g.Position.Current
	target := 0
	for _, r := range append([]int{here}, g.Cave.Neighbors(here)...) {
		if g.HasHazard(r, entities.HazardBats) {
			target = r
			break
		}
	}

	if target == 0 {
		return Result{Message: "Sweet smoke curls up and drifts away.", Consumed: true}
	}
	g.RemoveHazard(target, entities.HazardBats)
	g.Flags.Set(entities.FlagBatsCalmed, true)
	if target == here {
		return Result{Message: "The smoke fills the room. The bats shriek and flee the cave.", Consumed: true}
	}
	return Result{
		Message:  "The smoke seeps down a tunnel. Somewhere nearby, bats shriek and flee the cave.",
		Consumed: true,
	}
}

// ChiselHandler frees the wizard from his crystal
type ChiselHandler struct{}

func (h *ChiselHandler) CanHandle(itemID string) bool {
	return itemID == ItemChisel
}

func (h *ChiselHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	if g.Position.Current != entities.RoomWizard {
		return Result{Message: "You chip at the rock. Nothing happens."}
	}
	if g.Flags.Is(entities.FlagWizardFreed) {
		return Result{Message: "The wizard raises an eyebrow. There is nothing left to chip."}
	}

	g.Flags.Set(entities.FlagWizardFreed, true)
	g.Grant(ItemWizardMap, 1)
	g.Grant(ItemArrows, 2)

	return Result{
		Message:  entities.Overlays[entities.OverlayWizardFreed].Text,
		Consumed: true,
		Overlay:  entities.OverlayWizardFreed,
	}
}

// WaterHandler turns the sand creature to mud, or quenches thirst
type WaterHandler struct{}

func (h *WaterHandler) CanHandle(itemID string) bool {
	return itemID == ItemWater
}

func (h *WaterHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	if !item.HasUses() {
		return Result{Message: "The ITEM{flask} is empty."}
	}

	here := g.Position.Current
	nearPit := here == entities.RoomSandPit || g.Cave.IsAdjacent(here, entities.RoomSandPit)

	if nearPit && g.Flags.Is(entities.FlagSandCreatureActive) {
		g.Inventory.UseCharge(item.ID)
		g.Flags.Set(entities.FlagSandCreatureActive, false)
		g.Flags.Set(entities.FlagSandCreatureDefeated, true)
		g.RemoveHazard(entities.RoomSandPit, entities.HazardSand)
		return Result{
			Message: entities.Overlays[entities.OverlaySandDefeated].Text,
			Overlay: entities.OverlaySandDefeated,
		}
	}

	g.Inventory.UseCharge(item.ID)
	return Result{Message: "You take a sip of cool water. Refreshing."}
}

// PickaxeHandler clears the collapsed tunnel
type PickaxeHandler struct{}

func (h *PickaxeHandler) CanHandle(itemID string) bool {
	return itemID == ItemPickaxe
}

func (h *PickaxeHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	if g.Position.Current != entities.RoomTunnel {
		return Result{Message: "You swing the ITEM{pickaxe} at the wall. Sparks fly, but nothing gives."}
	}
	if g.Flags.Is(entities.FlagTunnelCleared) {
		return Result{Message: "The tunnel is already clear."}
	}

	g.Flags.Set(entities.FlagTunnelCleared, true)
	OpenPassage(g, entities.FlagTunnelCleared)

	return Result{
		Message: entities.Overlays[entities.OverlayTunnelCleared].Text,
		Overlay: entities.OverlayTunnelCleared,
	}
}

// OpenPassage connects the hidden passage unlocked by flag
func OpenPassage(g *state.Game, flag string) {
	if g.Content != nil {
		if p, ok := g.Content.Passage(flag); ok {
			g.Cave.Connect(p.From, p.To)
			return
		}
	}
	if flag == entities.FlagTunnelCleared {
		g.Cave.Connect(entities.RoomTunnel, entities.RoomVault)
	}
}

// MushroomHandler poisons the player unless the wizard intervenes
type MushroomHandler struct{}

func (h *MushroomHandler) CanHandle(itemID string) bool {
	return itemID == ItemMushroom
}

func (h *MushroomHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	if g.Flags.Is(entities.FlagWizardFreed) {
		g.Inventory.Remove(item.ID)
		return Result{Message: "The wizard appears in a puff of smoke and slaps the mushroom out of your hand. \"Are you mad? Those are poisonous!\""}
	}
	g.Kill(entities.DeathPoison)
	return Result{Message: "You eat the ITEM{mushroom}. It tastes wonderful. Then the walls start to melt.", Consumed: true}
}

// ScrollHandler teleports the player to a safe room
type ScrollHandler struct{}

func (h *ScrollHandler) CanHandle(itemID string) bool {
	return itemID == ItemScroll
}

func (h *ScrollHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	candidates := SafeRooms(g)
	if len(candidates) == 0 {
		return Result{Message: "The scroll glows, then fades. There is nowhere safe to go."}
	}
	target := candidates[g.Rand.Intn(len(candidates))]
	return Result{
		Message:  "The scroll crumbles to dust and the cave twists around you.",
		Consumed: true,
		MoveTo:   target,
	}
}

// SafeRooms lists reachable rooms other than the current one with no pit, bats or Wumpus,
// excluding the sand pit while the creature lives
func SafeRooms(g *state.Game) []int {
	var out []int
	for _, id := range g.Cave.IDs() {
		if id == g.Position.Current {
			continue
		}
		if len(g.Cave.Neighbors(id)) == 0 {
			continue
		}
		if len(g.HazardsIn(id)) > 0 {
			continue
		}
		if id == entities.RoomSandPit && !g.Flags.Is(entities.FlagSandCreatureDefeated) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// MapHandler reveals every hazard in the cave
type MapHandler struct{}

func (h *MapHandler) CanHandle(itemID string) bool {
	return itemID == ItemWizardMap
}

func (h *MapHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	g.HasMap = true
	return Result{Message: "You unfold the wizard's map. Every danger in the cave is marked in red ink. Type ACTION{map} to study it."}
}

// TreasureHandler lets the player admire their loot
type TreasureHandler struct{}

func (h *TreasureHandler) CanHandle(itemID string) bool {
	return itemID == ItemIdol || itemID == ItemHeart || itemID == ItemCrown
}

func (h *TreasureHandler) Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result {
	return Result{Message: "You admire the ITEM{" + item.Name + "}. It was worth the trouble."}
}
