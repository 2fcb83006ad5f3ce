package state

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/content"
	"wumpus/pkg/game/entities"
)

// Status is the outcome of the game so far
type Status int

const (
	Playing Status = iota
	Won
	Dead
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Dead:
		return "dead"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// HazardSet holds the hazards placed in one room
type HazardSet = mapset.Set[entities.HazardType]

// Game represents the game state for a hunt in the cave
type Game struct {
	Cave    *world.Cave
	Content *content.Table

	Position  Position
	Inventory *Inventory
	Flags     Flags

	// Hazards maps room ids to the hazards placed there. The Wumpus is tracked separately.
	Hazards    map[int]HazardSet
	WumpusRoom int

	HasMap bool

	Status       Status
	Death        entities.DeathCause
	Treasures    []string
	WumpusKilled bool

	Turns     int
	DarkTurns int // Consecutive turns spent in the dark next to a pit

	Hints    []string
	Messages []string
	Overlay  entities.Overlay

	Seed      int64
	Rand      *rand.Rand
	SessionID string
}

// NewGame creates a new game instance
func NewGame(seed int64) *Game {
	return &Game{
		Cave:      world.NewCave(),
		Inventory: NewInventory(),
		Flags:     make(Flags),
		Hazards:   make(map[int]HazardSet),
		Status:    Playing,
		Death:     entities.DeathNone,
		Messages:  make([]string, 0),
		Seed:      seed,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 8
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// CurrentRoom returns the room the player stands in
func (g *Game) CurrentRoom() *world.Room {
	return g.Cave.Room(g.Position.Current)
}

// Grant gives the player an item from the catalog
func (g *Game) Grant(id string, quantity int) *InventoryItem {
	item := g.NewItem(id, quantity)
	return g.Inventory.Add(item)
}

// NewItem builds an inventory item from the catalog. Unknown ids become plain items.
func (g *Game) NewItem(id string, quantity int) InventoryItem {
	if g.Content != nil {
		if def, ok := g.Content.Item(id); ok {
			if quantity <= 0 {
				quantity = def.Quantity
			}
			return InventoryItem{
				ID:        def.ID,
				Name:      def.Name,
				Uses:      def.Uses,
				Quantity:  quantity,
				Treasure:  def.Treasure,
				Stackable: def.Stackable,
			}
		}
	}
	if quantity <= 0 {
		quantity = 1
	}
	return InventoryItem{ID: id, Name: id, Uses: -1, Quantity: quantity}
}

// ItemName returns the display name of an item id
func (g *Game) ItemName(id string) string {
	if item := g.Inventory.Get(id); item != nil {
		return item.Name
	}
	if g.Content != nil {
		if def, ok := g.Content.Item(id); ok {
			return def.Name
		}
	}
	return id
}

// MoveTo moves the player and marks the room visited
func (g *Game) MoveTo(room int) {
	g.Position.MoveTo(room)
	if r := g.Cave.Room(room); r != nil {
		r.Visited = true
	}
}

// HazardsIn returns the hazards placed in a room, including the Wumpus
func (g *Game) HazardsIn(room int) []entities.HazardType {
	var out []entities.HazardType
	for _, h := range entities.HazardOrder {
		if g.HasHazard(room, h) {
			out = append(out, h)
		}
	}
	return out
}

// HasHazard returns true if the hazard is currently in the room
func (g *Game) HasHazard(room int, h entities.HazardType) bool {
	if h == entities.HazardWumpus {
		return !g.WumpusKilled && g.WumpusRoom == room
	}
	set, ok := g.Hazards[room]
	return ok && set.Has(h)
}

// PlaceHazard puts a hazard in a room
func (g *Game) PlaceHazard(room int, h entities.HazardType) {
	if h == entities.HazardWumpus {
		g.WumpusRoom = room
		return
	}
	set, ok := g.Hazards[room]
	if !ok {
		set = mapset.New[entities.HazardType]()
		g.Hazards[room] = set
	}
	set.Put(h)
}

// RemoveHazard clears a hazard from a room
func (g *Game) RemoveHazard(room int, h entities.HazardType) {
	if set, ok := g.Hazards[room]; ok {
		set.Remove(h)
		if set.Size() == 0 {
			delete(g.Hazards, room)
		}
	}
}

// Kill ends the game with the given cause. The first cause wins.
func (g *Game) Kill(cause entities.DeathCause) {
	if g.Status != Playing {
		return
	}
	g.Status = Dead
	g.Death = cause
	g.Overlay = entities.OverlayDeath
}

// Win ends the game in victory
func (g *Game) Win() {
	if g.Status != Playing {
		return
	}
	g.Status = Won
	g.WumpusKilled = true
	g.Overlay = entities.OverlayVictory
}

// AddTreasure records a treasure. Returns false if it was already counted.
func (g *Game) AddTreasure(id string) bool {
	for _, t := range g.Treasures {
		if t == id {
			return false
		}
	}
	g.Treasures = append(g.Treasures, id)
	return true
}

// IsOver returns true once the game has ended
func (g *Game) IsOver() bool {
	return g.Status != Playing
}

// Score returns 10 per treasure, 50 for the Wumpus, minus 1 per 10 turns
func (g *Game) Score() int {
	score := 10 * len(g.Treasures)
	if g.WumpusKilled {
		score += 50
	}
	score -= g.Turns / 10
	if score < 0 {
		return 0
	}
	return score
}

// ShowOverlay asks the presentation layer to show a scene overlay
func (g *Game) ShowOverlay(o entities.Overlay) {
	g.Overlay = o
}

// ClearOverlay dismisses the current overlay
func (g *Game) ClearOverlay() {
	g.Overlay = entities.OverlayNone
}

// CanSee returns true if the player can see in the current room
func (g *Game) CanSee() bool {
	r := g.CurrentRoom()
	if r == nil || !r.IsDark() {
		return true
	}
	return g.Flags.Is(entities.FlagLanternLit)
}
