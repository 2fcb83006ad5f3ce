package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// Frame is the renderer-independent content of one screen
type Frame struct {
	Title       string
	Description string
	Exits       []int
	Floor       []string
	Inventory   []string
	Arrows      int
	Treasures   []string
	Turns       int
	Score       int
	Messages    []string
	Overlay     *entities.OverlayInfo
	GameOver    string
}

// BuildFrame collects what the player can currently perceive
func BuildFrame(g *state.Game) Frame {
	f := Frame{
		Turns:    g.Turns,
		Score:    g.Score(),
		Messages: append([]string(nil), g.Messages...),
		Arrows:   g.Inventory.Quantity("arrows"),
	}

	if room := g.CurrentRoom(); room != nil {
		f.Title = fmt.Sprintf("Room %d: %s", room.ID, room.Name)
		f.Exits = append(f.Exits, room.Exits...)
		if g.CanSee() {
			f.Description = room.Text
			for _, id := range world.SortedItems(room.ItemsOnFloor) {
				f.Floor = append(f.Floor, g.ItemName(id))
			}
		} else {
			f.Description = "It is pitch dark. You can feel passages leading away."
		}
		if info, ok := entities.SpecialRooms[room.ID]; ok {
			if g.Flags.Is(info.Flag) {
				f.Description += " " + info.After
			} else {
				f.Description += " " + info.Before
			}
		}
	}

	for _, it := range g.Inventory.Items() {
		f.Inventory = append(f.Inventory, InventoryLabel(it))
	}
	for _, id := range g.Treasures {
		f.Treasures = append(f.Treasures, g.ItemName(id))
	}

	if g.Overlay != entities.OverlayNone {
		if info, ok := entities.Overlays[g.Overlay]; ok {
			f.Overlay = &info
		}
	}

	switch g.Status {
	case state.Won:
		f.GameOver = fmt.Sprintf("You won! Final score: %d", g.Score())
	case state.Dead:
		f.GameOver = fmt.Sprintf("%s Final score: %d", g.Death.Epitaph(), g.Score())
	}

	return f
}

// InventoryLabel describes an inventory item for status bars and menus
func InventoryLabel(it state.InventoryItem) string {
	label := it.Name
	if it.Quantity > 1 {
		label += " x" + strconv.Itoa(it.Quantity)
	}
	var notes []string
	if it.Equipped {
		notes = append(notes, "equipped")
	}
	if it.Uses >= 0 {
		notes = append(notes, fmt.Sprintf("%d uses", it.Uses))
	}
	if len(notes) > 0 {
		label += " (" + strings.Join(notes, ", ") + ")"
	}
	return label
}

// ExitList joins room numbers for display
func ExitList(exits []int) string {
	parts := make([]string, len(exits))
	for i, e := range exits {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ", ")
}
