package renderer

import (
	"strings"
	"testing"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// newFrameGame builds a two-room cave with the player in room 1
func newFrameGame(mood world.Mood) *state.Game {
	g := state.NewGame(1)
	g.Cave.AddRoom(world.NewRoom(1, "Entrance", "A cold draught blows in from outside.", mood))
	g.Cave.AddRoom(world.NewRoom(2, "Gallery", "Stalactites hang like teeth.", world.MoodCalm))
	g.Cave.AddRoom(world.NewRoom(3, "Well", "A dry well.", world.MoodCalm))
	g.Cave.Connect(1, 2)
	g.Cave.Connect(1, 3)
	g.MoveTo(1)
	return g
}

func TestBuildFrame_Room(t *testing.T) {
	g := newFrameGame(world.MoodCalm)
	g.CurrentRoom().ItemsOnFloor.Put("rope")
	g.Grant("arrows", 5)
	g.Turns = 3

	f := BuildFrame(g)

	if f.Title != "Room 1: Entrance" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Description != "A cold draught blows in from outside." {
		t.Errorf("Description = %q", f.Description)
	}
	if len(f.Exits) != 2 || f.Exits[0] != 2 || f.Exits[1] != 3 {
		t.Errorf("Exits = %v, want [2 3]", f.Exits)
	}
	if len(f.Floor) != 1 || f.Floor[0] != "rope" {
		t.Errorf("Floor = %v, want [rope]", f.Floor)
	}
	if f.Arrows != 5 {
		t.Errorf("Arrows = %d, want 5", f.Arrows)
	}
	if f.Turns != 3 {
		t.Errorf("Turns = %d, want 3", f.Turns)
	}
	if f.GameOver != "" {
		t.Errorf("GameOver = %q, want empty while playing", f.GameOver)
	}
}

func TestBuildFrame_Dark(t *testing.T) {
	g := newFrameGame(world.MoodDark)
	g.CurrentRoom().ItemsOnFloor.Put("rope")

	f := BuildFrame(g)

	if !strings.Contains(f.Description, "pitch dark") {
		t.Errorf("Description = %q, want darkness", f.Description)
	}
	if len(f.Floor) != 0 {
		t.Errorf("Floor = %v, want nothing visible in the dark", f.Floor)
	}

	g.Flags.Set(entities.FlagLanternLit, true)
	if f := BuildFrame(g); len(f.Floor) != 1 {
		t.Errorf("Floor = %v, want the rope once the lantern is lit", f.Floor)
	}
}

func TestBuildFrame_Overlay(t *testing.T) {
	g := newFrameGame(world.MoodCalm)
	g.ShowOverlay(entities.OverlayWizardFreed)

	f := BuildFrame(g)

	if f.Overlay == nil || f.Overlay.Title != entities.Overlays[entities.OverlayWizardFreed].Title {
		t.Errorf("Overlay = %+v", f.Overlay)
	}

	g.ClearOverlay()
	if f := BuildFrame(g); f.Overlay != nil {
		t.Errorf("Overlay = %+v, want nil after clearing", f.Overlay)
	}
}

func TestBuildFrame_GameOver(t *testing.T) {
	g := newFrameGame(world.MoodCalm)
	g.Kill(entities.DeathPit)

	f := BuildFrame(g)

	if !strings.HasPrefix(f.GameOver, entities.DeathPit.Epitaph()) {
		t.Errorf("GameOver = %q", f.GameOver)
	}
}

func TestInventoryLabel(t *testing.T) {
	tests := []struct {
		item state.InventoryItem
		want string
	}{
		{state.InventoryItem{Name: "Rope", Quantity: 1, Uses: -1}, "Rope"},
		{state.InventoryItem{Name: "Arrows", Quantity: 4, Uses: -1}, "Arrows x4"},
		{state.InventoryItem{Name: "Rope", Quantity: 1, Uses: -1, Equipped: true}, "Rope (equipped)"},
		{state.InventoryItem{Name: "Lantern", Quantity: 1, Uses: 12, Equipped: true}, "Lantern (equipped, 12 uses)"},
	}

	for _, tt := range tests {
		if got := InventoryLabel(tt.item); got != tt.want {
			t.Errorf("InventoryLabel(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestExitList(t *testing.T) {
	if got := ExitList([]int{2, 5, 11}); got != "2, 5, 11" {
		t.Errorf("ExitList() = %q", got)
	}
	if got := ExitList(nil); got != "" {
		t.Errorf("ExitList(nil) = %q", got)
	}
}
