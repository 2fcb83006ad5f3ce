package events

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/content"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// makeLineGame creates a game on a cave of n rooms in a line (1-2-...-n) with the player in room 1
func makeLineGame(t *testing.T, n int) *state.Game {
	t.Helper()
	g := state.NewGame(7)
	for i := 1; i <= n; i++ {
		g.Cave.AddRoom(world.NewRoom(i, "Room", "A plain room.", world.MoodCalm))
	}
	for i := 1; i < n; i++ {
		g.Cave.Connect(i, i+1)
	}
	g.Cave.SetStartRoom(1)
	g.WumpusRoom = n
	g.MoveTo(1)
	return g
}

// makeDefaultGame creates a game on the default cave with no random hazards
func makeDefaultGame(t *testing.T, start int) *state.Game {
	t.Helper()
	table, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	cave, err := content.BuildCave(table)
	if err != nil {
		t.Fatalf("BuildCave() error = %v", err)
	}
	g := state.NewGame(7)
	g.Cave = cave
	g.Content = table
	g.WumpusRoom = 20
	g.PlaceHazard(entities.RoomSandPit, entities.HazardSand)
	g.MoveTo(start)
	return g
}

// seedWhere finds a seed whose first Intn(4) satisfies want
func seedWhere(t *testing.T, want func(int) bool) int64 {
	t.Helper()
	for s := int64(1); s < 1000; s++ {
		if want(rand.New(rand.NewSource(s)).Intn(4)) {
			return s
		}
	}
	t.Fatal("no suitable seed found")
	return 0
}

func TestEnter_PlainRoomPicksUpItems(t *testing.T) {
	g := makeLineGame(t, 3)
	g.Cave.Room(2).ItemsOnFloor.Put("rope")

	Enter(context.Background(), g, 2)

	if g.Position.Current != 2 {
		t.Errorf("Position.Current = %d, want 2", g.Position.Current)
	}
	if !g.Inventory.Has("rope") {
		t.Error("rope not picked up")
	}
	if g.Cave.Room(2).ItemsOnFloor.Size() != 0 {
		t.Error("rope still on the floor")
	}
}

func TestEnter_PitKills(t *testing.T) {
	g := makeLineGame(t, 3)
	g.PlaceHazard(2, entities.HazardPit)

	Enter(context.Background(), g, 2)

	if g.Status != state.Dead || g.Death != entities.DeathPit {
		t.Errorf("Status, Death = %v, %q; want dead, pit", g.Status, g.Death)
	}
}

func TestEnter_RopeRescuesFromPit(t *testing.T) {
	g := makeLineGame(t, 3)
	g.PlaceHazard(2, entities.HazardPit)
	g.Inventory.Add(state.InventoryItem{ID: "rope", Name: "Rope", Uses: -1, Quantity: 1, Equipped: true})

	Enter(context.Background(), g, 2)

	if g.Status != state.Playing {
		t.Fatalf("Status = %v, want playing", g.Status)
	}
	if g.Position.Current != 1 {
		t.Errorf("Position.Current = %d, want 1 (climbed back)", g.Position.Current)
	}
	if g.Inventory.Has("rope") {
		t.Error("rope should be lost after the rescue")
	}

	// A second fall is fatal
	Enter(context.Background(), g, 2)
	if g.Death != entities.DeathPit {
		t.Errorf("Death = %q after second fall, want pit", g.Death)
	}
}

func TestEnter_UnequippedRopeDoesNotHelp(t *testing.T) {
	g := makeLineGame(t, 3)
	g.PlaceHazard(2, entities.HazardPit)
	g.Inventory.Add(state.InventoryItem{ID: "rope", Name: "Rope", Uses: -1, Quantity: 1})

	Enter(context.Background(), g, 2)
	if g.Status != state.Dead {
		t.Errorf("Status = %v, want dead", g.Status)
	}
}

func TestEnter_BatsRelocate(t *testing.T) {
	g := makeLineGame(t, 4)
	g.WumpusKilled = true
	g.PlaceHazard(2, entities.HazardBats)

	Enter(context.Background(), g, 2)

	if g.Position.Current == 2 {
		t.Error("bats did not carry the player away")
	}
	if g.Status != state.Playing {
		t.Errorf("Status = %v, want playing", g.Status)
	}
	if len(g.Position.History) != 3 {
		t.Errorf("History = %v, want three entries (start, bat room, drop room)", g.Position.History)
	}
}

func TestEnter_BatsAvoidWumpusRoom(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := makeLineGame(t, 3)
		g.Rand = rand.New(rand.NewSource(seed))
		g.PlaceHazard(2, entities.HazardBats)

		Enter(context.Background(), g, 2)

		if g.Position.Current == 3 {
			t.Fatalf("seed %d: bats dropped the player in the Wumpus room", seed)
		}
		if g.Status != state.Playing {
			t.Fatalf("seed %d: Status = %v, want playing", seed, g.Status)
		}
	}
}

func TestEnter_BatsWithNowhereToGo(t *testing.T) {
	g := makeLineGame(t, 3)
	g.WumpusKilled = true
	g.PlaceHazard(1, entities.HazardBats)
	g.PlaceHazard(2, entities.HazardBats)
	g.PlaceHazard(3, entities.HazardBats)

	Enter(context.Background(), g, 2)

	// With bats everywhere there is no drop room
	if g.Position.Current != 2 {
		t.Errorf("Position.Current = %d, want 2", g.Position.Current)
	}
}

func TestEnter_WumpusBump(t *testing.T) {
	t.Run("wumpus moves away", func(t *testing.T) {
		g := makeLineGame(t, 3)
		g.WumpusRoom = 2
		g.Rand = rand.New(rand.NewSource(seedWhere(t, func(n int) bool { return n != 3 })))

		Enter(context.Background(), g, 2)

		if g.Status != state.Playing {
			t.Fatalf("Status = %v, want playing", g.Status)
		}
		if g.WumpusRoom == 2 {
			t.Error("Wumpus did not move")
		}
		if !g.Cave.IsAdjacent(2, g.WumpusRoom) {
			t.Errorf("Wumpus moved to %d, not adjacent to 2", g.WumpusRoom)
		}
		if !g.Flags.Is(entities.FlagWumpusAwake) {
			t.Error("wumpusAwake flag not set")
		}
	})

	t.Run("wumpus eats the player", func(t *testing.T) {
		g := makeLineGame(t, 3)
		g.WumpusRoom = 2
		g.Rand = rand.New(rand.NewSource(seedWhere(t, func(n int) bool { return n == 3 })))

		Enter(context.Background(), g, 2)

		if g.Status != state.Dead || g.Death != entities.DeathWumpus {
			t.Errorf("Status, Death = %v, %q; want dead, wumpus", g.Status, g.Death)
		}
	})
}

func TestEnter_SandCreatureTwoStep(t *testing.T) {
	g := makeDefaultGame(t, 12)

	Enter(context.Background(), g, entities.RoomSandPit)

	if g.Status != state.Playing {
		t.Fatalf("first entry: Status = %v, want playing", g.Status)
	}
	if g.Position.Current != 12 {
		t.Errorf("first entry: Position.Current = %d, want 12 (thrown back)", g.Position.Current)
	}
	if !g.Flags.Is(entities.FlagSandCreatureActive) {
		t.Error("first entry: sandCreatureActive not set")
	}

	Enter(context.Background(), g, entities.RoomSandPit)
	if g.Status != state.Dead || g.Death != entities.DeathSand {
		t.Errorf("second entry: Status, Death = %v, %q; want dead, sand creature", g.Status, g.Death)
	}
}

func TestEnter_HeartAfterDefeatOnce(t *testing.T) {
	g := makeDefaultGame(t, 12)
	g.Flags.Set(entities.FlagSandCreatureDefeated, true)
	g.RemoveHazard(entities.RoomSandPit, entities.HazardSand)

	Enter(context.Background(), g, entities.RoomSandPit)

	if !g.Inventory.Has("heart") {
		t.Fatal("heart not found after the creature was defeated")
	}
	if len(g.Treasures) != 1 || g.Treasures[0] != "heart" {
		t.Errorf("Treasures = %v, want [heart]", g.Treasures)
	}

	Enter(context.Background(), g, 12)
	Enter(context.Background(), g, entities.RoomSandPit)
	if g.Inventory.Quantity("heart") != 1 || len(g.Treasures) != 1 {
		t.Error("heart granted twice")
	}
}

func TestEnter_VaultCrownOnce(t *testing.T) {
	g := makeDefaultGame(t, entities.RoomTunnel)
	g.Cave.Connect(entities.RoomTunnel, entities.RoomVault)

	Enter(context.Background(), g, entities.RoomVault)
	Enter(context.Background(), g, entities.RoomTunnel)
	Enter(context.Background(), g, entities.RoomVault)

	if g.Inventory.Quantity("crown") != 1 {
		t.Errorf("crown quantity = %d, want 1", g.Inventory.Quantity("crown"))
	}
	if g.Overlay != entities.OverlayTreasure {
		t.Errorf("Overlay = %q, want treasure", g.Overlay)
	}
}

func TestEnter_WizardInTheDark(t *testing.T) {
	tests := []struct {
		name  string
		lit   bool
		freed bool
		want  string
	}{
		{"lit, trapped", true, false, "inside the crystal"},
		{"dark, trapped", false, false, "somewhere in the dark"},
		{"lit, freed", true, true, "nods at you"},
		{"dark, freed", false, true, "teacup clinks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := makeDefaultGame(t, 6)
			g.Cave.Room(entities.RoomWizard).Mood = world.MoodDark
			g.Flags.Set(entities.FlagWizardFreed, tt.freed)
			if tt.lit {
				g.Inventory.Add(state.InventoryItem{ID: "lantern", Name: "Lantern", Uses: 10, Quantity: 1})
				g.Flags.Set(entities.FlagLanternLit, true)
			}

			Enter(context.Background(), g, entities.RoomWizard)

			log := strings.Join(g.Messages, "\n")
			if !strings.Contains(log, tt.want) {
				t.Errorf("messages = %q, want %q", log, tt.want)
			}
			if !tt.lit && (strings.Contains(log, "crystal") || strings.Contains(log, "nods")) {
				t.Errorf("messages = %q, describe the room in the dark", log)
			}
		})
	}
}

func TestEnter_DarkRoom(t *testing.T) {
	g := makeDefaultGame(t, 10)
	dark := 11
	g.Cave.Room(dark).ItemsOnFloor.Put("pickaxe")

	Enter(context.Background(), g, dark)
	if g.Inventory.Has("pickaxe") {
		t.Error("picked up an item in the dark")
	}

	g.Inventory.Add(state.InventoryItem{ID: "lantern", Name: "Lantern", Uses: 10, Quantity: 1})
	g.Flags.Set(entities.FlagLanternLit, true)
	Enter(context.Background(), g, dark)
	if !g.Inventory.Has("pickaxe") {
		t.Error("did not pick up the item with a lit lantern")
	}
}

func TestEnter_StumbleInTheDark(t *testing.T) {
	g := makeDefaultGame(t, 10)
	// Room 11 is dark; room 19 next to it gets a pit
	g.PlaceHazard(19, entities.HazardPit)

	for i := 0; i < DarkTurnsToStumble-1; i++ {
		Enter(context.Background(), g, 11)
		if g.IsOver() {
			t.Fatalf("died after %d dark entries, want %d", i+1, DarkTurnsToStumble)
		}
	}
	Enter(context.Background(), g, 11)
	if g.Death != entities.DeathDarkness {
		t.Errorf("Death = %q, want darkness", g.Death)
	}
}

func TestEnter_LightResetsDarkCounter(t *testing.T) {
	g := makeDefaultGame(t, 10)
	g.PlaceHazard(19, entities.HazardPit)

	Enter(context.Background(), g, 11)
	Enter(context.Background(), g, 11)
	Enter(context.Background(), g, 10)
	if g.DarkTurns != 0 {
		t.Errorf("DarkTurns = %d after a lit room, want 0", g.DarkTurns)
	}
}
