package gameplay

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/content"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/save"
	"wumpus/pkg/game/setup"
	"wumpus/pkg/game/state"
)

// makeLineSession creates a session on a cave of n rooms in a line (1-2-...-n)
// with the player in room start and the Wumpus in room n
func makeLineSession(t *testing.T, n, start int, seed int64) *Session {
	t.Helper()
	g := state.NewGame(seed)
	for i := 1; i <= n; i++ {
		g.Cave.AddRoom(world.NewRoom(i, "Room", "A plain room.", world.MoodCalm))
	}
	for i := 1; i < n; i++ {
		g.Cave.Connect(i, i+1)
	}
	g.Cave.SetStartRoom(1)
	g.WumpusRoom = n
	g.Inventory.Add(state.InventoryItem{ID: items.ItemArrows, Name: "Arrows", Uses: -1, Quantity: 5, Stackable: true})
	g.MoveTo(start)

	return &Session{
		Game:  g,
		Items: items.NewRegistry(),
		Store: save.NewMemoryStore(),
		ctx:   context.Background(),
	}
}

// makeDefaultSession creates a session on the default cave without random pits or bats
func makeDefaultSession(t *testing.T) *Session {
	t.Helper()
	table, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	s := NewSession(context.Background(), table, save.NewMemoryStore(), setup.Config{Seed: 5})
	if err := s.NewGame(); err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return s
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

func hasMessage(g *state.Game, substr string) bool {
	for _, m := range g.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestMove_ThroughExit(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Move("2")

	if s.Game.Position.Current != 2 {
		t.Errorf("Position.Current = %d, want 2", s.Game.Position.Current)
	}
	if s.Game.Turns != 1 {
		t.Errorf("Turns = %d, want 1", s.Game.Turns)
	}
}

func TestMove_NoExit(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Move("3")

	if s.Game.Position.Current != 1 {
		t.Errorf("Position.Current = %d, want 1", s.Game.Position.Current)
	}
	if s.Game.Turns != 0 {
		t.Errorf("Turns = %d, want 0 for a blocked move", s.Game.Turns)
	}
	if !hasMessage(s.Game, "can't get there") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
}

func TestMove_NotANumber(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Move("north")

	if s.Game.Position.Current != 1 || s.Game.Turns != 0 {
		t.Error("invalid move changed the game")
	}
}

func TestBack(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	s.Move("2")
	s.Move("3")

	s.Back()

	if s.Game.Position.Current != 2 {
		t.Errorf("Position.Current = %d, want 2", s.Game.Position.Current)
	}
}

func TestBack_AtStart(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Back()

	if s.Game.Position.Current != 1 || s.Game.Turns != 0 {
		t.Error("back without history changed the game")
	}
}

func TestShoot_HitsWumpus(t *testing.T) {
	s := makeLineSession(t, 3, 1, 1)

	s.Shoot([]string{"2", "3"})

	if s.Game.Status != state.Won {
		t.Fatalf("Status = %v, want won", s.Game.Status)
	}
	if !s.Game.WumpusKilled {
		t.Error("WumpusKilled = false")
	}
	if got := s.Game.Inventory.Quantity(items.ItemArrows); got != 4 {
		t.Errorf("arrows = %d, want 4", got)
	}
	if s.Game.Overlay != entities.OverlayVictory {
		t.Errorf("Overlay = %q, want victory", s.Game.Overlay)
	}
}

func TestShoot_OwnArrow(t *testing.T) {
	// Triangle 1-2-3 so the arrow can come back around
	s := makeLineSession(t, 3, 1, 1)
	s.Game.Cave.Connect(3, 1)
	s.Game.WumpusRoom = 0

	s.Shoot([]string{"2", "3", "1"})

	if s.Game.Status != state.Dead || s.Game.Death != entities.DeathOwnArrow {
		t.Errorf("Status = %v, Death = %q, want dead by own arrow", s.Game.Status, s.Game.Death)
	}
}

func TestShoot_MissWakesWumpus(t *testing.T) {
	// The Wumpus in room 3 can only move into room 2, where the player stands
	seed := seedWhere(t, func(n int) bool { return n != 3 })
	s := makeLineSession(t, 3, 2, seed)

	s.Shoot([]string{"1"})

	if s.Game.Death != entities.DeathWumpus {
		t.Errorf("Death = %q, want wumpus", s.Game.Death)
	}
	if !s.Game.Flags.Is(entities.FlagWumpusAwake) {
		t.Error("Wumpus not awake after a miss")
	}
}

func TestShoot_LastArrowMissed(t *testing.T) {
	seed := seedWhere(t, func(n int) bool { return n == 3 })
	s := makeLineSession(t, 5, 1, seed)
	s.Game.Inventory.Consume(items.ItemArrows, 4)

	s.Shoot([]string{"2"})

	if s.Game.Death != entities.DeathOutOfArrows {
		t.Errorf("Death = %q, want out of arrows", s.Game.Death)
	}
	if s.Game.WumpusRoom != 5 {
		t.Errorf("WumpusRoom = %d, want 5 (stayed put)", s.Game.WumpusRoom)
	}
}

func TestShoot_BadPath(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Shoot(nil)
	s.Shoot([]string{"1", "2", "3", "4", "5", "6"})
	s.Shoot([]string{"two"})

	if got := s.Game.Inventory.Quantity(items.ItemArrows); got != 5 {
		t.Errorf("arrows = %d, want 5", got)
	}
	if s.Game.Turns != 0 {
		t.Errorf("Turns = %d, want 0", s.Game.Turns)
	}
}

func TestFlyArrow_CrookedPath(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	s.Game.WumpusRoom = 0

	// Room 4 is not next to room 1, so the arrow takes the only tunnel
	flight := FlyArrow(s.Game, []int{4})

	if len(flight) != 1 || flight[0] != 2 {
		t.Errorf("flight = %v, want [2]", flight)
	}
}

func TestFlyArrow_NeverDoublesBack(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		s := makeLineSession(t, 4, 1, seed)
		s.Game.Cave.Connect(2, 4)
		s.Game.WumpusRoom = 0

		// 1 -> 2 -> 1 doubles back, so the second hop goes to 3 or 4
		flight := FlyArrow(s.Game, []int{2, 1})

		if len(flight) != 2 || flight[1] == 1 {
			t.Fatalf("seed %d: flight = %v, want a second hop away from room 1", seed, flight)
		}
		if s.Game.Status != state.Playing {
			t.Fatalf("seed %d: Status = %v, want playing", seed, s.Game.Status)
		}
	}
}

func TestForwardExits(t *testing.T) {
	if got := forwardExits([]int{1}, 1); len(got) != 1 || got[0] != 1 {
		t.Errorf("forwardExits([1], 1) = %v, want [1]", got)
	}
	if got := forwardExits([]int{1, 3, 4}, 1); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("forwardExits([1 3 4], 1) = %v, want [3 4]", got)
	}
}

func TestParsePath(t *testing.T) {
	if p, ok := ParsePath([]string{"3", "4"}); !ok || len(p) != 2 || p[1] != 4 {
		t.Errorf("ParsePath(3 4) = %v, %v", p, ok)
	}
	if _, ok := ParsePath([]string{"1", "2", "3", "4", "5", "6"}); ok {
		t.Error("ParsePath accepted six rooms")
	}
}

func TestWarnings(t *testing.T) {
	s := makeLineSession(t, 5, 2, 1)
	s.Game.PlaceHazard(1, entities.HazardPit)
	s.Game.PlaceHazard(3, entities.HazardBats)
	s.Game.WumpusRoom = 3

	got := Warnings(s.Game)
	want := []string{"You smell a Wumpus.", "You feel a draft.", "You hear bats."}

	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Warnings() = %v, want %v", got, want)
	}
}

func TestBurnLantern(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	g := s.Game
	g.Inventory.Add(state.InventoryItem{ID: items.ItemLantern, Name: "Lantern", Uses: 1, Quantity: 1, Equipped: true})
	g.Flags.Set(entities.FlagLanternLit, true)

	BurnLantern(g)

	if g.Flags.Is(entities.FlagLanternLit) {
		t.Error("lantern still lit after running dry")
	}
	if g.Inventory.IsEquipped(items.ItemLantern) {
		t.Error("empty lantern still equipped")
	}
	if !hasMessage(g, "goes out") {
		t.Errorf("Messages = %v", g.Messages)
	}
}

func TestBurnLantern_Unlit(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	g := s.Game
	g.Inventory.Add(state.InventoryItem{ID: items.ItemLantern, Name: "Lantern", Uses: 10, Quantity: 1})

	BurnLantern(g)

	if got := g.Inventory.Get(items.ItemLantern).Uses; got != 10 {
		t.Errorf("Uses = %d, want 10", got)
	}
}

func TestUseItem_Fallback(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	s.Game.Inventory.Add(state.InventoryItem{ID: "pebble", Name: "Pebble", Uses: -1, Quantity: 1})

	s.UseItem("pebble")

	if !hasMessage(s.Game, "Nothing happens") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
}

func TestUseItem_NotCarried(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.UseItem("crown")

	if !hasMessage(s.Game, "not carrying") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
	if s.Game.Turns != 0 {
		t.Errorf("Turns = %d, want 0", s.Game.Turns)
	}
}

func TestUseItem_ScrollRunsRoomEvents(t *testing.T) {
	s := makeLineSession(t, 3, 1, 1)
	s.Game.WumpusRoom = 0
	s.Game.Cave.Room(3).ItemsOnFloor.Put("rope")
	s.Game.Cave.Room(2).ItemsOnFloor.Put("rope")
	s.Game.Inventory.Add(state.InventoryItem{ID: items.ItemScroll, Name: "Scroll", Uses: -1, Quantity: 1})

	s.UseItem("scroll")

	if s.Game.Position.Current == 1 {
		t.Fatal("scroll did not move the player")
	}
	if !s.Game.Inventory.Has("rope") {
		t.Error("items in the destination were not picked up")
	}
	if s.Game.Inventory.Has(items.ItemScroll) {
		t.Error("scroll not consumed")
	}
}

func TestDrop(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	s.Game.Inventory.Add(state.InventoryItem{ID: "rope", Name: "Rope", Uses: -1, Quantity: 1})

	s.Drop("rope")

	if s.Game.Inventory.Has("rope") {
		t.Error("rope still carried")
	}
	if !s.Game.CurrentRoom().ItemsOnFloor.Has("rope") {
		t.Error("rope not on the floor")
	}
}

func TestDrop_KeepsArrows(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.Drop("arrows")

	if got := s.Game.Inventory.Quantity(items.ItemArrows); got != 5 {
		t.Errorf("arrows = %d, want 5", got)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionQuit})

	if !s.Quit || s.Game.Status != state.Quit {
		t.Errorf("Quit = %v, Status = %v", s.Quit, s.Game.Status)
	}
}

func TestProcessIntent_UnknownCommand(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.ProcessIntent(engineinput.ParseCommand("dance"))

	if !hasMessage(s.Game, "don't understand") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
}

func TestProcessIntent_GameOverReturnsToTitle(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	s.Game.Kill(entities.DeathPit)

	s.ProcessIntent(engineinput.ParseCommand("move 2"))

	if !s.ToTitle {
		t.Error("ToTitle = false after game over")
	}
	if s.Game.Position.Current != 1 {
		t.Error("dead player moved")
	}
}

func TestProcessIntent_BareNumberMoves(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)

	s.ProcessIntent(engineinput.ParseCommand("2"))

	if s.Game.Position.Current != 2 {
		t.Errorf("Position.Current = %d, want 2", s.Game.Position.Current)
	}
}

func TestHint_Contextual(t *testing.T) {
	s := makeLineSession(t, 5, 1, 1)
	InitHints(s.Game)
	s.Game.Inventory.Add(state.InventoryItem{ID: items.ItemRope, Name: "Rope", Uses: -1, Quantity: 1})

	if got := Hint(s.Game); !strings.Contains(got, "rope") {
		t.Errorf("Hint() = %q, want the rope hint", got)
	}
}

func TestNewGame_Welcome(t *testing.T) {
	s := makeDefaultSession(t)

	if s.Game.SessionID == "" {
		t.Error("SessionID not set")
	}
	if !hasMessage(s.Game, "hunt the Wumpus") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
	if len(s.Game.Hints) == 0 {
		t.Error("hints not initialised")
	}
}

func TestSaveLoad(t *testing.T) {
	s := makeDefaultSession(t)
	start := s.Game.Position.Current
	next := s.Game.Cave.Neighbors(start)[0]

	s.Save()
	s.Move(strconv.Itoa(next))
	s.Load()

	if s.Game.Position.Current != start {
		t.Errorf("Position.Current = %d after load, want %d", s.Game.Position.Current, start)
	}
	if !hasMessage(s.Game, "Game loaded") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
}

func TestLoad_NoSave(t *testing.T) {
	s := makeDefaultSession(t)

	s.Load()

	if !hasMessage(s.Game, "no saved game") {
		t.Errorf("Messages = %v", s.Game.Messages)
	}
	if s.HasSave() {
		t.Error("HasSave() = true with an empty store")
	}
}

func TestRestart(t *testing.T) {
	s := makeDefaultSession(t)
	old := s.Game
	seed := s.Setup.Seed

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}

	if s.Game == old {
		t.Error("Restart() kept the old game")
	}
	if s.Setup.Seed == seed {
		t.Error("Restart() reused the seed")
	}
}
