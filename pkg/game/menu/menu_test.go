package menu

import (
	"strings"
	"testing"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// scriptedRenderer replays a fixed list of intents and records menu renders
type scriptedRenderer struct {
	intents  []engineinput.Intent
	renders  int
	titles   []string
	selected []int
	labels   [][]string
	cleared  bool
}

func (r *scriptedRenderer) Init()                     {}
func (r *scriptedRenderer) Clear()                    {}
func (r *scriptedRenderer) RenderFrame(g *state.Game) {}
func (r *scriptedRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}
func (r *scriptedRenderer) FormatText(msg string, args ...any) string {
	return renderer.ReplaceMarkup(func(fn, op string) (string, bool) { return op, true }, msg, args...)
}
func (r *scriptedRenderer) ShowMessage(msg string) {}
func (r *scriptedRenderer) Close()                 {}

func (r *scriptedRenderer) GetInput() engineinput.Intent {
	if len(r.intents) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	in := r.intents[0]
	r.intents = r.intents[1:]
	return in
}

func (r *scriptedRenderer) RenderMenu(g *state.Game, items []MenuItem, selected int, helpText string, title string) {
	r.renders++
	r.titles = append(r.titles, title)
	r.selected = append(r.selected, selected)
	var labels []string
	for _, it := range items {
		labels = append(labels, it.GetLabel())
	}
	r.labels = append(r.labels, labels)
}

func (r *scriptedRenderer) ClearMenu() {
	r.cleared = true
}

func useRenderer(t *testing.T, intents ...engineinput.Intent) *scriptedRenderer {
	t.Helper()
	r := &scriptedRenderer{intents: intents}
	prev := renderer.Current
	renderer.SetRenderer(r)
	t.Cleanup(func() { renderer.SetRenderer(prev) })
	return r
}

func act(a engineinput.Action, args ...string) engineinput.Intent {
	return engineinput.Intent{Action: a, Args: args}
}

func TestGameMenu_NavigateAndActivate(t *testing.T) {
	r := useRenderer(t,
		act(engineinput.ActionMenuDown),
		act(engineinput.ActionMenuDown),
		act(engineinput.ActionAction),
	)

	got := RunGameMenu(state.NewGame(1))

	if got != GameMenuActionLoad {
		t.Errorf("RunGameMenu() = %v, want GameMenuActionLoad", got)
	}
	if !r.cleared {
		t.Error("menu not cleared on close")
	}
	if r.selected[2] != 2 {
		t.Errorf("selection before activation = %d, want 2", r.selected[2])
	}
}

func TestGameMenu_WrapsAround(t *testing.T) {
	r := useRenderer(t,
		act(engineinput.ActionMenuUp),
		act(engineinput.ActionAction),
	)

	got := RunGameMenu(state.NewGame(1))

	if got != GameMenuActionQuit {
		t.Errorf("RunGameMenu() = %v, want GameMenuActionQuit", got)
	}
	if r.selected[1] != 5 {
		t.Errorf("selected after wrap = %d, want 5", r.selected[1])
	}
}

func TestGameMenu_NumberSelects(t *testing.T) {
	useRenderer(t, act(engineinput.ActionMove, "4"))

	if got := RunGameMenu(state.NewGame(1)); got != GameMenuActionRestart {
		t.Errorf("RunGameMenu() = %v, want GameMenuActionRestart", got)
	}
}

func TestGameMenu_BadNumberIgnored(t *testing.T) {
	r := useRenderer(t,
		act(engineinput.ActionMove, "9"),
		act(engineinput.ActionQuit),
	)

	if got := RunGameMenu(state.NewGame(1)); got != GameMenuActionResume {
		t.Errorf("RunGameMenu() = %v, want GameMenuActionResume", got)
	}
	if r.renders != 2 {
		t.Errorf("renders = %d, want 2", r.renders)
	}
}

func TestMainMenu_ContinueDisabledWithoutSave(t *testing.T) {
	r := useRenderer(t,
		act(engineinput.ActionMenuDown),
		act(engineinput.ActionAction),
	)

	got := RunMainMenu(false)

	// Help opens the help page, after which the script runs out and quits
	if got != MainMenuActionQuit {
		t.Errorf("RunMainMenu() = %v, want MainMenuActionQuit", got)
	}
	if r.selected[1] != 2 {
		t.Errorf("selected = %d, want 2 (Continue skipped)", r.selected[1])
	}
	if r.titles[2] != "Commands" {
		t.Errorf("third screen = %q, want the help page", r.titles[2])
	}
}

func TestInventoryMenu_ChoosesItem(t *testing.T) {
	g := state.NewGame(1)
	g.Inventory.Add(state.InventoryItem{ID: "rope", Name: "Rope", Uses: -1, Quantity: 1})
	g.Inventory.Add(state.InventoryItem{ID: "arrows", Name: "Arrows", Uses: -1, Quantity: 5})
	useRenderer(t, act(engineinput.ActionMove, "2"))

	// Items are sorted by name: Arrows, Rope
	if got := ChooseItem(g); got != "rope" {
		t.Errorf("ChooseItem() = %q, want rope", got)
	}
}

func TestInventoryMenu_Empty(t *testing.T) {
	r := useRenderer(t, act(engineinput.ActionAction))

	if got := ChooseItem(state.NewGame(1)); got != "" {
		t.Errorf("ChooseItem() = %q, want empty", got)
	}
	if r.selected[0] != -1 {
		t.Errorf("selected = %d, want -1", r.selected[0])
	}
}

func TestShowMap_ClosesOnAnyKey(t *testing.T) {
	g := state.NewGame(1)
	g.Cave.AddRoom(world.NewRoom(1, "Entrance", "", world.MoodCalm))
	g.Cave.AddRoom(world.NewRoom(2, "Pit Room", "", world.MoodCalm))
	g.Cave.Connect(1, 2)
	g.PlaceHazard(2, entities.HazardPit)
	g.MoveTo(1)
	r := useRenderer(t, act(engineinput.ActionLook))

	ShowMap(g)

	if r.renders != 1 {
		t.Errorf("renders = %d, want 1", r.renders)
	}
	if len(r.labels[0]) != 1 || !strings.Contains(r.labels[0][0], "Entrance") {
		t.Errorf("map lines = %v, want only the visited room", r.labels[0])
	}
}

func TestMapLines_WizardMapRevealsHazards(t *testing.T) {
	g := state.NewGame(1)
	g.Cave.AddRoom(world.NewRoom(1, "Entrance", "", world.MoodCalm))
	g.Cave.AddRoom(world.NewRoom(2, "Chamber", "", world.MoodCalm))
	g.Cave.AddRoom(world.NewRoom(3, "Hidden", "", world.MoodCalm))
	g.Cave.Connect(1, 2)
	g.PlaceHazard(2, entities.HazardPit)
	g.MoveTo(1)
	g.HasMap = true
	useRenderer(t)

	lines := MapLines(g)

	if len(lines) != 2 {
		t.Fatalf("MapLines() = %v, want 2 lines", lines)
	}
	if !strings.Contains(lines[1], "Bottomless Pit") {
		t.Errorf("line %q does not mention the pit", lines[1])
	}
}

func TestHelpLines(t *testing.T) {
	lines := HelpLines()
	if len(lines) != len(helpActions) {
		t.Fatalf("HelpLines() = %d lines, want %d", len(lines), len(helpActions))
	}
	if !strings.Contains(lines[0], "move") {
		t.Errorf("first line = %q", lines[0])
	}
}
