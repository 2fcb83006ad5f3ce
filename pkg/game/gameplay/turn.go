package gameplay

import (
	"sort"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// endTurn advances the clock after an action that took time
func (s *Session) endTurn() {
	g := s.Game
	g.Turns++

	if !g.IsOver() {
		BurnLantern(g)
		Perceive(g)
	}

	if g.IsOver() {
		s.gameOver()
	}
}

// gameOver logs the outcome once the game has ended
func (s *Session) gameOver() {
	g := s.Game
	switch g.Status {
	case state.Won:
		logMessage(g, "ACTION{%s} Score: %d", locale.T("YOU_WIN"), g.Score())
	case state.Dead:
		logMessage(g, "HAZARD{%s} %s", locale.T("GAME_OVER"), g.Death.Epitaph())
	}
	logMessage(g, "Press Enter to return to the title screen.")

	s.log().Info("game over",
		"status", g.Status.String(),
		"cause", string(g.Death),
		"turns", g.Turns,
		"score", g.Score(),
		"treasures", len(g.Treasures))
}

// Warnings returns the perception messages for the rooms next to the player,
// one per hazard type
func Warnings(g *state.Game) []string {
	seen := make(map[entities.HazardType]bool)
	for _, n := range g.Cave.Neighbors(g.Position.Current) {
		for _, h := range g.HazardsIn(n) {
			seen[h] = true
		}
	}

	var out []string
	for _, h := range entities.HazardOrder {
		if seen[h] {
			out = append(out, h.Warning())
		}
	}
	return out
}

// Perceive logs what the player senses from the neighbouring rooms
func Perceive(g *state.Game) {
	for _, w := range Warnings(g) {
		logMessage(g, "HAZARD{%s}", w)
	}
}

// Look repeats the exits and warnings for the current room without using a turn
func Look(g *state.Game) {
	r := g.CurrentRoom()
	if r == nil {
		return
	}
	exits := append([]int(nil), r.Exits...)
	sort.Ints(exits)
	logMessage(g, "You are in ROOM{%s}. Tunnels lead to %s.", r.Name, renderer.ExitList(exits))
	if !g.CanSee() {
		logMessage(g, "%s", locale.T("TOO_DARK"))
	}
	Perceive(g)
}
