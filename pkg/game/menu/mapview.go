package menu

import (
	"fmt"
	"strings"

	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// MapLines describes the rooms the player knows about. Visited rooms are
// always listed; the wizard's map reveals every room and its hazards.
func MapLines(g *state.Game) []string {
	var lines []string
	for _, id := range g.Cave.IDs() {
		r := g.Cave.Room(id)
		if !r.Visited && !g.HasMap {
			continue
		}
		if len(r.Exits) == 0 && !r.Visited {
			// Hidden rooms stay off the map until found
			continue
		}

		line := fmt.Sprintf("%2d %s", r.ID, r.Name)
		if r.ID == g.Position.Current {
			line = renderer.StyleText(line, renderer.StylePlayer)
		}
		line += renderer.StyledSubtle(" exits " + renderer.ExitList(r.Exits))

		if g.HasMap {
			var hazards []string
			for _, h := range g.HazardsIn(r.ID) {
				hazards = append(hazards, h.String())
			}
			if len(hazards) > 0 {
				line += " " + renderer.StyledHazard(strings.Join(hazards, ", "))
			}
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "You have not explored anything yet.")
	}
	return lines
}

// ShowMap displays the map page
func ShowMap(g *state.Game) {
	title := "Cave Map"
	if g.HasMap {
		title = "Wizard's Map"
	}
	h := NewInfoMenuHandler(title, MapLines(g))
	RunMenuDynamic(g, h)
}
