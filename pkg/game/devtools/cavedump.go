// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/state"
)

// DefaultDumpFile is where DumpCaveToFile writes when no path is given
const DefaultDumpFile = "cave.txt"

// roomSymbols marks what a room holds in the room list
func roomSymbols(g *state.Game, r *world.Room) string {
	var marks []string
	if r.ID == g.Position.Current {
		marks = append(marks, "@")
	}
	if r.ID == g.WumpusRoom {
		marks = append(marks, "W")
	}
	for _, h := range g.HazardsIn(r.ID) {
		marks = append(marks, strings.ToUpper(h.Key()[:1]))
	}
	if r.ItemsOnFloor.Size() > 0 {
		marks = append(marks, "i")
	}
	if r.IsDark() {
		marks = append(marks, "d")
	}
	if len(marks) == 0 {
		return "."
	}
	return strings.Join(marks, "")
}

// DumpCave writes a full debug dump of a hunt: metadata, legend, rooms with
// their exits and contents, and the hazard placement.
// Format is human-readable (sections, key: value, consistent structure).
func DumpCave(w io.Writer, g *state.Game) error {
	if g.Cave == nil || g.Cave.Len() == 0 {
		return fmt.Errorf("no cave")
	}

	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== CAVE DUMP (layout, hazards, items) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", g.Seed)
	fmt.Fprintf(bw, "session: %s\n", g.SessionID)
	fmt.Fprintf(bw, "rooms: %d\n", g.Cave.Len())
	fmt.Fprintf(bw, "start_room: %d\n", g.Cave.StartRoom())
	fmt.Fprintf(bw, "player_room: %d\n", g.Position.Current)
	fmt.Fprintf(bw, "wumpus_room: %d\n", g.WumpusRoom)
	fmt.Fprintf(bw, "wumpus_killed: %v\n", g.WumpusKilled)
	fmt.Fprintf(bw, "status: %s\n", g.Status)
	fmt.Fprintf(bw, "turns: %d\n", g.Turns)
	fmt.Fprintf(bw, "has_map: %v\n", g.HasMap)
	fmt.Fprintf(bw, "arrows: %d\n", g.Inventory.Quantity("arrows"))
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (room marks) ---")
	fmt.Fprintln(bw, "@ = player  W = wumpus  P = pit  B = bats  S = sand creature  i = items on floor  d = dark  . = empty")
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintln(bw, "--- Rooms ---")
	for _, id := range g.Cave.IDs() {
		r := g.Cave.Room(id)
		fmt.Fprintf(bw, "%3d %-4s %-24q exits: %-12s visited: %v\n",
			r.ID, roomSymbols(g, r), r.Name, exitList(r.Exits), r.Visited)
		if r.ItemsOnFloor.Size() > 0 {
			fmt.Fprintf(bw, "      floor: %s\n", strings.Join(world.SortedItems(r.ItemsOnFloor), ", "))
		}
		if len(r.Hazards) > 0 {
			fmt.Fprintf(bw, "      static_hazards: %s\n", strings.Join(r.Hazards, ", "))
		}
	}
	fmt.Fprintln(bw, "")

	// --- Hazards ---
	fmt.Fprintln(bw, "--- Hazards ---")
	for _, id := range g.Cave.IDs() {
		for _, h := range g.HazardsIn(id) {
			fmt.Fprintf(bw, "  room: %d hazard: %s\n", id, h.Key())
		}
	}
	fmt.Fprintln(bw, "")

	// --- Inventory and flags ---
	fmt.Fprintln(bw, "--- Inventory ---")
	for _, it := range g.Inventory.Items() {
		fmt.Fprintf(bw, "  id: %s quantity: %d uses: %d equipped: %v\n", it.ID, it.Quantity, it.Uses, it.Equipped)
	}
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Flags ---")
	for _, key := range g.Flags.Keys() {
		fmt.Fprintf(bw, "  %s: %v\n", key, g.Flags.Is(key))
	}

	return bw.Flush()
}

// DumpCaveToFile writes DumpCave output to path and returns the absolute path
func DumpCaveToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFile
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpCave(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

func exitList(exits []int) string {
	parts := make([]string, len(exits))
	for i, e := range exits {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ",")
}
