// Package save captures a running hunt as a snapshot and stores it.
package save

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/state"
)

// FormatVersion is bumped whenever the snapshot layout changes
const FormatVersion = 1

// Snapshot is the persisted form of a game
type Snapshot struct {
	Version int       `json:"version"`
	SlotID  string    `json:"slot_id"`
	SavedAt time.Time `json:"saved_at"`

	Seed    int64 `json:"seed"`
	Turns   int   `json:"turns"`
	Current int   `json:"current"`
	History []int `json:"history"`

	Inventory []ItemSnapshot `json:"inventory"`
	Flags     []string       `json:"flags"`

	Hazards      map[int][]string `json:"hazards"`
	WumpusRoom   int              `json:"wumpus_room"`
	WumpusKilled bool             `json:"wumpus_killed"`
	HasMap       bool             `json:"has_map"`

	Status    string   `json:"status"`
	Death     string   `json:"death"`
	Treasures []string `json:"treasures"`
	DarkTurns int      `json:"dark_turns"`

	Visited []int            `json:"visited"`
	Floor   map[int][]string `json:"floor"`
}

// ItemSnapshot is one carried item
type ItemSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Equipped  bool   `json:"equipped,omitempty"`
	Uses      int    `json:"uses"`
	Quantity  int    `json:"quantity"`
	Treasure  bool   `json:"treasure,omitempty"`
	Stackable bool   `json:"stackable,omitempty"`
}

// FromGame captures the current game
func FromGame(g *state.Game) *Snapshot {
	snap := &Snapshot{
		Version:      FormatVersion,
		SlotID:       uuid.NewString(),
		SavedAt:      time.Now().UTC(),
		Seed:         g.Seed,
		Turns:        g.Turns,
		Current:      g.Position.Current,
		History:      append([]int(nil), g.Position.History...),
		Flags:        g.Flags.Keys(),
		Hazards:      make(map[int][]string),
		WumpusRoom:   g.WumpusRoom,
		WumpusKilled: g.WumpusKilled,
		HasMap:       g.HasMap,
		Status:       g.Status.String(),
		Death:        string(g.Death),
		Treasures:    append([]string(nil), g.Treasures...),
		DarkTurns:    g.DarkTurns,
		Floor:        make(map[int][]string),
	}

	for _, item := range g.Inventory.Items() {
		snap.Inventory = append(snap.Inventory, ItemSnapshot{
			ID:        item.ID,
			Name:      item.Name,
			Equipped:  item.Equipped,
			Uses:      item.Uses,
			Quantity:  item.Quantity,
			Treasure:  item.Treasure,
			Stackable: item.Stackable,
		})
	}

	g.Cave.ForEachRoom(func(r *world.Room) {
		for _, h := range g.HazardsIn(r.ID) {
			if h == entities.HazardWumpus {
				continue
			}
			snap.Hazards[r.ID] = append(snap.Hazards[r.ID], h.Key())
		}
		if r.Visited {
			snap.Visited = append(snap.Visited, r.ID)
		}
		if r.ItemsOnFloor.Size() > 0 {
			snap.Floor[r.ID] = world.SortedItems(r.ItemsOnFloor)
		}
	})

	return snap
}

// Apply restores the snapshot into g. The game must have been built from
// the same content table as the one that was saved.
func (s *Snapshot) Apply(g *state.Game) error {
	if s.Version != FormatVersion {
		return fmt.Errorf("%w: snapshot version %d, want %d", ErrCorrupt, s.Version, FormatVersion)
	}
	if g.Cave.Room(s.Current) == nil {
		return fmt.Errorf("%w: unknown room %d", ErrCorrupt, s.Current)
	}
	status, ok := parseStatus(s.Status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrCorrupt, s.Status)
	}

	g.Seed = s.Seed
	g.Rand = rand.New(rand.NewSource(s.Seed + int64(s.Turns)))
	g.Turns = s.Turns
	g.Position = state.Position{Current: s.Current, History: append([]int(nil), s.History...)}

	g.Inventory = state.NewInventory()
	for _, item := range s.Inventory {
		g.Inventory.Add(state.InventoryItem{
			ID:        item.ID,
			Name:      item.Name,
			Equipped:  item.Equipped,
			Uses:      item.Uses,
			Quantity:  item.Quantity,
			Treasure:  item.Treasure,
			Stackable: item.Stackable,
		})
	}

	g.Flags = make(state.Flags)
	for _, key := range s.Flags {
		g.Flags.Set(key, true)
		if g.Content != nil {
			if p, ok := g.Content.Passage(key); ok {
				g.Cave.Connect(p.From, p.To)
			}
		}
	}

	g.Hazards = make(map[int]state.HazardSet)
	for room, keys := range s.Hazards {
		for _, key := range keys {
			h, ok := entities.ParseHazard(key)
			if !ok {
				return fmt.Errorf("%w: unknown hazard %q", ErrCorrupt, key)
			}
			g.PlaceHazard(room, h)
		}
	}
	g.WumpusRoom = s.WumpusRoom
	g.WumpusKilled = s.WumpusKilled
	g.HasMap = s.HasMap

	g.Status = status
	g.Death = entities.DeathCause(s.Death)
	g.Treasures = append([]string(nil), s.Treasures...)
	g.DarkTurns = s.DarkTurns
	g.Overlay = entities.OverlayNone

	visited := make(map[int]bool, len(s.Visited))
	for _, id := range s.Visited {
		visited[id] = true
	}
	g.Cave.ForEachRoom(func(r *world.Room) {
		r.Visited = visited[r.ID]
		r.ItemsOnFloor = world.NewItemSet(s.Floor[r.ID]...)
	})

	return nil
}

func parseStatus(s string) (state.Status, bool) {
	for _, st := range []state.Status{state.Playing, state.Won, state.Dead, state.Quit} {
		if st.String() == s {
			return st, true
		}
	}
	return state.Playing, false
}
