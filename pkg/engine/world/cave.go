package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// RoomSet is a set of room ids
type RoomSet = mapset.Set[int]

// Cave is the room graph of the game world
type Cave struct {
	rooms map[int]*Room
	start int
}

// NewCave creates an empty cave
func NewCave() *Cave {
	return &Cave{rooms: make(map[int]*Room)}
}

// AddRoom adds a room to the cave. Returns false if the id is already taken.
func (c *Cave) AddRoom(r *Room) bool {
	if r == nil {
		return false
	}
	if _, exists := c.rooms[r.ID]; exists {
		return false
	}
	c.rooms[r.ID] = r
	return true
}

// Room returns the room with the given id, or nil if it does not exist
func (c *Cave) Room(id int) *Room {
	if c == nil {
		return nil
	}
	return c.rooms[id]
}

// Len returns the number of rooms
func (c *Cave) Len() int {
	return len(c.rooms)
}

// IDs returns all room ids in ascending order
func (c *Cave) IDs() []int {
	ids := make([]int, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ForEachRoom calls fn for every room in ascending id order
func (c *Cave) ForEachRoom(fn func(r *Room)) {
	for _, id := range c.IDs() {
		fn(c.rooms[id])
	}
}

// StartRoom returns the id of the starting room
func (c *Cave) StartRoom() int {
	return c.start
}

// SetStartRoom sets the starting room. Returns false if the room does not exist.
func (c *Cave) SetStartRoom(id int) bool {
	if c.Room(id) == nil {
		return false
	}
	c.start = id
	return true
}

// Connect links two rooms in both directions. Returns false if either room is missing.
func (c *Cave) Connect(a, b int) bool {
	ra, rb := c.Room(a), c.Room(b)
	if ra == nil || rb == nil || a == b {
		return false
	}
	ra.addExit(b)
	rb.addExit(a)
	return true
}

// Disconnect removes the passage between two rooms
func (c *Cave) Disconnect(a, b int) {
	if ra := c.Room(a); ra != nil {
		ra.removeExit(b)
	}
	if rb := c.Room(b); rb != nil {
		rb.removeExit(a)
	}
}

// IsAdjacent returns true if a passage leads from a to b
func (c *Cave) IsAdjacent(a, b int) bool {
	r := c.Room(a)
	return r != nil && r.HasExit(b)
}

// Neighbors returns the exits of the given room
func (c *Cave) Neighbors(id int) []int {
	r := c.Room(id)
	if r == nil {
		return nil
	}
	out := make([]int, len(r.Exits))
	copy(out, r.Exits)
	return out
}

// Reachable returns all rooms reachable from start without entering rooms in avoid.
// The start room itself is always included.
func (c *Cave) Reachable(start int, avoid RoomSet) RoomSet {
	reachable := mapset.New[int]()
	if c.Room(start) == nil {
		return reachable
	}
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, n := range c.Neighbors(current) {
			if !reachable.Has(n) && !avoid.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// Distance returns the number of passages on the shortest path between two rooms,
// or -1 if no path exists
func (c *Cave) Distance(from, to int) int {
	if c.Room(from) == nil || c.Room(to) == nil {
		return -1
	}
	dist := map[int]int{from: 0}
	queue := []int{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return dist[current]
		}
		for _, n := range c.Neighbors(current) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[current] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}

// Validate checks the cave for common issues and returns an error description or empty string if valid
func (c *Cave) Validate() string {
	if len(c.rooms) == 0 {
		return "Cave has no rooms"
	}
	if c.Room(c.start) == nil {
		return "Cave has no start room"
	}
	for _, id := range c.IDs() {
		for _, e := range c.rooms[id].Exits {
			if c.Room(e) == nil {
				return "Room exit leads nowhere"
			}
			if !c.IsAdjacent(e, id) {
				return "Room exit is one-way"
			}
		}
	}
	return ""
}
