// Package world provides generic room-graph primitives.
// These are engine-level constructs usable by any cave or dungeon game.
package world

import "sort"

// Mood describes the atmosphere of a room
type Mood string

// Room moods
const (
	MoodCalm  Mood = "calm"
	MoodDamp  Mood = "damp"
	MoodEerie Mood = "eerie"
	MoodHot   Mood = "hot"
	MoodDark  Mood = "dark"
)

// IsValid returns true if the mood is one of the known moods
func (m Mood) IsValid() bool {
	switch m {
	case MoodCalm, MoodDamp, MoodEerie, MoodHot, MoodDark:
		return true
	default:
		return false
	}
}

// Room represents a single location in the cave
type Room struct {
	ID   int
	Name string
	Text string
	Mood Mood

	// Hazards lists the static hazards declared for this room
	Hazards []string

	// Exits holds the ids of connected rooms, kept sorted
	Exits []int

	ItemsOnFloor ItemSet

	Visited bool
}

// NewRoom creates a room with no exits
func NewRoom(id int, name, text string, mood Mood) *Room {
	return &Room{
		ID:           id,
		Name:         name,
		Text:         text,
		Mood:         mood,
		ItemsOnFloor: NewItemSet(),
	}
}

// IsDark returns true if the room cannot be seen without a light
func (r *Room) IsDark() bool {
	return r.Mood == MoodDark
}

// HasExit returns true if the room connects to the given room
func (r *Room) HasExit(id int) bool {
	for _, e := range r.Exits {
		if e == id {
			return true
		}
	}
	return false
}

// HasStaticHazard returns true if the content table declared the hazard for this room
func (r *Room) HasStaticHazard(name string) bool {
	for _, h := range r.Hazards {
		if h == name {
			return true
		}
	}
	return false
}

func (r *Room) addExit(id int) {
	if r.HasExit(id) {
		return
	}
	r.Exits = append(r.Exits, id)
	sort.Ints(r.Exits)
}

func (r *Room) removeExit(id int) {
	for i, e := range r.Exits {
		if e == id {
			r.Exits = append(r.Exits[:i], r.Exits[i+1:]...)
			return
		}
	}
}
