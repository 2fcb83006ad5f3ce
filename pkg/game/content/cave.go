package content

import (
	"fmt"

	"wumpus/pkg/engine/world"
)

// BuildCave turns a validated table into a room graph.
// Hidden passages stay closed; callers open them with Cave.Connect.
func BuildCave(t *Table) (*world.Cave, error) {
	cave := world.NewCave()

	for _, def := range t.Rooms {
		room := world.NewRoom(def.ID, def.Name, def.Text, world.Mood(def.Mood))
		room.Hazards = append(room.Hazards, def.Hazards...)
		for _, id := range def.Items {
			room.ItemsOnFloor.Put(id)
		}
		if !cave.AddRoom(room) {
			return nil, fmt.Errorf("%w: duplicate room id %d", ErrInvalidContent, def.ID)
		}
	}

	for _, def := range t.Rooms {
		for _, e := range def.Exits {
			if !cave.Connect(def.ID, e) {
				return nil, fmt.Errorf("%w: cannot connect %d and %d", ErrInvalidContent, def.ID, e)
			}
		}
	}

	cave.SetStartRoom(t.Start)

	if msg := cave.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, msg)
	}

	return cave, nil
}
