// Package content holds the static room and item table of the cave.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ErrInvalidContent is returned when a content table fails validation
var ErrInvalidContent = errors.New("invalid content")

// Table is the complete static description of a cave
type Table struct {
	Start             int          `yaml:"start" validate:"required,min=1"`
	Rooms             []RoomDef    `yaml:"rooms" validate:"required,min=1,dive"`
	Items             []ItemDef    `yaml:"items" validate:"dive"`
	StartingInventory []Stack      `yaml:"starting_inventory" validate:"dive"`
	Passages          []PassageDef `yaml:"hidden_passages" validate:"dive"`
}

// RoomDef describes one room
type RoomDef struct {
	ID      int      `yaml:"id" validate:"required,min=1"`
	Name    string   `yaml:"name" validate:"required"`
	Text    string   `yaml:"text" validate:"required"`
	Mood    string   `yaml:"mood" validate:"required,oneof=calm damp eerie hot dark"`
	Hazards []string `yaml:"hazards" validate:"dive,oneof=pit bats sand"`
	Exits   []int    `yaml:"exits" validate:"dive,min=1"`
	Items   []string `yaml:"items" validate:"dive,required"`
}

// ItemDef describes one item of the catalog
type ItemDef struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Uses        int    `yaml:"uses" validate:"min=-1"`
	Quantity    int    `yaml:"quantity" validate:"min=1"`
	Treasure    bool   `yaml:"treasure"`
	Stackable   bool   `yaml:"stackable"`
}

// Stack is an item id with a count
type Stack struct {
	ID       string `yaml:"id" validate:"required"`
	Quantity int    `yaml:"quantity" validate:"min=0"`
}

// PassageDef is a connection that only opens once a flag is set
type PassageDef struct {
	From int    `yaml:"from" validate:"required"`
	To   int    `yaml:"to" validate:"required,nefield=From"`
	Flag string `yaml:"flag" validate:"required"`
}

// LoadDefault parses the embedded cave
func LoadDefault() (*Table, error) {
	return Parse(defaultContent)
}

// Load reads and validates a content table from a YAML file
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a content table
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidContent, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

var validate = validator.New()

// Validate checks struct tags, uniqueness and cross references
func (t *Table) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	rooms := make(map[int]*RoomDef, len(t.Rooms))
	for i := range t.Rooms {
		r := &t.Rooms[i]
		if _, dup := rooms[r.ID]; dup {
			return fmt.Errorf("%w: duplicate room id %d", ErrInvalidContent, r.ID)
		}
		rooms[r.ID] = r
	}

	if _, ok := rooms[t.Start]; !ok {
		return fmt.Errorf("%w: start room %d does not exist", ErrInvalidContent, t.Start)
	}

	items := make(map[string]bool, len(t.Items))
	for _, it := range t.Items {
		if items[it.ID] {
			return fmt.Errorf("%w: duplicate item id %q", ErrInvalidContent, it.ID)
		}
		items[it.ID] = true
	}

	for _, r := range t.Rooms {
		for _, e := range r.Exits {
			other, ok := rooms[e]
			if !ok {
				return fmt.Errorf("%w: room %d has exit to missing room %d", ErrInvalidContent, r.ID, e)
			}
			if !containsInt(other.Exits, r.ID) {
				return fmt.Errorf("%w: exit %d -> %d is one-way", ErrInvalidContent, r.ID, e)
			}
		}
		for _, id := range r.Items {
			if !items[id] {
				return fmt.Errorf("%w: room %d holds unknown item %q", ErrInvalidContent, r.ID, id)
			}
		}
	}

	for _, s := range t.StartingInventory {
		if !items[s.ID] {
			return fmt.Errorf("%w: starting inventory holds unknown item %q", ErrInvalidContent, s.ID)
		}
	}

	for _, p := range t.Passages {
		if rooms[p.From] == nil || rooms[p.To] == nil {
			return fmt.Errorf("%w: hidden passage %d -> %d references a missing room", ErrInvalidContent, p.From, p.To)
		}
	}

	return nil
}

// Room returns the definition of a room, or nil
func (t *Table) Room(id int) *RoomDef {
	for i := range t.Rooms {
		if t.Rooms[i].ID == id {
			return &t.Rooms[i]
		}
	}
	return nil
}

// Item returns the catalog entry for an item
func (t *Table) Item(id string) (ItemDef, bool) {
	for _, it := range t.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemDef{}, false
}

// Passage returns the hidden passage unlocked by a flag
func (t *Table) Passage(flag string) (PassageDef, bool) {
	for _, p := range t.Passages {
		if p.Flag == flag {
			return p, true
		}
	}
	return PassageDef{}, false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
