package entities

// HazardType represents the different dangers lurking in the cave
type HazardType int

const (
	HazardPit    HazardType = iota // Bottomless pit - fatal without a rope
	HazardBats                     // Super bats - carry the player to a random room
	HazardSand                     // Sand creature lair - throws the player back, then kills
	HazardWumpus                   // The Wumpus itself - moves when disturbed
)

// HazardInfo contains display information for each hazard type
type HazardInfo struct {
	Key          string     // Name used in the content table
	Name         string     // Display name
	Warning      string     // Perception message when the hazard is in a neighbouring room
	EnterMessage string     // Narrative shown when walking into the hazard
	Death        DeathCause // How the hazard kills, DeathNone if it cannot
	Icon         string
}

// HazardTypes maps hazard types to their display information
var HazardTypes = map[HazardType]HazardInfo{
	HazardPit: {
		Key:          "pit",
		Name:         "Bottomless Pit",
		Warning:      "You feel a draft.",
		EnterMessage: "The floor gives way. You fall into a bottomless pit!",
		Death:        DeathPit,
		Icon:         "○",
	},
	HazardBats: {
		Key:          "bats",
		Name:         "Super Bats",
		Warning:      "You hear bats.",
		EnterMessage: "A swarm of super bats grabs you and whisks you away!",
		Death:        DeathNone,
		Icon:         "≈",
	},
	HazardSand: {
		Key:          "sand",
		Name:         "Sand Creature",
		Warning:      "The ground trembles.",
		EnterMessage: "The sand heaves. Something enormous stirs beneath you!",
		Death:        DeathSand,
		Icon:         "∴",
	},
	HazardWumpus: {
		Key:          "wumpus",
		Name:         "Wumpus",
		Warning:      "You smell a Wumpus.",
		EnterMessage: "Oops! You bumped into the Wumpus!",
		Death:        DeathWumpus,
		Icon:         "☠",
	},
}

// HazardOrder is the order in which hazards are reported
var HazardOrder = []HazardType{HazardWumpus, HazardPit, HazardBats, HazardSand}

// ParseHazard looks up a hazard type by its content-table key
func ParseHazard(key string) (HazardType, bool) {
	for t, info := range HazardTypes {
		if info.Key == key {
			return t, true
		}
	}
	return 0, false
}

// String returns the display name of the hazard
func (h HazardType) String() string {
	if info, ok := HazardTypes[h]; ok {
		return info.Name
	}
	return "Unknown"
}

// Warning returns the perception message for the hazard
func (h HazardType) Warning() string {
	return HazardTypes[h].Warning
}

// GetIcon returns the map icon for the hazard
func (h HazardType) GetIcon() string {
	return HazardTypes[h].Icon
}

// Key returns the content table key for the hazard
func (h HazardType) Key() string {
	return HazardTypes[h].Key
}
