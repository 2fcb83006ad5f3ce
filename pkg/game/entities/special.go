package entities

// Special room ids in the default cave
const (
	RoomWizard  = 7
	RoomSandPit = 13
	RoomTunnel  = 16
	RoomVault   = 21
)

// Special-room flag keys
const (
	FlagWizardFreed          = "wizardFreed"
	FlagSandCreatureActive   = "sandCreatureActive"
	FlagSandCreatureDefeated = "sandCreatureDefeated"
	FlagTunnelCleared        = "tunnelCleared"
	FlagBatsCalmed           = "batsCalmed"
	FlagWumpusAwake          = "wumpusAwake"
	FlagLanternLit           = "lanternLit"

	// Bookkeeping for one-time rewards
	FlagHeartFound = "heartFound"
	FlagCrownFound = "crownFound"
)

// KnownFlags lists every flag the game reads
var KnownFlags = []string{
	FlagWizardFreed,
	FlagSandCreatureActive,
	FlagSandCreatureDefeated,
	FlagTunnelCleared,
	FlagBatsCalmed,
	FlagWumpusAwake,
	FlagLanternLit,
	FlagHeartFound,
	FlagCrownFound,
}

// SpecialRoomInfo describes a room with bespoke narrative
type SpecialRoomInfo struct {
	Name   string
	Before string // Narrative while the room's puzzle is unsolved
	After  string // Narrative once solved
	Flag   string // Flag that marks the room as solved
}

// SpecialRooms maps room ids to their narrative
var SpecialRooms = map[int]SpecialRoomInfo{
	RoomWizard: {
		Name:   "Wizard's Prison",
		Before: "An old wizard is sealed inside a block of crystal. His eyes follow you, pleading. The crystal looks brittle.",
		After:  "The old wizard sits by a small fire, muttering spells over his tea.",
		Flag:   FlagWizardFreed,
	},
	RoomSandPit: {
		Name:   "Sand Pit",
		Before: "Fine sand shifts under your feet as if something breathes below.",
		After:  "A drying crust of mud covers the pit. Nothing stirs.",
		Flag:   FlagSandCreatureDefeated,
	},
	RoomTunnel: {
		Name:   "Collapsed Tunnel",
		Before: "A pile of rubble blocks a narrow tunnel to the east. Cold air whistles through the cracks.",
		After:  "A cleared tunnel leads east towards a faint golden glow.",
		Flag:   FlagTunnelCleared,
	},
	RoomVault: {
		Name:   "Treasure Vault",
		Before: "Gold glints from every alcove of this forgotten vault.",
		After:  "The vault is quiet. You have taken what matters.",
		Flag:   FlagCrownFound,
	},
}

// IsSpecialRoom returns true if the room has bespoke narrative
func IsSpecialRoom(id int) bool {
	_, ok := SpecialRooms[id]
	return ok
}
