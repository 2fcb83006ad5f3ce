package entities

// Overlay identifies a scene overlay shown by the presentation layer
type Overlay string

const (
	OverlayNone          Overlay = ""
	OverlayWizardFreed   Overlay = "wizard-freed"
	OverlaySandDefeated  Overlay = "sand-defeated"
	OverlayTunnelCleared Overlay = "tunnel-cleared"
	OverlayTreasure      Overlay = "treasure"
	OverlayVictory       Overlay = "victory"
	OverlayDeath         Overlay = "death"
)

// OverlayInfo contains the banner text for an overlay
type OverlayInfo struct {
	Title string
	Text  string
}

// Overlays maps overlay ids to their banner text
var Overlays = map[Overlay]OverlayInfo{
	OverlayWizardFreed: {
		Title: "The Wizard Is Free",
		Text:  "The crystal shatters. The wizard stretches and hands you a map and two arrows.",
	},
	OverlaySandDefeated: {
		Title: "Mud!",
		Text:  "The water soaks the sand creature. It collapses into a harmless puddle of mud.",
	},
	OverlayTunnelCleared: {
		Title: "The Way Is Open",
		Text:  "The rubble gives way. A passage to the treasure vault opens.",
	},
	OverlayTreasure: {
		Title: "Treasure!",
		Text:  "You found something precious.",
	},
	OverlayVictory: {
		Title: "Victory",
		Text:  "Aha! You got the Wumpus! Hee hee hee - the Wumpus'll getcha next time!!",
	},
	OverlayDeath: {
		Title: "Game Over",
		Text:  "Your adventure ends here.",
	},
}
