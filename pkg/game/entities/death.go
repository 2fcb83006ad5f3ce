package entities

// DeathCause records how the player died
type DeathCause string

const (
	DeathNone        DeathCause = "none"
	DeathPit         DeathCause = "pit"
	DeathWumpus      DeathCause = "wumpus"
	DeathSand        DeathCause = "sand creature"
	DeathOwnArrow    DeathCause = "own arrow"
	DeathOutOfArrows DeathCause = "out of arrows"
	DeathPoison      DeathCause = "poison"
	DeathDarkness    DeathCause = "darkness"
)

var epitaphs = map[DeathCause]string{
	DeathPit:         "You fell into a bottomless pit. AAAAAaaaaa...",
	DeathWumpus:      "Tsk tsk tsk. The Wumpus got you!",
	DeathSand:        "The sand creature drags you beneath the dunes.",
	DeathOwnArrow:    "Ouch! Your own arrow came back and got you.",
	DeathOutOfArrows: "You are out of arrows. The Wumpus will find you eventually.",
	DeathPoison:      "The mushroom was poisonous. Everything goes dark.",
	DeathDarkness:    "You stumble in the dark and tumble into a pit.",
}

// Epitaph returns the game-over text for the cause of death
func (d DeathCause) Epitaph() string {
	if text, ok := epitaphs[d]; ok {
		return text
	}
	return "You are still alive."
}
