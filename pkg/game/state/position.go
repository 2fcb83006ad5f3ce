package state

// MaxHistory is the number of rooms remembered for the back command
const MaxHistory = 32

// Position tracks where the player is and where they have been
type Position struct {
	Current int
	History []int // Rooms entered, oldest first
}

// MoveTo enters a room and records it in the history
func (p *Position) MoveTo(room int) {
	p.Current = room
	p.History = append(p.History, room)
	if len(p.History) > MaxHistory {
		p.History = p.History[len(p.History)-MaxHistory:]
	}
}

// Previous returns the room entered before the current one
func (p *Position) Previous() (int, bool) {
	if len(p.History) < 2 {
		return 0, false
	}
	return p.History[len(p.History)-2], true
}
