package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMove
	ActionBack

	// Hunting
	ActionShoot
	ActionUse
	ActionDrop

	// Information
	ActionInventory
	ActionLook
	ActionMap
	ActionHint
	ActionHelp

	// Meta / UI
	ActionSave
	ActionLoad
	ActionOpenMenu
	ActionQuit
	ActionAction // Generic "action/confirm" (e.g., Enter/A)
	ActionMenuUp
	ActionMenuDown
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Args holds the words typed after the command, e.g. the rooms for "shoot 3 4".
type Intent struct {
	Action Action
	Args   []string
}

// Arg returns the i-th argument or an empty string
func (i Intent) Arg(n int) string {
	if n < 0 || n >= len(i.Args) {
		return ""
	}
	return i.Args[n]
}

// Rest joins all arguments with spaces
func (i Intent) Rest() string {
	return strings.Join(i.Args, " ")
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "gamepad_a") or a typed line.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event, normalising
// case and surrounding whitespace.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes and command words to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"move": ActionMove,
	"m":    ActionMove,
	"go":   ActionMove,
	"back": ActionBack,
	"b":    ActionBack,

	"shoot": ActionShoot,
	"s":     ActionShoot,
	"fire":  ActionShoot,
	"use":   ActionUse,
	"u":     ActionUse,
	"drop":  ActionDrop,
	"d":     ActionDrop,

	"inventory": ActionInventory,
	"inv":       ActionInventory,
	"i":         ActionInventory,
	"look":      ActionLook,
	"l":         ActionLook,
	"map":       ActionMap,
	"hint":      ActionHint,
	"?":         ActionHint,
	"help":      ActionHelp,
	"h":         ActionHelp,

	"save": ActionSave,
	"load": ActionLoad,

	"menu":   ActionOpenMenu,
	"f10":    ActionOpenMenu,
	"escape": ActionOpenMenu,

	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,

	"enter":  ActionAction,
	"action": ActionAction,

	"arrow_up":   ActionMenuUp,
	"k":          ActionMenuUp,
	"arrow_down": ActionMenuDown,
	"j":          ActionMenuDown,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":   ActionMenuUp,
	"gamepad_dpad_down": ActionMenuDown,
	"gamepad_a":         ActionAction,
	"gamepad_b":         ActionBack,
	"gamepad_start":     ActionOpenMenu,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. A bare room number is
// shorthand for moving there.
func MapToIntent(ev DebouncedInput) Intent {
	words := strings.Fields(ev.Code)
	if len(words) == 0 {
		return Intent{Action: ActionNone}
	}

	if _, err := strconv.Atoi(words[0]); err == nil {
		return Intent{Action: ActionMove, Args: words}
	}

	if act, ok := bindings[words[0]]; ok {
		return Intent{Action: act, Args: words[1:]}
	}
	return Intent{Action: ActionNone, Args: words}
}

// ParseCommand turns a typed line into an Intent
func ParseCommand(line string) Intent {
	raw := RawInput{Device: DeviceTerminal, Code: line, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionBack:
		return "Back"
	case ActionShoot:
		return "Shoot"
	case ActionUse:
		return "Use"
	case ActionDrop:
		return "Drop"
	case ActionInventory:
		return "Inventory"
	case ActionLook:
		return "Look"
	case ActionMap:
		return "Map"
	case ActionHint:
		return "Hint"
	case ActionHelp:
		return "Help"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionOpenMenu:
		return "Open Menu"
	case ActionQuit:
		return "Quit"
	case ActionAction:
		return "Action"
	case ActionMenuUp:
		return "Menu Up"
	case ActionMenuDown:
		return "Menu Down"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
