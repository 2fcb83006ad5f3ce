package menu

import (
	"fmt"
	"strings"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// helpActions are the commands listed on the help page, in order
var helpActions = []struct {
	action engineinput.Action
	usage  string
}{
	{engineinput.ActionMove, "move N, or just N"},
	{engineinput.ActionBack, "back"},
	{engineinput.ActionShoot, "shoot N [N...] (up to 5 rooms)"},
	{engineinput.ActionUse, "use ITEM"},
	{engineinput.ActionDrop, "drop ITEM"},
	{engineinput.ActionInventory, "inventory"},
	{engineinput.ActionLook, "look"},
	{engineinput.ActionMap, "map"},
	{engineinput.ActionHint, "hint"},
	{engineinput.ActionSave, "save"},
	{engineinput.ActionLoad, "load"},
	{engineinput.ActionOpenMenu, "menu"},
	{engineinput.ActionQuit, "quit"},
}

// HelpLines lists each command with its usage and aliases
func HelpLines() []string {
	byAction := engineinput.GetBindingsByAction()

	lines := make([]string, 0, len(helpActions))
	for _, h := range helpActions {
		aliases := strings.Join(byAction[h.action], ", ")
		lines = append(lines, fmt.Sprintf("%-10s %s %s",
			engineinput.ActionName(h.action),
			h.usage,
			renderer.StyledSubtle("("+aliases+")")))
	}
	return lines
}

// ShowHelp displays the help page
func ShowHelp(g *state.Game) {
	RunMenuDynamic(g, NewInfoMenuHandler("Commands", HelpLines()))
}
