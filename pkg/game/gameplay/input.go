package gameplay

import (
	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/locale"
	gamemenu "wumpus/pkg/game/menu"
	"wumpus/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) {
	g := s.Game

	// Game over screen: quit leaves, anything else returns to the title
	if g.IsOver() {
		switch intent.Action {
		case engineinput.ActionNone:
		case engineinput.ActionQuit:
			s.Quit = true
		default:
			s.ToTitle = true
		}
		return
	}

	// The player has seen the last scene overlay by now
	g.ClearOverlay()

	switch intent.Action {
	case engineinput.ActionNone:
		if len(intent.Args) > 0 {
			logMessage(g, "%s", locale.T("UNKNOWN_COMMAND"))
		}

	case engineinput.ActionMove:
		s.Move(intent.Arg(0))

	case engineinput.ActionBack:
		s.Back()

	case engineinput.ActionShoot:
		s.Shoot(intent.Args)

	case engineinput.ActionUse:
		if len(intent.Args) == 0 {
			s.OpenInventory()
			return
		}
		s.UseItem(intent.Rest())

	case engineinput.ActionDrop:
		s.Drop(intent.Rest())

	case engineinput.ActionInventory:
		s.OpenInventory()

	case engineinput.ActionLook:
		Look(g)

	case engineinput.ActionMap:
		gamemenu.ShowMap(g)

	case engineinput.ActionHint:
		ShowHint(g)

	case engineinput.ActionHelp:
		gamemenu.ShowHelp(g)

	case engineinput.ActionSave:
		s.Save()

	case engineinput.ActionLoad:
		s.Load()

	case engineinput.ActionOpenMenu:
		s.RunGameMenu()

	case engineinput.ActionQuit:
		g.Status = state.Quit
		s.Quit = true

	default:
		// Menu navigation keys do nothing outside menus
	}
}

// OpenInventory shows the inventory menu and uses the chosen item
func (s *Session) OpenInventory() {
	if id := gamemenu.ChooseItem(s.Game); id != "" {
		s.UseItem(id)
	}
}

// RunGameMenu presents the game menu and carries out the choice
func (s *Session) RunGameMenu() {
	switch gamemenu.RunGameMenu(s.Game) {
	case gamemenu.GameMenuActionSave:
		s.Save()
	case gamemenu.GameMenuActionLoad:
		s.Load()
	case gamemenu.GameMenuActionRestart:
		if err := s.Restart(); err != nil {
			s.log().Error("restart failed", "error", err)
		}
	case gamemenu.GameMenuActionHelp:
		gamemenu.ShowHelp(s.Game)
	case gamemenu.GameMenuActionQuit:
		s.Game.Status = state.Quit
		s.Quit = true
	}
}
