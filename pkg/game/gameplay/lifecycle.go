package gameplay

import (
	"errors"
	"fmt"

	"wumpus/pkg/game/content"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/save"
	"wumpus/pkg/game/setup"
	"wumpus/pkg/game/state"
)

// NewGame starts a fresh hunt with the session's setup
func (s *Session) NewGame() error {
	g, err := setup.NewGame(s.Table, s.Setup)
	if err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}
	s.adopt(g)

	g.ClearMessages()
	logMessage(g, "%s", locale.T("WELCOME"))
	Perceive(g)

	s.log().Info("new game", "seed", s.Setup.Seed, "wumpus", g.WumpusRoom)
	return nil
}

// Restart begins a new hunt in a freshly shuffled cave
func (s *Session) Restart() error {
	if s.Game != nil {
		s.Setup.Seed = s.Game.Rand.Int63()
	}
	return s.NewGame()
}

// Save stores the running game
func (s *Session) Save() {
	g := s.Game
	if err := s.Store.Save(s.ctx, save.FromGame(g)); err != nil {
		s.log().Error("save failed", "error", err)
		logMessage(g, "%s", locale.T("SAVE_FAILED"))
		return
	}
	logMessage(g, "%s", locale.T("GAME_SAVED"))
}

// Load replaces the running game with the saved one
func (s *Session) Load() {
	err := s.LoadGame()
	if s.Game == nil {
		return
	}
	switch {
	case err == nil:
		logMessage(s.Game, "%s", locale.T("GAME_LOADED"))
		Perceive(s.Game)
	case errors.Is(err, save.ErrNoSave):
		logMessage(s.Game, "%s", locale.T("NO_SAVE"))
	default:
		s.log().Error("load failed", "error", err)
		logMessage(s.Game, "%s", locale.T("LOAD_FAILED"))
	}
}

// LoadGame restores the saved game into the session
func (s *Session) LoadGame() error {
	snap, err := s.Store.Load(s.ctx)
	if err != nil {
		return err
	}
	g, err := Restore(s.Table, snap)
	if err != nil {
		return err
	}
	s.adopt(g)
	s.Setup.Seed = g.Seed
	s.log().Info("game loaded", "slot_id", snap.SlotID, "turns", g.Turns)
	return nil
}

// HasSave reports whether there is a saved game to continue
func (s *Session) HasSave() bool {
	_, err := s.Store.Load(s.ctx)
	return err == nil
}

// Restore builds a game from the content table and applies a snapshot to it
func Restore(table *content.Table, snap *save.Snapshot) (*state.Game, error) {
	cave, err := content.BuildCave(table)
	if err != nil {
		return nil, err
	}
	g := state.NewGame(snap.Seed)
	g.Cave = cave
	g.Content = table
	if err := snap.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}
